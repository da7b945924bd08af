// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package nodepath addresses nodes of a yamlmeta tree.

A Path is a list of steps; each step is a map key, a sequence index, or the
sequence wildcard. Paths are written as

	spec.volumes[*].secret.secretName
	spec.containers[0].image
	metadata.annotations["app.kubernetes.io/name"]
	$.spec.serviceAccountName

A leading "$" anchors a path at the document root. Patterns without it match
any node whose path ends with the pattern (see MatchesSuffix).
*/
package nodepath
