// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package refs discovers references between Kubernetes resources.

Rules describe, per source kind, where a reference is read from (a path
such as volumes[*].secret.secretName), which kind it points at, and how
sibling fields (typically namespace) narrow down same-named candidates.
Resolve evaluates rules over a working set of resources and returns an
immutable Graph of edges; incoming references are derived from the same
edge set.
*/
package refs
