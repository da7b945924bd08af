// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlmeta parses YAML streams into a data structure (tree of
yamlmeta.Node's) that remembers where every node came from and how it was
written: position, comments, style, tag and anchor.

Keeping that provenance on the tree is what allows a modified document to be
printed back with the formatting of every untouched node intact.
*/
package yamlmeta
