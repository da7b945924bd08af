// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

Documents are converted into this flavor of map whenever they leave the tree
form (JSON output, merge patches) so that key order stays exactly as written.
*/
package orderedmap
