// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files enumerates and loads inputs (manifests, Helm values files and
reference rule files) from local paths, directories, stdin or HTTP URLs.

Inputs are classified by Type from their extension: manifests and values are
TypeYAML or TypeJSON, rule files may also be TypeTOML.
*/
package files
