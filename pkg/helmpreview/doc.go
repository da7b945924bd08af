// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package helmpreview prepares Helm dry-run previews and reads their output.

It builds helm argument lists (InstallArgs for previewing a chart from a
repository, PreviewConfiguration.Args for a saved local chart preview) and turns the
stdout of a dry run into resources (SplitOutput, Resources). Running helm
is left to the caller.
*/
package helmpreview
