// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, set at link time with
// -ldflags "-X github.com/johnbedeir/monokle/pkg/version.Version=...".
package version

var (
	Version = "develop"
)
