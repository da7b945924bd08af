// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of monokle's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing monokle).

A cobra.Command is the starting point of execution.

For a list of commands run:

	$ monokle help

Every command keeps its flags in an options struct (e.g. MergeOptions) whose
Run method loads inputs and whose RunWith* method does the work against
already loaded files, which is what tests exercise.
*/
package cmd
