// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
plus the line and column within that source.

Positions are how a node of a parsed manifest remembers where it came from.
They are used when reporting errors to the user and when a reference needs to
point back at the exact scalar it was read from.

Not all Positions point within a file (e.g. nodes inserted by a merge). The
zero-value of Position (can be created using NewUnknownPosition()) represents
this case.
*/
package filepos
