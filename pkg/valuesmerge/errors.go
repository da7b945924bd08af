// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package valuesmerge

import (
	"fmt"

	"github.com/johnbedeir/monokle/pkg/filepos"
	"github.com/johnbedeir/monokle/pkg/nodepath"
)

// UnrepresentableMergeError is returned when a node cannot be placed
// because the other document has a node of an incompatible kind along
// the way (e.g. a scalar where a map is needed).
type UnrepresentableMergeError struct {
	Path     nodepath.Path
	Conflict nodepath.Path
	Expected string
	Found    string
	Position *filepos.Position
}

var _ error = &UnrepresentableMergeError{}

func newUnrepresentableMergeError(path nodepath.Path, pos *filepos.Position,
	err *nodepath.KindMismatchError) *UnrepresentableMergeError {

	if pos == nil {
		pos = filepos.NewUnknownPosition()
	}
	return &UnrepresentableMergeError{
		Path:     path,
		Conflict: err.Path,
		Expected: err.Expected,
		Found:    err.Found,
		Position: pos,
	}
}

func (e *UnrepresentableMergeError) Error() string {
	conflict := e.Conflict.String()
	if len(conflict) == 0 {
		conflict = "<root>"
	}
	return fmt.Sprintf("Merging '%s' (%s): Expected %s at '%s', but found %s",
		e.Path, e.Position.AsCompactString(), e.Expected, conflict, e.Found)
}
