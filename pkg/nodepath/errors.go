// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package nodepath

import (
	"fmt"
)

// KindMismatchError is returned when a step cannot be applied because the
// node reached so far is of the wrong kind (e.g. a key step on a sequence).
type KindMismatchError struct {
	Path     Path
	Expected string
	Found    string
}

var _ error = &KindMismatchError{}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("Expected %s at '%s', but found %s", e.Expected, e.Path, e.Found)
}
