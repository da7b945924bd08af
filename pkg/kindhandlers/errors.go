// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package kindhandlers

import (
	"fmt"
)

// RuleError describes an invalid rule file entry. Handler and Rule are
// empty or -1 when the problem is not specific to one of them.
type RuleError struct {
	File    string
	Handler string
	Rule    int
	Err     error
}

var _ error = &RuleError{}

func (e *RuleError) Error() string {
	switch {
	case len(e.Handler) > 0 && e.Rule >= 0:
		return fmt.Sprintf("Loading rule file '%s': handler '%s': rule %d: %s", e.File, e.Handler, e.Rule, e.Err)
	case len(e.Handler) > 0:
		return fmt.Sprintf("Loading rule file '%s': handler '%s': %s", e.File, e.Handler, e.Err)
	default:
		return fmt.Sprintf("Loading rule file '%s': %s", e.File, e.Err)
	}
}

func (e *RuleError) Unwrap() error { return e.Err }
