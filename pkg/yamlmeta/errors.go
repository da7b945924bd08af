// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/johnbedeir/monokle/pkg/filepos"
)

var (
	// eg "yaml: line 2: found character that cannot start any token"
	lineErrRegexp = regexp.MustCompile(`^yaml: line (\d+): (.+)$`)
)

// ParseError is returned for text that is not a well-formed document.
// Nothing is partially processed when it is returned.
type ParseError struct {
	Position *filepos.Position
	Msg      string
	Err      error
}

var _ error = &ParseError{}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parsing YAML (%s): %s", e.Position.AsCompactString(), e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseErrorFromYAML(err error, associatedName string) *ParseError {
	pos := filepos.NewUnknownPositionInFile(associatedName)
	msg := err.Error()

	if submatches := lineErrRegexp.FindStringSubmatch(msg); len(submatches) == 3 {
		if lineNum, convErr := strconv.Atoi(submatches[1]); convErr == nil && lineNum > 0 {
			pos = filepos.NewPositionInFile(lineNum, associatedName)
			msg = submatches[2]
		}
	}

	return &ParseError{Position: pos, Msg: msg, Err: err}
}
