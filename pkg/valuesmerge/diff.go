// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package valuesmerge

import (
	"strings"

	"github.com/k14s/difflib"
)

type LineKind int

const (
	LineCommon LineKind = iota
	LineRemoved
	LineAdded
)

type DiffLine struct {
	Kind LineKind
	Text string
}

func (l DiffLine) String() string {
	switch l.Kind {
	case LineRemoved:
		return "- " + l.Text
	case LineAdded:
		return "+ " + l.Text
	default:
		return "  " + l.Text
	}
}

// Diff compares two texts line by line (typically a template and its
// merge result).
func Diff(from, to []byte) []DiffLine {
	var result []DiffLine
	for _, rec := range difflib.Diff(splitLines(from), splitLines(to)) {
		line := DiffLine{Text: rec.Payload}
		switch rec.Delta {
		case difflib.LeftOnly:
			line.Kind = LineRemoved
		case difflib.RightOnly:
			line.Kind = LineAdded
		default:
			line.Kind = LineCommon
		}
		result = append(result, line)
	}
	return result
}

func HasChanges(lines []DiffLine) bool {
	for _, line := range lines {
		if line.Kind != LineCommon {
			return true
		}
	}
	return false
}

func splitLines(bs []byte) []string {
	str := strings.TrimRight(string(bs), "\n")
	if len(str) == 0 {
		return nil
	}
	return strings.Split(str, "\n")
}
