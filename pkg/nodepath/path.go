// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package nodepath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type StepKind int

const (
	KeyStep StepKind = iota
	IndexStep
	WildcardStep
	RootStep
)

type Step struct {
	Kind  StepKind
	Key   string
	Index int
}

func Key(key string) Step  { return Step{Kind: KeyStep, Key: key} }
func Index(idx int) Step   { return Step{Kind: IndexStep, Index: idx} }
func Wildcard() Step       { return Step{Kind: WildcardStep} }
func Root() Step           { return Step{Kind: RootStep} }
func (s Step) IsKey() bool { return s.Kind == KeyStep }

// Matches reports whether a pattern step accepts a concrete step.
func (s Step) Matches(concrete Step) bool {
	switch s.Kind {
	case KeyStep:
		return concrete.Kind == KeyStep && concrete.Key == s.Key
	case IndexStep:
		return concrete.Kind == IndexStep && concrete.Index == s.Index
	case WildcardStep:
		return concrete.Kind == IndexStep
	default:
		return false
	}
}

func (s Step) String() string {
	switch s.Kind {
	case KeyStep:
		if needsQuoting(s.Key) {
			return "[" + strconv.Quote(s.Key) + "]"
		}
		return s.Key
	case IndexStep:
		return fmt.Sprintf("[%d]", s.Index)
	case WildcardStep:
		return "[*]"
	case RootStep:
		return "$"
	default:
		return "?"
	}
}

type Path []Step

// FromParts builds a path from plain key parts where "*" stands for
// any sequence element, e.g. []string{"volumes", "*", "secret", "secretName"}.
func FromParts(parts []string) Path {
	var result Path
	for _, part := range parts {
		if part == "*" {
			result = append(result, Wildcard())
		} else {
			result = append(result, Key(part))
		}
	}
	return result
}

func (p Path) String() string {
	var sb strings.Builder
	for i, step := range p {
		str := step.String()
		if i > 0 && step.Kind == KeyStep && !strings.HasPrefix(str, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(str)
	}
	return sb.String()
}

func (p Path) Append(steps ...Step) Path {
	result := make(Path, 0, len(p)+len(steps))
	result = append(result, p...)
	return append(result, steps...)
}

func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

func (p Path) Last() (Step, bool) {
	if len(p) == 0 {
		return Step{}, false
	}
	return p[len(p)-1], true
}

// IsAnchored reports whether the path starts at the document root.
func (p Path) IsAnchored() bool { return len(p) > 0 && p[0].Kind == RootStep }

// Steps returns the path without its root marker.
func (p Path) Steps() Path {
	if p.IsAnchored() {
		return p[1:]
	}
	return p
}

func (p Path) HasWildcard() bool {
	for _, step := range p {
		if step.Kind == WildcardStep {
			return true
		}
	}
	return false
}

func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// MatchesSuffix reports whether the concrete path ends with the pattern.
// Anchored patterns must match the whole concrete path.
func (p Path) MatchesSuffix(concrete Path) bool {
	pattern := p.Steps()
	if len(pattern) == 0 || len(pattern) > len(concrete) {
		return false
	}
	if p.IsAnchored() && len(pattern) != len(concrete) {
		return false
	}

	offset := len(concrete) - len(pattern)
	for i, step := range pattern {
		if !step.Matches(concrete[offset+i]) {
			return false
		}
	}
	return true
}

func needsQuoting(key string) bool {
	return key == "" || key == "*" || strings.ContainsAny(key, ".[]\"$") ||
		strings.IndexFunc(key, unicode.IsSpace) >= 0
}
