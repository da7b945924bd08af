// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package refs

import (
	"fmt"
	"sort"
	"strings"
)

// SiblingMatcher decides whether a candidate target is acceptable given
// the value of a field next to the reference in the source resource
// ("" when that field is absent).
type SiblingMatcher struct {
	Name  string
	Match func(source, candidate *Resource, siblingValue string) bool
}

const (
	ImplicitMatcherName         = "implicit"
	OptionalExplicitMatcherName = "optional-explicit"
	ExplicitMatcherName         = "explicit"
)

var (
	// ImplicitNamespaceMatcher keeps targets in the source's namespace.
	ImplicitNamespaceMatcher = SiblingMatcher{
		Name: ImplicitMatcherName,
		Match: func(source, candidate *Resource, _ string) bool {
			return candidate.Namespace == source.Namespace
		},
	}

	// OptionalExplicitNamespaceMatcher uses the sibling value when set and
	// falls back to the source's namespace otherwise.
	OptionalExplicitNamespaceMatcher = SiblingMatcher{
		Name: OptionalExplicitMatcherName,
		Match: func(source, candidate *Resource, value string) bool {
			if len(value) > 0 {
				return candidate.Namespace == value
			}
			return candidate.Namespace == source.Namespace
		},
	}

	// ExplicitNamespaceMatcher requires the sibling value to name the
	// target's namespace.
	ExplicitNamespaceMatcher = SiblingMatcher{
		Name: ExplicitMatcherName,
		Match: func(_, candidate *Resource, value string) bool {
			return candidate.Namespace == value
		},
	}
)

var siblingMatchers = map[string]SiblingMatcher{
	ImplicitMatcherName:         ImplicitNamespaceMatcher,
	OptionalExplicitMatcherName: OptionalExplicitNamespaceMatcher,
	ExplicitMatcherName:         ExplicitNamespaceMatcher,
}

func LookupSiblingMatcher(name string) (SiblingMatcher, error) {
	matcher, found := siblingMatchers[name]
	if !found {
		return SiblingMatcher{}, fmt.Errorf("Unknown sibling matcher '%s' (known: %s)",
			name, strings.Join(SiblingMatcherNames(), ", "))
	}
	return matcher, nil
}

func SiblingMatcherNames() []string {
	var names []string
	for name := range siblingMatchers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
