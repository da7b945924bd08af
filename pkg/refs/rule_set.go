// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package refs

import (
	"sort"
)

// AnyAPIVersion matches resources of every apiVersion.
const AnyAPIVersion = "*"

type ruleGroup struct {
	apiVersionMatcher string
	rules             []Rule
}

// RuleSet holds rules keyed by source kind; each group of rules may be
// limited to one apiVersion.
type RuleSet struct {
	byKind map[string][]ruleGroup
}

func NewRuleSet() *RuleSet {
	return &RuleSet{byKind: map[string][]ruleGroup{}}
}

// Add registers rules for resources of kind whose apiVersion matches
// apiVersionMatcher (AnyAPIVersion or an exact apiVersion).
func (s *RuleSet) Add(kind, apiVersionMatcher string, rules ...Rule) {
	if len(apiVersionMatcher) == 0 {
		apiVersionMatcher = AnyAPIVersion
	}
	s.byKind[kind] = append(s.byKind[kind], ruleGroup{apiVersionMatcher, rules})
}

// RulesFor returns rules applicable to a resource in registration order.
func (s *RuleSet) RulesFor(res *Resource) []Rule {
	if s == nil {
		return nil
	}
	var result []Rule
	for _, group := range s.byKind[res.Kind] {
		if group.apiVersionMatcher == AnyAPIVersion || group.apiVersionMatcher == res.APIVersion {
			result = append(result, group.rules...)
		}
	}
	return result
}

func (s *RuleSet) Kinds() []string {
	var kinds []string
	for kind := range s.byKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Descriptors lists every rule, ordered by kind.
func (s *RuleSet) Descriptors() []RuleDescriptor {
	var result []RuleDescriptor
	for _, kind := range s.Kinds() {
		for _, group := range s.byKind[kind] {
			for _, rule := range group.rules {
				result = append(result, rule.Descriptor(kind))
			}
		}
	}
	return result
}
