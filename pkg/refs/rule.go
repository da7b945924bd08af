// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package refs

import (
	"fmt"
	"sort"

	"github.com/johnbedeir/monokle/pkg/nodepath"
)

type RefStyle string

// RefByName means the scalar found at the source path is the target's name.
const RefByName RefStyle = "name"

// Rule tells how resources of one kind reference another kind.
type Rule struct {
	// Source is matched against the end of every node path in a resource
	// unless it is anchored with "$".
	Source     nodepath.Path
	TargetKind string
	Style      RefStyle
	// Optional documents that the source field may be absent.
	// Resolution treats required and optional rules alike.
	Optional bool
	// SiblingMatchers are keyed by the sibling field name, e.g. namespace.
	SiblingMatchers map[string]SiblingMatcher
	// Condition limits the rule to some source resources; nil applies
	// the rule to every resource of the kind.
	Condition RuleCondition
}

// RuleCondition is evaluated once per source resource.
type RuleCondition interface {
	Matches(source *Resource) bool
	String() string
}

func (r Rule) appliesTo(source *Resource) bool {
	return r.Condition == nil || r.Condition.Matches(source)
}

// NewRule builds a by-name rule, resolving matcher names through the
// sibling matcher registry.
func NewRule(path, targetKind string, optional bool, matcherNames map[string]string) (Rule, error) {
	source, err := nodepath.Parse(path)
	if err != nil {
		return Rule{}, err
	}
	if len(targetKind) == 0 {
		return Rule{}, fmt.Errorf("Expected rule '%s' to have target kind", path)
	}

	rule := Rule{
		Source:     source,
		TargetKind: targetKind,
		Style:      RefByName,
		Optional:   optional,
	}

	for field, name := range matcherNames {
		matcher, err := LookupSiblingMatcher(name)
		if err != nil {
			return Rule{}, fmt.Errorf("Rule '%s' sibling '%s': %w", path, field, err)
		}
		if rule.SiblingMatchers == nil {
			rule.SiblingMatchers = map[string]SiblingMatcher{}
		}
		rule.SiblingMatchers[field] = matcher
	}

	return rule, nil
}

// MustNewRule is NewRule for static rule tables.
func MustNewRule(path, targetKind string, optional bool, matcherNames map[string]string) Rule {
	rule, err := NewRule(path, targetKind, optional, matcherNames)
	if err != nil {
		panic(fmt.Sprintf("Invalid rule: %s", err))
	}
	return rule
}

func (r Rule) Descriptor(sourceKind string) RuleDescriptor {
	desc := RuleDescriptor{
		SourceKind: sourceKind,
		Path:       r.Source.String(),
		TargetKind: r.TargetKind,
		Style:      r.Style,
		Optional:   r.Optional,
	}
	if r.Condition != nil {
		desc.When = r.Condition.String()
	}
	for field, matcher := range r.SiblingMatchers {
		if desc.SiblingMatchers == nil {
			desc.SiblingMatchers = map[string]string{}
		}
		desc.SiblingMatchers[field] = matcher.Name
	}
	return desc
}

// siblingFields returns matcher field names in a stable order.
func (r Rule) siblingFields() []string {
	var fields []string
	for field := range r.SiblingMatchers {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// RuleDescriptor is the printable form of a rule attached to edges.
type RuleDescriptor struct {
	SourceKind      string            `json:"sourceKind"`
	Path            string            `json:"path"`
	TargetKind      string            `json:"targetKind"`
	Style           RefStyle          `json:"style"`
	Optional        bool              `json:"optional,omitempty"`
	SiblingMatchers map[string]string `json:"siblingMatchers,omitempty"`
	When            string            `json:"when,omitempty"`
}

func (d RuleDescriptor) String() string {
	return fmt.Sprintf("%s %s -> %s", d.SourceKind, d.Path, d.TargetKind)
}
