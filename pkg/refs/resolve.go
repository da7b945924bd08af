// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package refs

import (
	"github.com/johnbedeir/monokle/pkg/filepos"
	"github.com/johnbedeir/monokle/pkg/nodepath"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
)

type kindName struct {
	Kind string
	Name string
}

// Resolve evaluates rules over resources and returns the reference
// graph. Inputs are only read.
func Resolve(resources []*Resource, rules *RuleSet) *Graph {
	candidates := map[kindName][]*Resource{}
	for _, res := range resources {
		key := kindName{res.Kind, res.Name}
		candidates[key] = append(candidates[key], res)
	}

	graph := newGraph(resources)

	for _, source := range resources {
		for _, rule := range rules.RulesFor(source) {
			if !rule.appliesTo(source) {
				continue
			}
			desc := rule.Descriptor(source.Kind)

			for _, match := range matchRule(source, rule) {
				ref := Reference{
					SourceID:   source.ID,
					Rule:       desc,
					SourcePath: match.Path,
					Value:      match.Value,
					Position:   match.Position,
				}

				var targets []*Resource
				for _, candidate := range candidates[kindName{rule.TargetKind, match.Value}] {
					if rule.accepts(source, candidate, match.Siblings) {
						targets = append(targets, candidate)
					}
				}

				graph.add(ref, targets)
			}
		}
	}

	return graph
}

// accepts requires every sibling matcher to agree; rules without
// matchers do not constrain namespaces.
func (r Rule) accepts(source, candidate *Resource, siblings map[string]string) bool {
	for _, field := range r.siblingFields() {
		if !r.SiblingMatchers[field].Match(source, candidate, siblings[field]) {
			return false
		}
	}
	return true
}

type ruleMatch struct {
	Path     nodepath.Path
	Value    string
	Siblings map[string]string
	Position *filepos.Position
}

// matchRule finds every non-empty scalar whose path ends with the rule's
// source path. Non-scalar matches are skipped.
func matchRule(source *Resource, rule Rule) []ruleMatch {
	var result []ruleMatch

	nodepath.Visit(source.Content, func(path nodepath.Path, val interface{}) error {
		if !rule.Source.MatchesSuffix(path) {
			return nil
		}
		scalar, ok := val.(*yamlmeta.Scalar)
		if !ok || scalar.IsNull() || len(scalar.AsString()) == 0 {
			return nil
		}

		match := ruleMatch{
			Path:     path,
			Value:    scalar.AsString(),
			Siblings: map[string]string{},
			Position: scalar.Position,
		}

		if parent, found := nodepath.Lookup(source.Content, path.Parent()); found {
			if parentMap, isMap := parent.(*yamlmeta.Map); isMap {
				for field := range rule.SiblingMatchers {
					if sibling, found := parentMap.GetValue(field); found {
						if siblingScalar, isScalar := sibling.(*yamlmeta.Scalar); isScalar {
							match.Siblings[field] = siblingScalar.AsString()
						}
					}
				}
			}
		}

		result = append(result, match)
		return nil
	})

	return result
}
