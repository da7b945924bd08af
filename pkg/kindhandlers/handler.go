// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package kindhandlers

import (
	"fmt"
	"sort"

	"github.com/johnbedeir/monokle/pkg/refs"
)

type Handler struct {
	Kind string
	// APIVersionMatcher is refs.AnyAPIVersion or an exact apiVersion.
	APIVersionMatcher string
	// ClusterAPIVersion is the apiVersion served by clusters for this kind.
	ClusterAPIVersion string
	Namespaced        bool
	Section           string
	Description       string
	OutgoingRefRules  []refs.Rule
}

func (h Handler) Validate() error {
	if len(h.Kind) == 0 {
		return fmt.Errorf("Expected handler to have kind")
	}
	for i, rule := range h.OutgoingRefRules {
		if len(rule.Source) == 0 {
			return fmt.Errorf("Expected handler '%s' rule %d to have source path", h.Kind, i)
		}
		if len(rule.TargetKind) == 0 {
			return fmt.Errorf("Expected handler '%s' rule %d to have target kind", h.Kind, i)
		}
	}
	return nil
}

// Registry keeps handlers in registration order. Several handlers may
// exist for one kind (e.g. built-in and rule file ones); their rules add up.
type Registry struct {
	handlers []Handler
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds handlers only when all of them are valid.
func (r *Registry) Register(handlers ...Handler) error {
	for _, handler := range handlers {
		err := handler.Validate()
		if err != nil {
			return err
		}
	}
	for _, handler := range handlers {
		if len(handler.APIVersionMatcher) == 0 {
			handler.APIVersionMatcher = refs.AnyAPIVersion
		}
		r.handlers = append(r.handlers, handler)
	}
	return nil
}

func (r *Registry) MustRegister(handlers ...Handler) {
	err := r.Register(handlers...)
	if err != nil {
		panic(fmt.Sprintf("Registering handlers: %s", err))
	}
}

func (r *Registry) Handlers() []Handler {
	return append([]Handler{}, r.handlers...)
}

// HandlersFor returns handlers registered for a kind whose apiVersion
// matcher accepts apiVersion.
func (r *Registry) HandlersFor(kind, apiVersion string) []Handler {
	var result []Handler
	for _, handler := range r.handlers {
		if handler.Kind != kind {
			continue
		}
		if handler.APIVersionMatcher == refs.AnyAPIVersion || handler.APIVersionMatcher == apiVersion {
			result = append(result, handler)
		}
	}
	return result
}

func (r *Registry) Kinds() []string {
	seen := map[string]struct{}{}
	var kinds []string
	for _, handler := range r.handlers {
		if _, found := seen[handler.Kind]; !found {
			seen[handler.Kind] = struct{}{}
			kinds = append(kinds, handler.Kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}

// RuleSet builds the rules consumed by refs.Resolve.
func (r *Registry) RuleSet() *refs.RuleSet {
	rules := refs.NewRuleSet()
	for _, handler := range r.handlers {
		if len(handler.OutgoingRefRules) > 0 {
			rules.Add(handler.Kind, handler.APIVersionMatcher, handler.OutgoingRefRules...)
		}
	}
	return rules
}
