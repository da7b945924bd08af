// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package kindhandlers

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/johnbedeir/monokle/pkg/nodepath"
	"github.com/johnbedeir/monokle/pkg/orderedmap"
	"github.com/johnbedeir/monokle/pkg/refs"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
)

var (
	labelsPath      = nodepath.MustParse("$.metadata.labels")
	annotationsPath = nodepath.MustParse("$.metadata.annotations")
)

type conditionEnv struct {
	APIVersion  string                 `expr:"apiVersion"`
	Kind        string                 `expr:"kind"`
	Name        string                 `expr:"name"`
	Namespace   string                 `expr:"namespace"`
	Labels      map[string]string      `expr:"labels"`
	Annotations map[string]string      `expr:"annotations"`
	Content     map[string]interface{} `expr:"content"`
}

// ExprCondition is a refs.RuleCondition written as an expr-lang boolean
// expression.
type ExprCondition struct {
	source  string
	program *vm.Program
}

var _ refs.RuleCondition = &ExprCondition{}

func NewExprCondition(source string) (*ExprCondition, error) {
	program, err := expr.Compile(source, expr.Env(conditionEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("Compiling condition '%s': %s", source, err)
	}
	return &ExprCondition{source: source, program: program}, nil
}

// Matches evaluates the condition; evaluation errors (e.g. indexing a
// missing field) count as not matching.
func (c *ExprCondition) Matches(source *refs.Resource) bool {
	output, err := expr.Run(c.program, newConditionEnv(source))
	if err != nil {
		return false
	}
	result, ok := output.(bool)
	return ok && result
}

func (c *ExprCondition) String() string { return c.source }

func newConditionEnv(res *refs.Resource) conditionEnv {
	env := conditionEnv{
		APIVersion:  res.APIVersion,
		Kind:        res.Kind,
		Name:        res.Name,
		Namespace:   res.Namespace,
		Labels:      stringMap(res.Content, labelsPath),
		Annotations: stringMap(res.Content, annotationsPath),
		Content:     map[string]interface{}{},
	}
	if res.Content != nil {
		converted := orderedmap.Conversion{Object: yamlmeta.NewGoFromAST(res.Content)}.AsUnorderedStringMaps()
		if typedConverted, ok := converted.(map[string]interface{}); ok {
			env.Content = typedConverted
		}
	}
	return env
}

func stringMap(content *yamlmeta.Map, path nodepath.Path) map[string]string {
	result := map[string]string{}
	if content == nil {
		return result
	}
	val, found := nodepath.Lookup(content, path)
	if !found {
		return result
	}
	typedMap, ok := val.(*yamlmeta.Map)
	if !ok {
		return result
	}
	for _, item := range typedMap.Items {
		if scalar, isScalar := item.Value.(*yamlmeta.Scalar); isScalar {
			result[item.Key] = scalar.AsString()
		}
	}
	return result
}
