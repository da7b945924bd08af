// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package nodepath

import (
	"errors"
	"fmt"

	"github.com/johnbedeir/monokle/pkg/yamlmeta"
)

// Match is a concrete path together with the node found there.
type Match struct {
	Path  Path
	Value interface{}
}

// Lookup resolves a wildcard-free path starting at a document value.
// Null and wrong-kind intermediates count as not found.
func Lookup(root interface{}, path Path) (interface{}, bool) {
	val, found, err := LookupStrict(root, path)
	if err != nil {
		return nil, false
	}
	return val, found
}

// LookupStrict is like Lookup but reports a KindMismatchError when a
// step meets a non-null node of the wrong kind.
func LookupStrict(root interface{}, path Path) (interface{}, bool, error) {
	curr := root
	steps := path.Steps()

	for i, step := range steps {
		if isAbsent(curr) {
			return nil, false, nil
		}

		switch step.Kind {
		case KeyStep:
			typedCurr, ok := curr.(*yamlmeta.Map)
			if !ok {
				return nil, false, &KindMismatchError{Path: steps[:i], Expected: "map", Found: yamlmeta.TypeName(curr)}
			}
			val, found := typedCurr.GetValue(step.Key)
			if !found {
				return nil, false, nil
			}
			curr = val

		case IndexStep:
			typedCurr, ok := curr.(*yamlmeta.Array)
			if !ok {
				return nil, false, &KindMismatchError{Path: steps[:i], Expected: "array", Found: yamlmeta.TypeName(curr)}
			}
			if step.Index >= len(typedCurr.Items) {
				return nil, false, nil
			}
			curr = typedCurr.Items[step.Index].Value

		default:
			return nil, false, fmt.Errorf("Expected path '%s' to be concrete, but found '%s'", path, step)
		}
	}

	return curr, true, nil
}

// Expand returns every concrete match of a path, expanding each
// wildcard over the elements of the sequence found at that point.
// Branches that do not resolve are dropped.
func Expand(root interface{}, path Path) []Match {
	var result []Match
	expand(root, nil, path.Steps(), &result)
	return result
}

func expand(curr interface{}, prefix Path, steps Path, result *[]Match) {
	if len(steps) == 0 {
		*result = append(*result, Match{Path: prefix, Value: curr})
		return
	}

	step := steps[0]

	switch step.Kind {
	case KeyStep:
		if typedCurr, ok := curr.(*yamlmeta.Map); ok {
			if val, found := typedCurr.GetValue(step.Key); found {
				expand(val, prefix.Append(step), steps[1:], result)
			}
		}

	case IndexStep:
		if typedCurr, ok := curr.(*yamlmeta.Array); ok && step.Index < len(typedCurr.Items) {
			expand(typedCurr.Items[step.Index].Value, prefix.Append(step), steps[1:], result)
		}

	case WildcardStep:
		if typedCurr, ok := curr.(*yamlmeta.Array); ok {
			for i, item := range typedCurr.Items {
				expand(item.Value, prefix.Append(Index(i)), steps[1:], result)
			}
		}
	}
}

// VisitFunc is called for every node with its concrete path. Returning
// SkipChildren prevents descending into the node.
type VisitFunc func(path Path, val interface{}) error

// SkipChildren may be returned from a VisitFunc; it is not reported as an error.
var SkipChildren = errors.New("skip children")

// Visit walks a document value pre-order. The root is visited with an
// empty path.
func Visit(root interface{}, fn VisitFunc) error {
	return visit(root, Path{}, fn)
}

func visit(val interface{}, path Path, fn VisitFunc) error {
	err := fn(path, val)
	if err == SkipChildren {
		return nil
	}
	if err != nil {
		return err
	}

	switch typedVal := val.(type) {
	case *yamlmeta.Map:
		for _, item := range typedVal.Items {
			err := visit(item.Value, path.Append(Key(item.Key)), fn)
			if err != nil {
				return err
			}
		}
	case *yamlmeta.Array:
		for i, item := range typedVal.Items {
			err := visit(item.Value, path.Append(Index(i)), fn)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Set places val at path inside doc. Missing (or null) intermediates are
// created as maps for key steps and arrays for index steps. Index steps
// may address one past the end of a sequence to append to it.
func Set(doc *yamlmeta.Document, path Path, val interface{}) error {
	steps := path.Steps()
	if len(steps) == 0 {
		return doc.SetValue(val)
	}

	var holder valueHolder = &docHolder{doc}

	for i, step := range steps {
		last := i == len(steps)-1

		curr := holder.get()
		if isAbsent(curr) {
			switch step.Kind {
			case KeyStep:
				curr = yamlmeta.NewMap()
			case IndexStep:
				curr = yamlmeta.NewArray()
			default:
				return fmt.Errorf("Expected path '%s' to be concrete, but found '%s'", path, step)
			}
			holder.set(curr)
		}

		switch step.Kind {
		case KeyStep:
			typedCurr, ok := curr.(*yamlmeta.Map)
			if !ok {
				return &KindMismatchError{Path: steps[:i], Expected: "map", Found: yamlmeta.TypeName(curr)}
			}
			item, found := typedCurr.Get(step.Key)
			if !found {
				item = yamlmeta.NewMapItem(step.Key, nil)
				typedCurr.Items = append(typedCurr.Items, item)
			}
			holder = &mapItemHolder{item}

		case IndexStep:
			typedCurr, ok := curr.(*yamlmeta.Array)
			if !ok {
				return &KindMismatchError{Path: steps[:i], Expected: "array", Found: yamlmeta.TypeName(curr)}
			}
			switch {
			case step.Index < len(typedCurr.Items):
				holder = &arrayItemHolder{typedCurr.Items[step.Index]}
			case step.Index == len(typedCurr.Items):
				item := yamlmeta.NewArrayItem(nil)
				typedCurr.Items = append(typedCurr.Items, item)
				holder = &arrayItemHolder{item}
			default:
				return fmt.Errorf("Expected index %d at '%s' to be at most %d", step.Index, steps[:i], len(typedCurr.Items))
			}

		default:
			return fmt.Errorf("Expected path '%s' to be concrete, but found '%s'", path, step)
		}

		if last {
			holder.set(val)
		}
	}

	return nil
}

// Delete removes the node at path and then removes every ancestor that
// became empty as a result, stopping at the first non-empty ancestor.
// The document root itself is never removed. Reports whether a node
// was removed.
func Delete(doc *yamlmeta.Document, path Path) bool {
	steps := path.Steps()
	if len(steps) == 0 {
		return false
	}
	if !deleteOne(doc.Value, steps) {
		return false
	}

	for parentSteps := steps.Parent(); len(parentSteps) > 0; parentSteps = parentSteps.Parent() {
		parent, found := Lookup(doc.Value, parentSteps)
		if !found || !yamlmeta.IsEmptyContainer(parent) {
			break
		}
		deleteOne(doc.Value, parentSteps)
	}
	return true
}

func deleteOne(root interface{}, steps Path) bool {
	parent, found := Lookup(root, steps.Parent())
	if !found {
		return false
	}
	last, _ := steps.Last()

	switch typedParent := parent.(type) {
	case *yamlmeta.Map:
		if last.Kind == KeyStep {
			return typedParent.Delete(last.Key)
		}
	case *yamlmeta.Array:
		if last.Kind == IndexStep {
			return typedParent.Delete(last.Index)
		}
	}
	return false
}

func isAbsent(val interface{}) bool {
	if val == nil {
		return true
	}
	scalar, ok := val.(*yamlmeta.Scalar)
	return ok && scalar.IsNull()
}

type valueHolder interface {
	get() interface{}
	set(interface{})
}

type docHolder struct{ doc *yamlmeta.Document }

func (h *docHolder) get() interface{}    { return h.doc.Value }
func (h *docHolder) set(val interface{}) { h.doc.Value = val }

type mapItemHolder struct{ item *yamlmeta.MapItem }

func (h *mapItemHolder) get() interface{}    { return h.item.Value }
func (h *mapItemHolder) set(val interface{}) { h.item.Value = val }

type arrayItemHolder struct{ item *yamlmeta.ArrayItem }

func (h *arrayItemHolder) get() interface{}    { return h.item.Value }
func (h *arrayItemHolder) set(val interface{}) { h.item.Value = val }
