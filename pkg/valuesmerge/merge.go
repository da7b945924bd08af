// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package valuesmerge

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/johnbedeir/monokle/pkg/filepos"
	"github.com/johnbedeir/monokle/pkg/nodepath"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
)

const DefaultValueKey = "value"

type Opts struct {
	// ValueKey names the map key whose scalar is value-bearing.
	// Defaults to DefaultValueKey.
	ValueKey string
	// AnyMappingValue makes the scalar value of every map entry
	// value-bearing, regardless of its key.
	AnyMappingValue bool

	TemplateName string
	ValuesName   string
}

func (o Opts) valueKey() string {
	if len(o.ValueKey) == 0 {
		return DefaultValueKey
	}
	return o.ValueKey
}

// IsValueBearing reports whether a scalar at the given path takes part
// in the merge.
func (o Opts) IsValueBearing(path nodepath.Path) bool {
	last, ok := path.Last()
	if !ok || last.Kind != nodepath.KeyStep {
		return false
	}
	return o.AnyMappingValue || last.Key == o.valueKey()
}

type MergeOp struct {
	Template *yamlmeta.Document
	Values   *yamlmeta.Document
	Opts     Opts
}

// Merge returns a merged copy of template; neither input is modified.
func Merge(template, values *yamlmeta.Document, opts Opts) (*yamlmeta.Document, error) {
	return MergeOp{Template: template, Values: values, Opts: opts}.Apply()
}

// MergeBytes parses both texts, merges them and prints the result
// without surrounding whitespace.
func MergeBytes(template, values []byte, opts Opts) ([]byte, error) {
	templateDoc, err := yamlmeta.NewDocumentFromBytes(template, yamlmeta.DocSetOpts{AssociatedName: opts.TemplateName})
	if err != nil {
		return nil, fmt.Errorf("Parsing template: %w", err)
	}

	valuesDoc, err := yamlmeta.NewDocumentFromBytes(values, yamlmeta.DocSetOpts{AssociatedName: opts.ValuesName})
	if err != nil {
		return nil, fmt.Errorf("Parsing values: %w", err)
	}

	result, err := Merge(templateDoc, valuesDoc, opts)
	if err != nil {
		return nil, err
	}

	bs, err := result.AsYAMLBytes()
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(bs), nil
}

func (o MergeOp) Apply() (*yamlmeta.Document, error) {
	result := yamlmeta.NewDocument(nil)
	if o.Template != nil {
		result = o.Template.DeepCopy()
	}

	removals, err := o.applyValues(result)
	if err != nil {
		return nil, err
	}

	// Later paths go first so that pruning a sequence element
	// cannot shift the index of a path still waiting for removal.
	for i := len(removals) - 1; i >= 0; i-- {
		nodepath.Delete(result, removals[i])
	}

	err = o.addMissing(result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyValues overwrites value-bearing scalars and replaces sequences
// in result; it returns paths to remove in visiting order.
func (o MergeOp) applyValues(result *yamlmeta.Document) ([]nodepath.Path, error) {
	var removals []nodepath.Path
	values := o.valuesRoot()

	err := nodepath.Visit(result.Value, func(path nodepath.Path, val interface{}) error {
		switch typedVal := val.(type) {
		case *yamlmeta.Scalar:
			if !o.Opts.IsValueBearing(path) {
				return nil
			}
			valuesVal, found, err := nodepath.LookupStrict(values, path)
			if err != nil {
				return o.unrepresentable(path, typedVal.Position, err)
			}
			if valuesScalar, isScalar := valuesVal.(*yamlmeta.Scalar); found && isScalar {
				typedVal.SetContentFrom(valuesScalar)
			} else {
				removals = append(removals, path)
			}

		case *yamlmeta.Array:
			valuesVal, _, err := nodepath.LookupStrict(values, path)
			if err != nil {
				return o.unrepresentable(path, typedVal.Position, err)
			}
			if valuesArray, isArray := valuesVal.(*yamlmeta.Array); isArray {
				typedVal.Items = valuesArray.DeepCopy().Items
				if len(typedVal.Items) == 0 {
					removals = append(removals, path)
				}
				return nodepath.SkipChildren
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removals, nil
}

// addMissing copies value-bearing scalars and non-empty sequences of the
// values document that result does not have yet.
func (o MergeOp) addMissing(result *yamlmeta.Document) error {
	return nodepath.Visit(o.valuesRoot(), func(path nodepath.Path, val interface{}) error {
		switch typedVal := val.(type) {
		case *yamlmeta.Scalar:
			if !o.Opts.IsValueBearing(path) || o.exists(result, path) {
				return nil
			}
			return o.set(result, path, typedVal.DeepCopy(), typedVal.Position)

		case *yamlmeta.Array:
			if len(typedVal.Items) == 0 || o.exists(result, path) {
				return nil
			}
			err := o.set(result, path, typedVal.DeepCopy(), typedVal.Position)
			if err != nil {
				return err
			}
			return nodepath.SkipChildren
		}
		return nil
	})
}

func (o MergeOp) valuesRoot() interface{} {
	if o.Values == nil {
		return nil
	}
	return o.Values.Value
}

// exists treats nulls as missing so that values may fill them in.
func (o MergeOp) exists(result *yamlmeta.Document, path nodepath.Path) bool {
	val, found := nodepath.Lookup(result.Value, path)
	if !found || val == nil {
		return false
	}
	scalar, isScalar := val.(*yamlmeta.Scalar)
	return !isScalar || !scalar.IsNull()
}

func (o MergeOp) set(result *yamlmeta.Document, path nodepath.Path, val interface{}, pos *filepos.Position) error {
	err := nodepath.Set(result, path, val)
	if err != nil {
		return o.unrepresentable(path, pos, err)
	}
	return nil
}

func (o MergeOp) unrepresentable(path nodepath.Path, pos *filepos.Position, err error) error {
	var mismatchErr *nodepath.KindMismatchError
	if errors.As(err, &mismatchErr) {
		return newUnrepresentableMergeError(path, pos, mismatchErr)
	}
	return fmt.Errorf("Merging '%s': %w", path, err)
}
