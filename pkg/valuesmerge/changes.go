// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package valuesmerge

import (
	"strings"

	"github.com/johnbedeir/monokle/pkg/filepos"
	"github.com/johnbedeir/monokle/pkg/nodepath"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
	ChangeUpdated ChangeKind = "updated"
)

// Change describes one value-bearing scalar that differs between a
// template and a merge result.
type Change struct {
	Path     nodepath.Path
	Kind     ChangeKind
	From     string
	To       string
	Position *filepos.Position
}

// InlineDiff marks removed text as [-...-] and added text as {+...+}.
func (c Change) InlineDiff() string {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(c.From, c.To, false))

	var sb strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + diff.Text + "+}")
		default:
			sb.WriteString(diff.Text)
		}
	}
	return sb.String()
}

// Changes lists value-bearing scalars that were updated, removed or
// added. Removed and updated ones follow template order; added ones
// follow the order of the merge result.
func Changes(template, merged *yamlmeta.Document, opts Opts) []Change {
	before, beforeOrder := valueScalars(template, opts)
	after, afterOrder := valueScalars(merged, opts)

	var result []Change

	for _, key := range beforeOrder {
		was := before[key]
		now, found := after[key]
		switch {
		case !found:
			result = append(result, Change{Path: was.path, Kind: ChangeRemoved,
				From: was.scalar.AsString(), Position: was.scalar.Position})
		case was.scalar.AsString() != now.scalar.AsString() || was.scalar.Tag != now.scalar.Tag:
			result = append(result, Change{Path: was.path, Kind: ChangeUpdated,
				From: was.scalar.AsString(), To: now.scalar.AsString(), Position: was.scalar.Position})
		}
	}

	for _, key := range afterOrder {
		if _, found := before[key]; found {
			continue
		}
		now := after[key]
		result = append(result, Change{Path: now.path, Kind: ChangeAdded,
			To: now.scalar.AsString(), Position: now.scalar.Position})
	}

	return result
}

type pathScalar struct {
	path   nodepath.Path
	scalar *yamlmeta.Scalar
}

func valueScalars(doc *yamlmeta.Document, opts Opts) (map[string]pathScalar, []string) {
	result := map[string]pathScalar{}
	var order []string

	if doc == nil {
		return result, order
	}

	nodepath.Visit(doc.Value, func(path nodepath.Path, val interface{}) error {
		if scalar, ok := val.(*yamlmeta.Scalar); ok && opts.IsValueBearing(path) {
			key := path.String()
			result[key] = pathScalar{path, scalar}
			order = append(order, key)
		}
		return nil
	})

	return result, order
}
