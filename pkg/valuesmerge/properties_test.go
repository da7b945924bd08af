// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package valuesmerge_test

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/johnbedeir/monokle/pkg/nodepath"
	"github.com/johnbedeir/monokle/pkg/valuesmerge"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/stretchr/testify/require"
)

var fuzzKeys = []string{"a", "b", "value"}

func newTreeFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.New().RandSource(rand.NewSource(seed)).Funcs(
		func(doc *yamlmeta.Document, c fuzz.Continue) {
			*doc = *yamlmeta.NewDocument(randomMap(c, 0))
		},
	)
}

func randomValue(c fuzz.Continue, depth int) interface{} {
	kind := c.Intn(4)
	switch {
	case depth >= 3 || kind == 0:
		if c.Intn(8) == 0 {
			return yamlmeta.NewNullScalar()
		}
		return yamlmeta.MustNewScalar(c.Intn(4))
	case kind == 1:
		arr := yamlmeta.NewArray()
		for i := 0; i < c.Intn(3); i++ {
			arr.Items = append(arr.Items, yamlmeta.NewArrayItem(randomValue(c, depth+1)))
		}
		return arr
	default:
		return randomMap(c, depth)
	}
}

func randomMap(c fuzz.Continue, depth int) *yamlmeta.Map {
	m := yamlmeta.NewMap()
	for _, idx := range c.Perm(len(fuzzKeys)) {
		if c.RandBool() {
			m.Items = append(m.Items, yamlmeta.NewMapItem(fuzzKeys[idx], randomValue(c, depth+1)))
		}
	}
	return m
}

func printDoc(t *testing.T, doc *yamlmeta.Document) string {
	bs, err := doc.AsYAMLBytes()
	require.NoError(t, err)
	return string(bs)
}

type valueScalar struct {
	path   nodepath.Path
	scalar *yamlmeta.Scalar
}

func valueScalars(doc *yamlmeta.Document) []valueScalar {
	var result []valueScalar
	opts := valuesmerge.Opts{}
	nodepath.Visit(doc.Value, func(path nodepath.Path, val interface{}) error {
		if scalar, ok := val.(*yamlmeta.Scalar); ok && opts.IsValueBearing(path) {
			result = append(result, valueScalar{path, scalar})
		}
		return nil
	})
	return result
}

func TestMergeProperties(t *testing.T) {
	f := newTreeFuzzer(7)
	merged := 0

	for i := 0; i < 2000; i++ {
		template := &yamlmeta.Document{}
		values := &yamlmeta.Document{}
		f.Fuzz(template)
		f.Fuzz(values)

		result, err := valuesmerge.Merge(template, values, valuesmerge.Opts{})
		if err != nil {
			// shapes of the two trees disagree
			continue
		}
		merged++

		desc := "template:\n" + printDoc(t, template) + "values:\n" + printDoc(t, values)

		// idempotence
		again, err := valuesmerge.Merge(result, values, valuesmerge.Opts{})
		require.NoError(t, err, desc)
		require.Equal(t, printDoc(t, result), printDoc(t, again), desc)

		// every value scalar in the result comes from values
		for _, item := range valueScalars(result) {
			valuesVal, found := nodepath.Lookup(values.Value, item.path)
			require.True(t, found, "%s: expected '%s' in values", desc, item.path)
			valuesScalar, ok := valuesVal.(*yamlmeta.Scalar)
			require.True(t, ok, "%s: expected scalar at '%s'", desc, item.path)
			require.Equal(t, valuesScalar.AsString(), item.scalar.AsString(), desc)
		}

		// every value scalar in values is present in the result; template
		// maps and sequences at the same path are kept as they are
		for _, item := range valueScalars(values) {
			resultVal, found := nodepath.Lookup(result.Value, item.path)
			require.True(t, found, "%s: expected '%s' in result", desc, item.path)
			if resultScalar, ok := resultVal.(*yamlmeta.Scalar); ok {
				require.Equal(t, item.scalar.AsString(), resultScalar.AsString(), desc)
			}
		}
	}

	require.Greater(t, merged, 100)
}
