// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserDocSetEmpty(t *testing.T) {
	docSet, err := yamlmeta.NewDocumentSetFromBytes([]byte(""), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	require.Len(t, docSet.Items, 1)
	assert.True(t, docSet.Items[0].IsEmpty())

	bs, err := docSet.AsBytes()
	require.NoError(t, err)
	assert.Equal(t, "", string(bs))
}

func TestParserPositions(t *testing.T) {
	const data = `a: 1
b:
- x
- y: 2
`
	doc, err := yamlmeta.NewDocumentFromBytes([]byte(data), yamlmeta.DocSetOpts{AssociatedName: "values.yaml"})
	require.NoError(t, err)

	root, ok := doc.RootMap()
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, root.Keys())

	assert.Equal(t, "values.yaml:1:1", root.Items[0].Position.AsCompactString())
	assert.Equal(t, 2, root.Items[1].Position.LineNum())

	arr := root.Items[1].Value.(*yamlmeta.Array)
	require.Len(t, arr.Items, 2)
	assert.Equal(t, 3, arr.Items[0].Position.LineNum())
	assert.Equal(t, 3, arr.Items[0].Position.Column())

	nested := arr.Items[1].Value.(*yamlmeta.Map)
	item, found := nested.Get("y")
	require.True(t, found)
	assert.Equal(t, 4, item.Position.LineNum())
	assert.Equal(t, 2, item.Value.(*yamlmeta.Scalar).Value)
}

func TestParserScalarValues(t *testing.T) {
	const data = `str: hello
quoted: "1.21"
int: 42
float: 1.5
bool: true
empty:
`
	doc, err := yamlmeta.NewDocumentFromBytes([]byte(data), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	root, _ := doc.RootMap()
	expected := map[string]interface{}{
		"str":    "hello",
		"quoted": "1.21",
		"int":    42,
		"float":  1.5,
		"bool":   true,
		"empty":  nil,
	}
	for key, val := range expected {
		item, found := root.Get(key)
		require.True(t, found, key)
		assert.Equal(t, val, item.Value.(*yamlmeta.Scalar).Value, key)
	}

	quoted, _ := root.Get("quoted")
	assert.Equal(t, "1.21", quoted.Value.(*yamlmeta.Scalar).Literal)
}

func TestParserDuplicateKeysAreErrors(t *testing.T) {
	const data = `spec:
  name: a
  name: b
`
	_, err := yamlmeta.NewDocumentSetFromBytes([]byte(data), yamlmeta.DocSetOpts{AssociatedName: "dup.yaml"})
	require.Error(t, err)

	var parseErr *yamlmeta.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Position.LineNum())
	assert.Contains(t, err.Error(), "duplicate map key 'name'")
	assert.Contains(t, err.Error(), "dup.yaml:3")
}

func TestParserSyntaxErrors(t *testing.T) {
	_, err := yamlmeta.NewDocumentSetFromBytes([]byte("a: b: c\n"), yamlmeta.DocSetOpts{AssociatedName: "bad.yaml"})
	require.Error(t, err)

	var parseErr *yamlmeta.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 1, parseErr.Position.LineNum())
	assert.Equal(t, "bad.yaml", parseErr.Position.GetFile())
}

func TestParserNonScalarKeysAreErrors(t *testing.T) {
	_, err := yamlmeta.NewDocumentSetFromBytes([]byte("? [a, b]\n: c\n"), yamlmeta.DocSetOpts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected map key to be a scalar")
}

func TestParserExpandsAliases(t *testing.T) {
	const data = `base: &base
  x: 1
other: *base
`
	doc, err := yamlmeta.NewDocumentFromBytes([]byte(data), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	root, _ := doc.RootMap()
	other, _ := root.Get("other")
	otherMap, ok := other.Value.(*yamlmeta.Map)
	require.True(t, ok)
	assert.Equal(t, "", otherMap.Anchor)
	assert.Equal(t, []string{"x"}, otherMap.Keys())

	base, _ := root.Get("base")
	assert.Equal(t, "base", base.Value.(*yamlmeta.Map).Anchor)

	// expansion is a copy
	otherMap.Items[0].Value.(*yamlmeta.Scalar).SetContentFrom(yamlmeta.MustNewScalar(2))
	assert.Equal(t, 1, base.Value.(*yamlmeta.Map).Items[0].Value.(*yamlmeta.Scalar).Value)
}

func TestParserMultipleDocuments(t *testing.T) {
	const data = `a: 1
---
b: 2
`
	docSet, err := yamlmeta.NewDocumentSetFromBytes([]byte(data), yamlmeta.DocSetOpts{})
	require.NoError(t, err)
	require.Len(t, docSet.Items, 2)

	bs, err := docSet.AsBytes()
	require.NoError(t, err)
	assertEqual(t, string(bs), data)
}

func TestPrinterPreservesFormatting(t *testing.T) {
	const data = `# chart values
replicaCount: 1 # how many
image:
  repository: nginx
  tag: "1.21"
  pullPolicy: 'IfNotPresent'
ports: [80, 443]
list:
  - a
  - b
`
	doc, err := yamlmeta.NewDocumentFromBytes([]byte(data), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	bs, err := doc.AsYAMLBytes()
	require.NoError(t, err)
	assertEqual(t, string(bs), data)
}

func TestPrinterUsesUpdatedContent(t *testing.T) {
	const data = `image:
  tag: "1.21" # pinned
`
	doc, err := yamlmeta.NewDocumentFromBytes([]byte(data), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	root, _ := doc.RootMap()
	image, _ := root.Get("image")
	tag, _ := image.Value.(*yamlmeta.Map).Get("tag")
	tag.Value.(*yamlmeta.Scalar).SetContentFrom(yamlmeta.MustNewScalar(2))

	bs, err := doc.AsYAMLBytes()
	require.NoError(t, err)
	assertEqual(t, string(bs), "image:\n  tag: 2 # pinned\n")
}

func TestDocumentAsJSONBytesKeepsOrder(t *testing.T) {
	doc, err := yamlmeta.NewDocumentFromBytes([]byte("z: 1\na: [true, null]\nm: {k: v}\n"), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	bs, err := doc.AsJSONBytes()
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":[true,null],"m":{"k":"v"}}`, string(bs))
}

func assertEqual(t *testing.T, actual, expected string) {
	t.Helper()
	if actual != expected {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n", difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
