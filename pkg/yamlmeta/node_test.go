// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta_test

import (
	"testing"

	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewScalar(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		scalar := yamlmeta.MustNewScalar(5)
		assert.Equal(t, "5", scalar.Literal)
		assert.Equal(t, "!!int", scalar.Tag)
	})
	t.Run("string that looks like a number is quoted", func(t *testing.T) {
		scalar := yamlmeta.MustNewScalar("5")
		assert.Equal(t, "5", scalar.Literal)
		assert.Equal(t, yaml.DoubleQuotedStyle, scalar.Style)
	})
	t.Run("nil", func(t *testing.T) {
		scalar := yamlmeta.MustNewScalar(nil)
		assert.True(t, scalar.IsNull())
		assert.Equal(t, "", scalar.AsString())
	})
	t.Run("non scalar values are rejected", func(t *testing.T) {
		_, err := yamlmeta.NewScalar([]string{"a"})
		require.Error(t, err)
	})
}

func TestMapAddValueRejectsDuplicateKeys(t *testing.T) {
	m := yamlmeta.NewMap()
	require.NoError(t, m.AddValue(yamlmeta.NewMapItem("a", yamlmeta.MustNewScalar(1))))

	err := m.AddValue(yamlmeta.NewMapItem("a", yamlmeta.MustNewScalar(2)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key 'a'")
}

func TestSetValueRejectsItems(t *testing.T) {
	item := yamlmeta.NewMapItem("a", nil)
	err := item.SetValue(yamlmeta.NewArrayItem(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot set non-value")
}

func TestDeepCopyIsIndependent(t *testing.T) {
	doc, err := yamlmeta.NewDocumentFromBytes([]byte("a:\n  b: [1, 2]\n"), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	cp := doc.DeepCopy()
	cpRoot, _ := cp.RootMap()
	cpRoot.Delete("a")

	root, _ := doc.RootMap()
	assert.Equal(t, []string{"a"}, root.Keys())
	assert.True(t, cp.IsEmpty())
}

func TestPrinterDump(t *testing.T) {
	doc, err := yamlmeta.NewDocumentFromBytes([]byte("a: 1 # one\n"), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	root, _ := doc.RootMap()
	printer := yamlmeta.NewPrinterWithOpts(nil, yamlmeta.PrinterOpts{ExcludeRefs: true})

	out := printer.PrintStr(root)
	assert.Contains(t, out, "key=a")
	assert.Contains(t, out, "'# one'")
}
