// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package manifest_test

import (
	"testing"

	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/manifest"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourcesFromBytes(t *testing.T) {
	data := `
apiVersion: v1
kind: Secret
metadata:
  name: creds
  namespace: ns1
---
# only a comment
---
- not
- a map
---
apiVersion: v1
kind: ConfigMap
---
apiVersion: v1
kind: ConfigMap
metadata: {name: settings}
`

	resources, skipped, err := manifest.ResourcesFromBytes([]byte(data), "app.yml")
	require.NoError(t, err)

	require.Len(t, resources, 2)
	assert.Equal(t, "app.yml#0", resources[0].ID)
	assert.Equal(t, "Secret/ns1/creds", resources[0].Description())
	assert.Equal(t, "app.yml:2:1", resources[0].Position.AsCompactString())
	assert.Equal(t, "app.yml#4", resources[1].ID)
	assert.Equal(t, "ConfigMap/settings", resources[1].Description())

	var reasons []string
	for _, skip := range skipped {
		reasons = append(reasons, skip.String())
	}
	assert.Equal(t, []string{
		"app.yml#2: Expected document to be a map, but was array",
		"app.yml#3: Expected resource 'app.yml#3' to have non-empty 'metadata.name'",
	}, reasons)
}

func TestResourcesFromBytesParseError(t *testing.T) {
	_, _, err := manifest.ResourcesFromBytes([]byte("a: 1\na: 2\n"), "dup.yml")
	require.Error(t, err)

	var parseErr *yamlmeta.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestResourcesFromFiles(t *testing.T) {
	input := []*files.File{
		files.MustNewFileFromSource(files.NewBytesSource("pod.yml", []byte("apiVersion: v1\nkind: Pod\nmetadata: {name: web}\n"))),
		files.MustNewFileFromSource(files.NewBytesSource("notes.txt", []byte("not yaml: [\n"))),
		files.MustNewFileFromSource(files.NewBytesSource("sa.json", []byte(`{"apiVersion": "v1", "kind": "ServiceAccount", "metadata": {"name": "web"}}`))),
	}

	resources, skipped, err := manifest.ResourcesFromFiles(input)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	var ids []string
	for _, res := range resources {
		ids = append(ids, res.ID)
	}
	assert.Equal(t, []string{"pod.yml#0", "sa.json#0"}, ids)
}
