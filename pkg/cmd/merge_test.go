// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/johnbedeir/monokle/pkg/cmd"
	"github.com/johnbedeir/monokle/pkg/cmd/ui"
	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/johnbedeir/monokle/pkg/valuesmerge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mergeTemplate = `image:
  repository:
    value: nginx
  tag:
    value: "1.21"
replicas:
  value: 1
`
	mergeValues = `image:
  tag:
    value: "1.25"
replicas:
  value: 3
extra:
  value: x
`
)

func runMerge(t *testing.T, output, template, values string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	tty := ui.NewCustomWriterTTY(false, &stdout, &stderr)

	opts := cmd.NewMergeOptions()
	opts.ValueKey = valuesmerge.DefaultValueKey
	opts.Output = output

	err := opts.RunWithFiles(
		files.MustNewFileFromSource(files.NewBytesSource("template.yml", []byte(template))),
		files.MustNewFileFromSource(files.NewBytesSource("values.yml", []byte(values))),
		tty)
	return stdout.String(), stderr.String(), err
}

func TestMergeCmdYAML(t *testing.T) {
	out, _, err := runMerge(t, cmd.MergeOutputYAML, mergeTemplate, mergeValues)
	require.NoError(t, err)

	assert.Equal(t, `image:
  tag:
    value: "1.25"
replicas:
  value: 3
extra:
  value: x
`, out)
}

func TestMergeCmdJSON(t *testing.T) {
	out, _, err := runMerge(t, cmd.MergeOutputJSON, mergeTemplate, mergeValues)
	require.NoError(t, err)
	assert.Equal(t, `{"image":{"tag":{"value":"1.25"}},"replicas":{"value":3},"extra":{"value":"x"}}`+"\n", out)
}

func TestMergeCmdChanges(t *testing.T) {
	out, _, err := runMerge(t, cmd.MergeOutputChanges, mergeTemplate, mergeValues)
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"removed image.repository.value (template.yml:3:12): nginx",
		"updated image.tag.value (template.yml:5:12): 1.2[-1-]{+5+}",
		"updated replicas.value (template.yml:7:10): [-1-]{+3+}",
		"added   extra.value (values.yml:7:10): x",
	}, "\n")+"\n", out)
}

func TestMergeCmdDiff(t *testing.T) {
	out, _, err := runMerge(t, cmd.MergeOutputDiff, mergeTemplate, mergeValues)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Contains(t, lines, "-     value: nginx")
	assert.Contains(t, lines, "+ extra:")
	assert.Contains(t, lines, "  image:")
}

func TestMergeCmdPatch(t *testing.T) {
	out, _, err := runMerge(t, cmd.MergeOutputPatch, mergeTemplate, mergeValues)
	require.NoError(t, err)
	assert.JSONEq(t, `{"image":{"repository":null,"tag":{"value":"1.25"}},"replicas":{"value":3},"extra":{"value":"x"}}`, out)
}

func TestMergeCmdErrors(t *testing.T) {
	_, _, err := runMerge(t, "toml", mergeTemplate, mergeValues)
	require.EqualError(t, err, "Unknown output format 'toml'")

	_, _, err = runMerge(t, cmd.MergeOutputYAML, "a: 1\na: 2\n", mergeValues)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parsing template: ")

	_, _, err = runMerge(t, cmd.MergeOutputYAML, mergeTemplate, "a: 1\n---\nb: 2\n")
	require.EqualError(t, err, "Parsing values: Expected values.yml to contain a single document, but found 2")

	_, _, err = runMerge(t, cmd.MergeOutputYAML, "a: 1\n", "a:\n  b:\n    value: 2\n")
	require.Error(t, err)

	var mergeErr *valuesmerge.UnrepresentableMergeError
	require.ErrorAs(t, err, &mergeErr)
}

func TestMergeCmdDefaultsToPlainValues(t *testing.T) {
	opts := cmd.NewMergeOptions()
	cobraCmd := cmd.NewMergeCmd(opts)
	require.NoError(t, cobraCmd.ParseFlags([]string{"-o", "yaml"}))
	require.True(t, opts.AnyMappingValue)

	var stdout, stderr bytes.Buffer
	template := "replicaCount: 1\nimage:\n  tag: \"1.0\"\n  pullPolicy: Always\n"
	values := "replicaCount: 3\nimage:\n  tag: \"2.0\"\nextra: true\n"

	err := opts.RunWithFiles(
		files.MustNewFileFromSource(files.NewBytesSource("template.yml", []byte(template))),
		files.MustNewFileFromSource(files.NewBytesSource("values.yml", []byte(values))),
		ui.NewCustomWriterTTY(false, &stdout, &stderr))
	require.NoError(t, err)

	assert.Equal(t, "replicaCount: 3\nimage:\n  tag: \"2.0\"\nextra: true\n", stdout.String())
}
