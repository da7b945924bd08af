// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package helmpreview_test

import (
	"testing"

	"github.com/johnbedeir/monokle/pkg/helmpreview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallArgs(t *testing.T) {
	args, err := helmpreview.InstallArgs(helmpreview.Opts{
		KubeContext: "kind-dev",
		ValuesFile:  "/tmp/values.yaml",
		Repo:        "https://charts.bitnami.com/bitnami",
		Chart:       "nginx",
		Version:     "13.2.0",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"helm", "install", "--kube-context", "kind-dev", "-f", "/tmp/values.yaml",
		"--repo", "https://charts.bitnami.com/bitnami", "nginx", "--version", "13.2.0",
		"--generate-name", "--dry-run",
	}, args)

	args, err = helmpreview.InstallArgs(helmpreview.Opts{ValuesFile: "v.yml", Repo: "r", Chart: "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"helm", "install", "-f", "v.yml", "--repo", "r", "c", "--generate-name", "--dry-run"}, args)

	_, err = helmpreview.InstallArgs(helmpreview.Opts{Repo: "r", ValuesFile: "v.yml"})
	require.EqualError(t, err, "Expected chart name to be specified")
}

func TestPreviewConfigurationArgs(t *testing.T) {
	cfg := helmpreview.PreviewConfiguration{
		Name:                   "staging",
		ChartPath:              "charts/web",
		OrderedValuesFilePaths: []string{"charts/web/values.yaml", "/etc/staging.yaml"},
		Options:                map[string]string{"--namespace": "staging", "--debug": ""},
	}

	args, err := cfg.Args("/repo", "kind-dev")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"helm", "template", "-f", "/repo/charts/web/values.yaml", "-f", "/etc/staging.yaml",
		"--debug", "--namespace", "staging", "/repo/charts/web",
	}, args)

	cfg.Command = helmpreview.CommandInstall
	args, err = cfg.Args("", "kind-dev")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"helm", "install", "--kube-context", "kind-dev", "-f", "charts/web/values.yaml", "-f", "/etc/staging.yaml",
		"--debug", "--namespace", "staging", "charts/web", "--generate-name", "--dry-run",
	}, args)

	cfg.Command = "upgrade"
	_, err = cfg.Args("", "")
	require.EqualError(t, err, "Unknown preview command 'upgrade' (known: template, install)")
}

func TestNewPreviewConfigurationFromBytes(t *testing.T) {
	cfg, err := helmpreview.NewPreviewConfigurationFromBytes([]byte(`
name: staging
chartPath: charts/web
orderedValuesFilePaths: [charts/web/values.yaml, staging.yaml]
command: install
options: {--namespace: staging}
`), "staging.yml")
	require.NoError(t, err)
	assert.Equal(t, helmpreview.PreviewConfiguration{
		Name:                   "staging",
		ChartPath:              "charts/web",
		OrderedValuesFilePaths: []string{"charts/web/values.yaml", "staging.yaml"},
		Command:                helmpreview.CommandInstall,
		Options:                map[string]string{"--namespace": "staging"},
	}, cfg)

	cfg, err = helmpreview.NewPreviewConfigurationFromBytes(
		[]byte(`{"name": "dev", "chartPath": "charts/web", "orderedValuesFilePaths": []}`), "dev.json")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Name)
	assert.Equal(t, "charts/web", cfg.ChartPath)

	_, err = helmpreview.NewPreviewConfigurationFromBytes([]byte(""), "empty.yml")
	require.EqualError(t, err, "Loading preview configuration 'empty.yml': Expected non-empty file")

	_, err = helmpreview.NewPreviewConfigurationFromBytes([]byte("name: x\nchart: y\n"), "bad.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Loading preview configuration 'bad.yml': ")
	assert.Contains(t, err.Error(), "field chart not found")
}

const dryRunOutput = `NAME: nginx-1699999999
LAST DEPLOYED: Tue Nov 14 10:00:00 2023
NAMESPACE: default
STATUS: pending-install
REVISION: 1
TEST SUITE: None
HOOKS:
MANIFEST:
---
# Source: nginx/templates/serviceaccount.yaml
apiVersion: v1
kind: ServiceAccount
metadata:
  name: nginx-1699999999
---
# Source: nginx/templates/broken.yaml
apiVersion: v1
kind: ConfigMap
data: {a: 1
---
# Source: nginx/templates/deployment.yaml
apiVersion: apps/v1
kind: Deployment
metadata:
  name: nginx-1699999999
spec:
  template:
    spec:
      serviceAccountName: nginx-1699999999

NOTES:
CHART NAME: nginx
Visit http://127.0.0.1:8080
`

func TestSplitOutput(t *testing.T) {
	manifests, notes := helmpreview.SplitOutput(dryRunOutput)
	assert.Contains(t, manifests, "kind: Deployment")
	assert.NotContains(t, manifests, "CHART NAME")
	assert.Equal(t, "CHART NAME: nginx\nVisit http://127.0.0.1:8080", notes)

	manifests, notes = helmpreview.SplitOutput("kind: Pod\n")
	assert.Equal(t, "kind: Pod\n", manifests)
	assert.Equal(t, "", notes)
}

func TestResources(t *testing.T) {
	preview := helmpreview.Resources(dryRunOutput, "preview")

	var descriptions []string
	for _, res := range preview.Resources {
		descriptions = append(descriptions, res.ID+" "+res.Description())
	}
	assert.Equal(t, []string{
		"preview#1 ServiceAccount/nginx-1699999999",
		"preview#3 Deployment/nginx-1699999999",
	}, descriptions)

	require.Len(t, preview.Warnings, 1)
	assert.Equal(t, 2, preview.Warnings[0].Document)
	assert.Contains(t, preview.Warnings[0].String(), "Ignoring document 2: ")

	// positions refer to lines of the whole output
	assert.Equal(t, "preview:11:1", preview.Resources[0].Position.AsCompactString())
	assert.Equal(t, "CHART NAME: nginx\nVisit http://127.0.0.1:8080", preview.Notes)
}
