// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeHelmValues(t *testing.T) {
	args := []string{"merge", "-t", "../../examples/merge-helm-values/template.yml",
		"-v", "../../examples/merge-helm-values/values.yml", "--any-mapping-value", "-o", "json"}

	actualOutput := runMonokle(t, args, "")

	expectedOutput, err := os.ReadFile("../../examples/merge-helm-values/expected.json")
	require.NoError(t, err)
	require.Equal(t, string(expectedOutput), actualOutput)
}

func TestMergeReadsStdin(t *testing.T) {
	args := []string{"merge", "-t", "../../examples/merge-helm-values/template.yml",
		"-v", "-", "--any-mapping-value", "-o", "json"}

	actualOutput := runMonokle(t, args, "../../examples/merge-helm-values/values.yml")

	expectedOutput, err := os.ReadFile("../../examples/merge-helm-values/expected.json")
	require.NoError(t, err)
	require.Equal(t, string(expectedOutput), actualOutput)
}

func TestMergeChanges(t *testing.T) {
	args := []string{"merge", "-t", "../../examples/merge-helm-values/template.yml",
		"-v", "../../examples/merge-helm-values/values.yml", "--any-mapping-value", "-o", "changes", "--color", "never"}

	actualOutput := runMonokle(t, args, "")

	lines := strings.Split(strings.TrimSuffix(actualOutput, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "updated replicaCount (template.yml:2:15): [-1-]{+3+}", lines[0])
	assert.Equal(t, "updated image.tag (template.yml:7:8): 1.2[-1-]{+5+}", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "updated service.type (template.yml:10:9): "))
	assert.True(t, strings.HasPrefix(lines[3], "updated ingress.enabled (template.yml:14:12): "))
	assert.True(t, strings.HasPrefix(lines[4], "updated ingress.hosts[0].host (template.yml:16:11): "))
	assert.Equal(t, "added   resources.limits.memory (values.yml:15:13): 128Mi", lines[5])
}

func TestRefsWithRuleFile(t *testing.T) {
	args := []string{"refs", "-f", "../../examples/refs-workloads/manifests/",
		"--rules", "../../examples/refs-workloads/rules.yml", "-o", "json"}

	actualOutput := runMonokle(t, args, "")

	var view struct {
		References []struct {
			Source struct {
				Resource string `json:"resource"`
			} `json:"source"`
			SourcePath string `json:"sourcePath"`
			Targets    []struct {
				Resource string `json:"resource"`
			} `json:"targets"`
		} `json:"references"`
	}
	require.NoError(t, json.Unmarshal([]byte(actualOutput), &view))

	var edges []string
	for _, ref := range view.References {
		for _, target := range ref.Targets {
			edges = append(edges, ref.Source.Resource+" "+ref.SourcePath+" -> "+target.Resource)
		}
	}

	assert.ElementsMatch(t, []string{
		"Deployment/shop/api spec.template.spec.containers[0].envFrom[0].configMapRef.name -> ConfigMap/shop/api-settings",
		"Deployment/shop/api spec.template.spec.volumes[0].secret.secretName -> Secret/shop/api-tls",
		"Deployment/shop/api spec.template.spec.serviceAccountName -> ServiceAccount/shop/api",
		"Ingress/shop/api spec.tls[0].secretName -> Secret/shop/api-tls",
	}, edges)
}

func TestRefsWithoutRuleFileIgnoresIngress(t *testing.T) {
	args := []string{"refs", "-f", "../../examples/refs-workloads/manifests/", "--color", "never"}

	actualOutput := runMonokle(t, args, "")

	require.True(t, strings.Contains(actualOutput, "-> Secret/shop/api-tls"))
	require.False(t, strings.Contains(actualOutput, "Ingress/shop/api"))
}

func TestKindsListsRuleFileHandlers(t *testing.T) {
	args := []string{"kinds", "--rules", "../../examples/refs-workloads/rules.yml", "--color", "never"}

	actualOutput := runMonokle(t, args, "")

	require.Contains(t, actualOutput, "Ingress (networking.k8s.io/v1, namespaced, Network, 1 rules)\n")
}

func TestUnknownFlagFails(t *testing.T) {
	command := exec.Command("../../monokle", "merge", "--no-such-flag")
	err := command.Run()
	require.Error(t, err)
}

func runMonokle(t *testing.T, args []string, stdinFileName string) string {
	command := exec.Command("../../monokle", args...)
	stdError := bytes.NewBufferString("")
	command.Stderr = stdError

	if stdinFileName != "" {
		fileToUseInStdIn, err := os.Open(stdinFileName)
		require.NoError(t, err)
		defer fileToUseInStdIn.Close()
		command.Stdin = fileToUseInStdIn
	}
	output, err := command.Output()
	require.NoError(t, err, stdError.String())

	return string(output)
}
