// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package kindhandlers_test

import (
	"testing"

	"github.com/johnbedeir/monokle/pkg/kindhandlers"
	"github.com/johnbedeir/monokle/pkg/refs"
	"github.com/johnbedeir/monokle/pkg/yamlmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resources(t *testing.T, data string) []*refs.Resource {
	docSet, err := yamlmeta.NewDocumentSetFromBytes([]byte(data), yamlmeta.DocSetOpts{})
	require.NoError(t, err)

	var result []*refs.Resource
	for _, doc := range docSet.Items {
		root, ok := doc.RootMap()
		require.True(t, ok)

		res, err := refs.NewResource("", root)
		require.NoError(t, err)
		res.ID = res.Description()
		result = append(result, res)
	}
	return result
}

func targetIDs(edges []refs.Edge) []string {
	var result []string
	for _, edge := range edges {
		result = append(result, edge.TargetID)
	}
	return result
}

func TestBuiltinKinds(t *testing.T) {
	registry := kindhandlers.NewBuiltinRegistry()

	assert.Equal(t, []string{
		"ConfigMap", "CronJob", "DaemonSet", "Deployment", "Job", "PersistentVolumeClaim",
		"Pod", "ReplicaSet", "ReplicationController", "Secret", "ServiceAccount", "StatefulSet",
	}, registry.Kinds())

	cronJobs := registry.HandlersFor("CronJob", "batch/v1beta1")
	require.Len(t, cronJobs, 1)
	assert.Equal(t, "batch/v1", cronJobs[0].ClusterAPIVersion)
	assert.True(t, cronJobs[0].Namespaced)
	assert.Len(t, cronJobs[0].OutgoingRefRules, len(kindhandlers.PodOutgoingRefRules))

	secrets := registry.HandlersFor("Secret", "v1")
	require.Len(t, secrets, 1)
	assert.Empty(t, secrets[0].OutgoingRefRules)

	assert.Equal(t, []string{
		"CronJob", "DaemonSet", "Deployment", "Job", "Pod", "ReplicaSet", "ReplicationController", "StatefulSet",
	}, registry.RuleSet().Kinds())
}

func TestPodOutgoingRefRules(t *testing.T) {
	var descs []string
	for _, rule := range kindhandlers.PodOutgoingRefRules {
		descs = append(descs, rule.Descriptor("Pod").String())
	}

	assert.Equal(t, []string{
		"Pod configMapRef.name -> ConfigMap",
		"Pod configMapKeyRef.name -> ConfigMap",
		"Pod configMap.name -> ConfigMap",
		"Pod volumes[*].secret.secretName -> Secret",
		"Pod sources[*].secret.name -> Secret",
		"Pod secretRef.name -> Secret",
		"Pod controllerExpandSecretRef.name -> Secret",
		"Pod controllerPublishSecretRef.name -> Secret",
		"Pod nodePublishSecretRef.name -> Secret",
		"Pod nodeStageSecretRef.name -> Secret",
		"Pod secretKeyRef.name -> Secret",
		"Pod imagePullSecrets[*].name -> Secret",
		"Pod serviceAccountName -> ServiceAccount",
		"Pod persistentVolumeClaim.claimName -> PersistentVolumeClaim",
	}, descs)
}

func TestBuiltinRulesResolveDeploymentTemplate(t *testing.T) {
	res := resources(t, `
apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
  namespace: ns1
spec:
  template:
    spec:
      serviceAccountName: web
      imagePullSecrets:
      - name: registry
      containers:
      - name: app
        env:
        - name: PASSWORD
          valueFrom:
            secretKeyRef: {name: db, key: password}
        - name: MODE
          valueFrom:
            configMapKeyRef: {name: settings, key: mode}
        envFrom:
        - configMapRef: {name: settings}
      volumes:
      - name: data
        persistentVolumeClaim: {claimName: data}
      - name: certs
        secret: {secretName: certs}
      - name: bundle
        projected:
          sources:
          - secret: {name: bundle}
          - configMap: {name: ca}
---
apiVersion: v1
kind: ServiceAccount
metadata: {name: web, namespace: ns1}
---
apiVersion: v1
kind: Secret
metadata: {name: registry, namespace: ns1}
---
apiVersion: v1
kind: Secret
metadata: {name: db, namespace: ns1}
---
apiVersion: v1
kind: ConfigMap
metadata: {name: settings, namespace: ns1}
---
apiVersion: v1
kind: PersistentVolumeClaim
metadata: {name: data, namespace: ns1}
---
apiVersion: v1
kind: Secret
metadata: {name: certs, namespace: ns1}
---
apiVersion: v1
kind: Secret
metadata: {name: bundle, namespace: ns1}
---
apiVersion: v1
kind: ConfigMap
metadata: {name: ca, namespace: ns1}
`)

	graph := refs.Resolve(res, kindhandlers.NewBuiltinRegistry().RuleSet())

	assert.ElementsMatch(t, []string{
		"ServiceAccount/ns1/web", "Secret/ns1/registry", "Secret/ns1/db", "ConfigMap/ns1/settings",
		"ConfigMap/ns1/settings", "PersistentVolumeClaim/ns1/data", "Secret/ns1/certs", "Secret/ns1/bundle", "ConfigMap/ns1/ca",
	}, targetIDs(graph.Outgoing("Deployment/ns1/web")))
	assert.Empty(t, graph.Unsatisfied())
	assert.Len(t, graph.Incoming("ConfigMap/ns1/settings"), 2)
}

func TestBuiltinRulesNamespaceSemantics(t *testing.T) {
	res := resources(t, `
apiVersion: v1
kind: Pod
metadata: {name: web, namespace: ns1}
spec:
  imagePullSecrets:
  - name: registry
  volumes:
  - persistentVolumeClaim: {claimName: data}
  - csi:
      driver: example.com
      nodePublishSecretRef: {name: csi}
---
apiVersion: v1
kind: Secret
metadata: {name: registry, namespace: ns2}
---
apiVersion: v1
kind: PersistentVolumeClaim
metadata: {name: data, namespace: ns2}
---
apiVersion: v1
kind: Secret
metadata: {name: csi, namespace: ns1}
`)

	graph := refs.Resolve(res, kindhandlers.NewBuiltinRegistry().RuleSet())
	assert.Empty(t, graph.Edges())
	assert.Len(t, graph.Unsatisfied(), 3)
}

func TestBuiltinRulesSecretVolumeNamespace(t *testing.T) {
	pod := `
apiVersion: v1
kind: Pod
metadata: {name: web, namespace: ns1}
spec:
  volumes:
  - secret: {secretName: creds}
`
	registry := kindhandlers.NewBuiltinRegistry()

	graph := refs.Resolve(resources(t, pod+`---
apiVersion: v1
kind: Secret
metadata: {name: creds, namespace: ns1}
`), registry.RuleSet())
	assert.Equal(t, []string{"Secret/ns1/creds"}, targetIDs(graph.Outgoing("Pod/ns1/web")))

	graph = refs.Resolve(resources(t, pod+`---
apiVersion: v1
kind: Secret
metadata: {name: creds, namespace: ns2}
`), registry.RuleSet())
	assert.Empty(t, graph.Edges())
	require.Len(t, graph.Unsatisfied(), 1)
}

func TestBuiltinRulesWithoutMatchersIgnoreNamespace(t *testing.T) {
	res := resources(t, `
apiVersion: v1
kind: Pod
metadata: {name: web, namespace: ns1}
spec:
  serviceAccountName: runner
  containers:
  - name: app
    envFrom:
    - configMapRef: {name: cfg}
---
apiVersion: v1
kind: ServiceAccount
metadata: {name: runner, namespace: ns2}
---
apiVersion: v1
kind: ConfigMap
metadata: {name: cfg, namespace: ns2}
`)

	graph := refs.Resolve(res, kindhandlers.NewBuiltinRegistry().RuleSet())
	assert.ElementsMatch(t, []string{"ServiceAccount/ns2/runner", "ConfigMap/ns2/cfg"},
		targetIDs(graph.Outgoing("Pod/ns1/web")))
	assert.Empty(t, graph.Unsatisfied())
}

func TestRegisterAddsNothingWhenAHandlerIsInvalid(t *testing.T) {
	registry := kindhandlers.NewRegistry()
	err := registry.Register(
		kindhandlers.Handler{Kind: "Ingress", Namespaced: true},
		kindhandlers.Handler{Namespaced: true},
	)
	require.EqualError(t, err, "Expected handler to have kind")
	assert.Empty(t, registry.Handlers())
	assert.Empty(t, registry.Kinds())

	require.NoError(t, registry.Register(kindhandlers.Handler{Kind: "Ingress"}))
	handlers := registry.Handlers()
	require.Len(t, handlers, 1)
	assert.Equal(t, refs.AnyAPIVersion, handlers[0].APIVersionMatcher)
}
