// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package kindhandlers

import (
	"github.com/johnbedeir/monokle/pkg/refs"
)

const (
	SectionWorkloads     = "Workloads"
	SectionConfiguration = "Configuration"
	SectionAccessControl = "Access Control"
	SectionStorage       = "Storage"
)

var (
	implicitNamespace         = map[string]string{"namespace": refs.ImplicitMatcherName}
	optionalExplicitNamespace = map[string]string{"namespace": refs.OptionalExplicitMatcherName}
	explicitNamespace         = map[string]string{"namespace": refs.ExplicitMatcherName}
)

// PodOutgoingRefRules apply wherever a pod spec is embedded, so they are
// relative paths. Rules without sibling matchers do not constrain the
// target namespace.
var PodOutgoingRefRules = []refs.Rule{
	refs.MustNewRule("configMapRef.name", "ConfigMap", true, nil),
	refs.MustNewRule("configMapKeyRef.name", "ConfigMap", true, nil),
	refs.MustNewRule("configMap.name", "ConfigMap", false, nil),

	refs.MustNewRule("volumes[*].secret.secretName", "Secret", true, implicitNamespace),
	refs.MustNewRule("sources[*].secret.name", "Secret", true, implicitNamespace),
	// ObjectReference and SecretReference carry a namespace,
	// LocalObjectReference does not
	refs.MustNewRule("secretRef.name", "Secret", false, optionalExplicitNamespace),
	refs.MustNewRule("controllerExpandSecretRef.name", "Secret", false, explicitNamespace),
	refs.MustNewRule("controllerPublishSecretRef.name", "Secret", false, explicitNamespace),
	refs.MustNewRule("nodePublishSecretRef.name", "Secret", false, explicitNamespace),
	refs.MustNewRule("nodeStageSecretRef.name", "Secret", false, explicitNamespace),
	refs.MustNewRule("secretKeyRef.name", "Secret", true, nil),
	refs.MustNewRule("imagePullSecrets[*].name", "Secret", false, implicitNamespace),

	refs.MustNewRule("serviceAccountName", "ServiceAccount", false, nil),

	refs.MustNewRule("persistentVolumeClaim.claimName", "PersistentVolumeClaim", false, implicitNamespace),
}

func workload(kind, clusterAPIVersion, description string) Handler {
	return Handler{
		Kind:              kind,
		APIVersionMatcher: refs.AnyAPIVersion,
		ClusterAPIVersion: clusterAPIVersion,
		Namespaced:        true,
		Section:           SectionWorkloads,
		Description:       description,
		OutgoingRefRules:  PodOutgoingRefRules,
	}
}

func target(kind, section, description string) Handler {
	return Handler{
		Kind:              kind,
		APIVersionMatcher: refs.AnyAPIVersion,
		ClusterAPIVersion: "v1",
		Namespaced:        true,
		Section:           section,
		Description:       description,
	}
}

func BuiltinHandlers() []Handler {
	return []Handler{
		workload("Pod", "v1", "Smallest deployable unit of computing"),
		workload("Deployment", "apps/v1", "Declarative updates for Pods and ReplicaSets"),
		workload("StatefulSet", "apps/v1", "Pods with stable identity and storage"),
		workload("DaemonSet", "apps/v1", "Runs a copy of a Pod on every node"),
		workload("ReplicaSet", "apps/v1", "Maintains a stable set of replica Pods"),
		workload("ReplicationController", "v1", "Legacy replica management"),
		workload("Job", "batch/v1", "Runs Pods to completion"),
		workload("CronJob", "batch/v1", "Runs Jobs on a schedule"),

		target("ConfigMap", SectionConfiguration, "Non-confidential key-value data"),
		target("Secret", SectionConfiguration, "Confidential data"),
		target("ServiceAccount", SectionAccessControl, "Identity for processes running in Pods"),
		target("PersistentVolumeClaim", SectionStorage, "Request for storage"),
	}
}

// NewBuiltinRegistry returns a registry holding BuiltinHandlers.
func NewBuiltinRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(BuiltinHandlers()...)
	return registry
}
