// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package kindhandlers is the table of resource kinds known to reference
resolution. Each Handler describes one kind and carries the rules for
references going out of resources of that kind.

Built-in handlers cover core workload kinds (all sharing the pod template
rules) and the kinds they point to. Additional handlers are loaded from rule
files written in YAML or TOML:

	schemaVersion: "1.0"
	handlers:
	- kind: Certificate
	  apiVersionMatcher: cert-manager.io/v1
	  namespaced: true
	  outgoingRefs:
	  - path: spec.secretName
	    targetKind: Secret
	    siblingMatchers: {namespace: implicit}
	    when: 'namespace != "kube-system"'

The optional "when" condition is an expr-lang expression evaluated against
the source resource (apiVersion, kind, name, namespace, labels, content).
*/
package kindhandlers
