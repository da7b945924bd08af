// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of monokle.

This codebase is intentionally organized into well-defined layers. Packages have
been designed to be dependent on each other only to the degree absolutely
required.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

Where "# of dependents" is the count of packages that import the named package
and "# of dependencies" is the count of packages that this named package
imports.

# Entry Point

monokle is built into a single command-line tool:

	./cmd/monokle

# Commands

	(1) => pkg/cmd => (9)

# Engines

monokle has two engines. The merge engine folds a Helm values file into a
template file while keeping the template's layout. The reference engine reads
a set of Kubernetes resources and, driven by a table of rules, builds a graph
of the references between them.

	(1) => pkg/valuesmerge => (3)
	(4) => pkg/refs => (3)

The rule table is declared per resource kind. Built-in handlers cover
workloads and the objects they reference; more handlers are loaded from
rule files.

	(1) => pkg/kindhandlers => (5)

Resources come either from manifest files or from the output of a Helm
dry run.

	(1) => pkg/manifest => (3)
	(1) => pkg/helmpreview => (2)
	(3) => pkg/files => (0)

# YAML Structures

monokle delegates parsing YAML to the de facto standard YAML library
(https://github.com/go-yaml/yaml/tree/v3). However, monokle needs to keep
where each node came from and how it was written (comments, styles) so that
merged documents print like their sources and references point back to their
lines. It does this by converting the output from the standard YAML parser
into a composite tree of its own yamlmeta.Node structure.

	(7) => pkg/yamlmeta => (2)
	(3) => pkg/nodepath => (1)

# Utilities

The remainder are domain-agnostic utilities.

	(3) => pkg/filepos => (0)
	(2) => pkg/orderedmap => (0)
	(1) => pkg/cmd/ui => (0)
	(1) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/helmpreview
	- pkg/kindhandlers
	- pkg/manifest
	- pkg/valuesmerge
	- pkg/refs
	- pkg/version
	- pkg/files
	- pkg/cmd/ui
	- pkg/yamlmeta
	pkg/kindhandlers:
	- pkg/refs
	- pkg/files
	- pkg/nodepath
	- pkg/orderedmap
	- pkg/yamlmeta
	pkg/manifest:
	- pkg/refs
	- pkg/files
	- pkg/yamlmeta
	pkg/helmpreview:
	- pkg/refs
	- pkg/yamlmeta
	pkg/refs:
	- pkg/nodepath
	- pkg/filepos
	- pkg/yamlmeta
	pkg/valuesmerge:
	- pkg/nodepath
	- pkg/filepos
	- pkg/yamlmeta
	pkg/nodepath:
	- pkg/yamlmeta
	pkg/yamlmeta:
	- pkg/orderedmap
	- pkg/filepos
*/
package pkg
