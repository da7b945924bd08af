// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package valuesmerge merges a values document into a template document while
keeping the template's layout (key order, comments, quoting) wherever the
template already had the node.

A merge runs in three phases:

 1. the template is walked; value-bearing scalars take their content from the
    matching values node or are marked for removal, and sequences are
    replaced wholesale by the matching values sequence;
 2. marked nodes are removed, together with any map or sequence left empty
    by the removal;
 3. the values document is walked; value-bearing scalars and non-empty
    sequences missing from the result are added under their path.

Paths match map keys verbatim and sequence elements by position.
*/
package valuesmerge
