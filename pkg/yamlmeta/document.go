// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

func (n *Document) IsEmpty() bool {
	if n.Value == nil {
		return true
	}
	if scalar, isScalar := n.Value.(*Scalar); isScalar {
		return scalar.IsNull()
	}
	return IsEmptyContainer(n.Value)
}

// AsInterface converts the document's value into plain Go values:
// *orderedmap.Map, []interface{} and scalars.
func (n *Document) AsInterface() interface{} {
	return convertToGo(n.Value)
}

// RootMap returns the document's value when it is a map.
func (n *Document) RootMap() (*Map, bool) {
	typedMap, ok := n.Value.(*Map)
	return typedMap, ok
}
