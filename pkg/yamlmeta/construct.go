// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"

	"github.com/johnbedeir/monokle/pkg/filepos"
	"gopkg.in/yaml.v3"
)

// NewScalar builds a scalar node holding the given Go value
// (string, bool, number or nil).
func NewScalar(val interface{}) (*Scalar, error) {
	node := &yaml.Node{}
	err := node.Encode(val)
	if err != nil {
		return nil, fmt.Errorf("encoding scalar: %s", err)
	}
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("expected value of type %T to encode into a scalar", val)
	}
	return &Scalar{
		Value:    val,
		Literal:  node.Value,
		Tag:      node.Tag,
		Style:    node.Style,
		Position: filepos.NewUnknownPosition(),
	}, nil
}

// MustNewScalar is NewScalar for values known to be scalars.
func MustNewScalar(val interface{}) *Scalar {
	scalar, err := NewScalar(val)
	if err != nil {
		panic(err)
	}
	return scalar
}

func NewNullScalar() *Scalar {
	return &Scalar{Literal: "null", Tag: "!!null", Position: filepos.NewUnknownPosition()}
}

// SetContentFrom copies the content of another scalar (value, literal text,
// tag and style). Comments, anchor and position stay with the receiver.
func (n *Scalar) SetContentFrom(other *Scalar) {
	n.Value = other.Value
	n.Literal = other.Literal
	n.Tag = other.Tag
	n.Style = other.Style
}

// AsString returns the scalar's text when it is a string, or its literal form otherwise.
func (n *Scalar) AsString() string {
	if str, ok := n.Value.(string); ok {
		return str
	}
	if n.Value == nil {
		return ""
	}
	return n.Literal
}

func (n *Scalar) IsNull() bool { return n.Value == nil }

func NewMap() *Map {
	return &Map{Position: filepos.NewUnknownPosition()}
}

func NewArray() *Array {
	return &Array{Position: filepos.NewUnknownPosition()}
}

func NewMapItem(key string, val interface{}) *MapItem {
	return &MapItem{Key: key, Value: val, Position: filepos.NewUnknownPosition()}
}

func NewArrayItem(val interface{}) *ArrayItem {
	return &ArrayItem{Value: val, Position: filepos.NewUnknownPosition()}
}

func NewDocument(val interface{}) *Document {
	return &Document{Value: val, Position: filepos.NewUnknownPosition()}
}

func (n *Map) Get(key string) (*MapItem, bool) {
	for _, item := range n.Items {
		if item.Key == key {
			return item, true
		}
	}
	return nil, false
}

// GetValue returns the value held under key; missing keys yield (nil, false).
func (n *Map) GetValue(key string) (interface{}, bool) {
	item, found := n.Get(key)
	if !found {
		return nil, false
	}
	return item.Value, true
}

func (n *Map) Keys() []string {
	var keys []string
	for _, item := range n.Items {
		keys = append(keys, item.Key)
	}
	return keys
}

func (n *Map) Delete(key string) bool {
	for i, item := range n.Items {
		if item.Key == key {
			n.Items = append(n.Items[:i], n.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Array) Delete(idx int) bool {
	if idx < 0 || idx >= len(n.Items) {
		return false
	}
	n.Items = append(n.Items[:idx], n.Items[idx+1:]...)
	return true
}

// IsEmptyContainer reports whether val is a map or array without items.
func IsEmptyContainer(val interface{}) bool {
	switch typedVal := val.(type) {
	case *Map:
		return len(typedVal.Items) == 0
	case *Array:
		return len(typedVal.Items) == 0
	default:
		return false
	}
}

// TypeName is used in error messages.
func TypeName(val interface{}) string {
	switch val.(type) {
	case nil:
		return "null"
	case *Map:
		return "map"
	case *Array:
		return "array"
	case *Scalar:
		return "scalar"
	case *Document:
		return "document"
	default:
		return fmt.Sprintf("%T", val)
	}
}
