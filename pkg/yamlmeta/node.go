// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"encoding/json"
	"fmt"

	"github.com/johnbedeir/monokle/pkg/filepos"
	"gopkg.in/yaml.v3"
)

func (n *DocumentSet) GetPosition() *filepos.Position { return n.Position }
func (n *Document) GetPosition() *filepos.Position    { return n.Position }
func (n *Map) GetPosition() *filepos.Position         { return n.Position }
func (n *MapItem) GetPosition() *filepos.Position     { return n.Position }
func (n *Array) GetPosition() *filepos.Position       { return n.Position }
func (n *ArrayItem) GetPosition() *filepos.Position   { return n.Position }
func (n *Scalar) GetPosition() *filepos.Position      { return n.Position }

func (n *DocumentSet) SetPosition(position *filepos.Position) { n.Position = position }
func (n *Document) SetPosition(position *filepos.Position)    { n.Position = position }
func (n *Map) SetPosition(position *filepos.Position)         { n.Position = position }
func (n *MapItem) SetPosition(position *filepos.Position)     { n.Position = position }
func (n *Array) SetPosition(position *filepos.Position)       { n.Position = position }
func (n *ArrayItem) SetPosition(position *filepos.Position)   { n.Position = position }
func (n *Scalar) SetPosition(position *filepos.Position)      { n.Position = position }

func (n *DocumentSet) SetValue(val interface{}) error {
	return fmt.Errorf("cannot set value on a documentset")
}

func (n *Document) SetValue(val interface{}) error {
	if !isValue(val) {
		return fmt.Errorf("cannot set non-value (%T) into document", val)
	}
	n.Value = val
	return nil
}

func (n *Map) SetValue(val interface{}) error {
	return fmt.Errorf("cannot set value on a map")
}

func (n *MapItem) SetValue(val interface{}) error {
	if !isValue(val) {
		return fmt.Errorf("cannot set non-value (%T) into mapitem", val)
	}
	n.Value = val
	return nil
}

func (n *Array) SetValue(val interface{}) error {
	return fmt.Errorf("cannot set value on an array")
}

func (n *ArrayItem) SetValue(val interface{}) error {
	if !isValue(val) {
		return fmt.Errorf("cannot set non-value (%T) into arrayitem", val)
	}
	n.Value = val
	return nil
}

// SetValue on a scalar replaces its content with the given Go value.
func (n *Scalar) SetValue(val interface{}) error {
	newScalar, err := NewScalar(val)
	if err != nil {
		return err
	}
	n.SetContentFrom(newScalar)
	return nil
}

func (n *DocumentSet) ResetValue() { n.Items = nil }
func (n *Document) ResetValue()    { n.Value = nil }
func (n *Map) ResetValue()         { n.Items = nil }
func (n *MapItem) ResetValue()     { n.Value = nil }
func (n *Array) ResetValue()       { n.Items = nil }
func (n *ArrayItem) ResetValue()   { n.Value = nil }
func (n *Scalar) ResetValue()      { n.SetContentFrom(NewNullScalar()) }

func (n *DocumentSet) AddValue(val interface{}) error {
	if item, ok := val.(*Document); ok {
		n.Items = append(n.Items, item)
		return nil
	}
	return fmt.Errorf("cannot add non-document value (%T) into documentset", val)
}

func (n *Document) AddValue(val interface{}) error { return n.SetValue(val) }

func (n *Map) AddValue(val interface{}) error {
	if item, ok := val.(*MapItem); ok {
		if _, found := n.Get(item.Key); found {
			return fmt.Errorf("cannot add duplicate key '%s' into map", item.Key)
		}
		n.Items = append(n.Items, item)
		return nil
	}
	return fmt.Errorf("cannot add non-map-item value (%T) into map", val)
}

func (n *MapItem) AddValue(val interface{}) error { return n.SetValue(val) }

func (n *Array) AddValue(val interface{}) error {
	if item, ok := val.(*ArrayItem); ok {
		n.Items = append(n.Items, item)
		return nil
	}
	return fmt.Errorf("cannot add non-array-item value (%T) into array", val)
}

func (n *ArrayItem) AddValue(val interface{}) error { return n.SetValue(val) }

func (n *Scalar) AddValue(val interface{}) error { return n.SetValue(val) }

// isValue reports whether val may be held by a document, map item or array item.
func isValue(val interface{}) bool {
	switch val.(type) {
	case nil, *Map, *Array, *Scalar:
		return true
	default:
		return false
	}
}

func (n *DocumentSet) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item)
	}
	return result
}

func (n *Document) GetValues() []interface{} { return []interface{}{n.Value} }

func (n *Map) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item)
	}
	return result
}

func (n *MapItem) GetValues() []interface{} { return []interface{}{n.Value} }

func (n *Array) GetValues() []interface{} {
	var result []interface{}
	for _, item := range n.Items {
		result = append(result, item)
	}
	return result
}

func (n *ArrayItem) GetValues() []interface{} { return []interface{}{n.Value} }

func (n *Scalar) GetValues() []interface{} { return nil }

func (n *DocumentSet) GetComments() []*Comment { return n.Comments }
func (n *Document) GetComments() []*Comment    { return n.Comments }
func (n *Map) GetComments() []*Comment         { return n.Comments }
func (n *MapItem) GetComments() []*Comment     { return n.Comments }
func (n *Array) GetComments() []*Comment       { return n.Comments }
func (n *ArrayItem) GetComments() []*Comment   { return n.Comments }
func (n *Scalar) GetComments() []*Comment      { return n.Comments }

func (n *DocumentSet) SetComments(c []*Comment) { n.Comments = c }
func (n *Document) SetComments(c []*Comment)    { n.Comments = c }
func (n *Map) SetComments(c []*Comment)         { n.Comments = c }
func (n *MapItem) SetComments(c []*Comment)     { n.Comments = c }
func (n *Array) SetComments(c []*Comment)       { n.Comments = c }
func (n *ArrayItem) SetComments(c []*Comment)   { n.Comments = c }
func (n *Scalar) SetComments(c []*Comment)      { n.Comments = c }

// Below methods disallow marshaling of nodes directly
var _ []yaml.Marshaler = []yaml.Marshaler{&DocumentSet{}, &Document{}, &Map{}, &MapItem{}, &Array{}, &ArrayItem{}, &Scalar{}}

func (n *DocumentSet) MarshalYAML() (interface{}, error) { panic("Unexpected marshaling of docset") }
func (n *Document) MarshalYAML() (interface{}, error)    { panic("Unexpected marshaling of doc") }
func (n *Map) MarshalYAML() (interface{}, error)         { panic("Unexpected marshaling of map") }
func (n *MapItem) MarshalYAML() (interface{}, error)     { panic("Unexpected marshaling of mapitem") }
func (n *Array) MarshalYAML() (interface{}, error)       { panic("Unexpected marshaling of array") }
func (n *ArrayItem) MarshalYAML() (interface{}, error)   { panic("Unexpected marshaling of arrayitem") }
func (n *Scalar) MarshalYAML() (interface{}, error)      { panic("Unexpected marshaling of scalar") }

// Below methods disallow marshaling of nodes directly
var _ []json.Marshaler = []json.Marshaler{&DocumentSet{}, &Document{}, &Map{}, &MapItem{}, &Array{}, &ArrayItem{}, &Scalar{}}

func (n *DocumentSet) MarshalJSON() ([]byte, error) { panic("Unexpected marshaling of docset") }
func (n *Document) MarshalJSON() ([]byte, error)    { panic("Unexpected marshaling of doc") }
func (n *Map) MarshalJSON() ([]byte, error)         { panic("Unexpected marshaling of map") }
func (n *MapItem) MarshalJSON() ([]byte, error)     { panic("Unexpected marshaling of mapitem") }
func (n *Array) MarshalJSON() ([]byte, error)       { panic("Unexpected marshaling of array") }
func (n *ArrayItem) MarshalJSON() ([]byte, error)   { panic("Unexpected marshaling of arrayitem") }
func (n *Scalar) MarshalJSON() ([]byte, error)      { panic("Unexpected marshaling of scalar") }

func (n *DocumentSet) sealed() {}
func (n *Document) sealed()    {}
func (n *Map) sealed()         {}
func (n *MapItem) sealed()     {}
func (n *Array) sealed()       {}
func (n *ArrayItem) sealed()   {}
func (n *Scalar) sealed()      {}
