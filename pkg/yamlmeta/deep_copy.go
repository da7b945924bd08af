// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

func (ds *DocumentSet) DeepCopyAsNode() Node { return ds.DeepCopy() }
func (d *Document) DeepCopyAsNode() Node     { return d.DeepCopy() }
func (m *Map) DeepCopyAsNode() Node          { return m.DeepCopy() }
func (mi *MapItem) DeepCopyAsNode() Node     { return mi.DeepCopy() }
func (a *Array) DeepCopyAsNode() Node        { return a.DeepCopy() }
func (ai *ArrayItem) DeepCopyAsNode() Node   { return ai.DeepCopy() }
func (s *Scalar) DeepCopyAsNode() Node       { return s.DeepCopy() }

func (ds *DocumentSet) DeepCopyAsInterface() interface{} { return ds.DeepCopy() }
func (d *Document) DeepCopyAsInterface() interface{}     { return d.DeepCopy() }
func (m *Map) DeepCopyAsInterface() interface{}          { return m.DeepCopy() }
func (mi *MapItem) DeepCopyAsInterface() interface{}     { return mi.DeepCopy() }
func (a *Array) DeepCopyAsInterface() interface{}        { return a.DeepCopy() }
func (ai *ArrayItem) DeepCopyAsInterface() interface{}   { return ai.DeepCopy() }
func (s *Scalar) DeepCopyAsInterface() interface{}       { return s.DeepCopy() }

func (ds *DocumentSet) DeepCopy() *DocumentSet {
	var newItems []*Document
	for _, item := range ds.Items {
		newItems = append(newItems, item.DeepCopy())
	}

	return &DocumentSet{
		Comments:      CommentSlice(ds.Comments).DeepCopy(),
		Items:         newItems,
		Position:      ds.Position.DeepCopy(),
		originalBytes: ds.originalBytes,
	}
}

func (d *Document) DeepCopy() *Document {
	return &Document{
		Comments: CommentSlice(d.Comments).DeepCopy(),
		Value:    DeepCopyValue(d.Value),
		Position: d.Position.DeepCopy(),
		injected: d.injected,
	}
}

func (m *Map) DeepCopy() *Map {
	var newItems []*MapItem
	for _, item := range m.Items {
		newItems = append(newItems, item.DeepCopy())
	}

	return &Map{
		Comments: CommentSlice(m.Comments).DeepCopy(),
		Items:    newItems,
		Position: m.Position.DeepCopy(),
		Style:    m.Style,
		Tag:      m.Tag,
		Anchor:   m.Anchor,
	}
}

func (mi *MapItem) DeepCopy() *MapItem {
	return &MapItem{
		Comments: CommentSlice(mi.Comments).DeepCopy(),
		Key:      mi.Key,
		Value:    DeepCopyValue(mi.Value),
		Position: mi.Position.DeepCopy(),
		KeyStyle: mi.KeyStyle,
	}
}

func (a *Array) DeepCopy() *Array {
	var newItems []*ArrayItem
	for _, item := range a.Items {
		newItems = append(newItems, item.DeepCopy())
	}

	return &Array{
		Comments: CommentSlice(a.Comments).DeepCopy(),
		Items:    newItems,
		Position: a.Position.DeepCopy(),
		Style:    a.Style,
		Tag:      a.Tag,
		Anchor:   a.Anchor,
	}
}

func (ai *ArrayItem) DeepCopy() *ArrayItem {
	return &ArrayItem{
		Comments: CommentSlice(ai.Comments).DeepCopy(),
		Value:    DeepCopyValue(ai.Value),
		Position: ai.Position.DeepCopy(),
	}
}

func (s *Scalar) DeepCopy() *Scalar {
	return &Scalar{
		Comments: CommentSlice(s.Comments).DeepCopy(),
		Value:    s.Value,
		Literal:  s.Literal,
		Position: s.Position.DeepCopy(),
		Style:    s.Style,
		Tag:      s.Tag,
		Anchor:   s.Anchor,
	}
}

func (n *Comment) DeepCopy() *Comment {
	return &Comment{Data: n.Data, Kind: n.Kind, Position: n.Position.DeepCopy()}
}

type CommentSlice []*Comment

func (s CommentSlice) DeepCopy() []*Comment {
	var result []*Comment
	for _, comment := range s {
		result = append(result, comment.DeepCopy())
	}
	return result
}

// DeepCopyValue copies tree values (maps, arrays, scalars); nil is returned as is.
func DeepCopyValue(val interface{}) interface{} {
	if node, ok := val.(Node); ok {
		return node.DeepCopyAsInterface()
	}
	return val
}
