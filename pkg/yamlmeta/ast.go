// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"github.com/johnbedeir/monokle/pkg/filepos"
	"gopkg.in/yaml.v3"
)

type Node interface {
	GetPosition() *filepos.Position
	SetPosition(*filepos.Position)

	GetValues() []interface{} // ie children
	SetValue(interface{}) error
	AddValue(interface{}) error
	ResetValue()

	GetComments() []*Comment
	SetComments([]*Comment)

	DeepCopyAsInterface() interface{}
	DeepCopyAsNode() Node

	sealed() // limit the concrete types of Node to map directly only to types allowed in YAML spec.
}

var _ = []Node{&DocumentSet{}, &Document{}, &Map{}, &MapItem{}, &Array{}, &ArrayItem{}, &Scalar{}}

type DocumentSet struct {
	Comments []*Comment
	Items    []*Document
	Position *filepos.Position

	originalBytes *[]byte
}

type Document struct {
	Comments []*Comment
	Value    interface{}
	Position *filepos.Position

	injected bool // indicates that Document was not present in the parsed content
}

type Map struct {
	Comments []*Comment
	Items    []*MapItem
	Position *filepos.Position

	Style  yaml.Style
	Tag    string
	Anchor string
}

type MapItem struct {
	Comments []*Comment
	Key      string
	Value    interface{}
	Position *filepos.Position

	KeyStyle yaml.Style
}

type Array struct {
	Comments []*Comment
	Items    []*ArrayItem
	Position *filepos.Position

	Style  yaml.Style
	Tag    string
	Anchor string
}

type ArrayItem struct {
	Comments []*Comment
	Value    interface{}
	Position *filepos.Position
}

// Scalar is a leaf. Value is the decoded Go value (string, int, float64,
// bool or nil); Literal is the text as it appeared in the source.
type Scalar struct {
	Comments []*Comment
	Value    interface{}
	Literal  string
	Position *filepos.Position

	Style  yaml.Style
	Tag    string
	Anchor string
}

type CommentKind int

const (
	CommentHead CommentKind = iota
	CommentLine
	CommentFoot
)

type Comment struct {
	Data     string
	Kind     CommentKind
	Position *filepos.Position
}
