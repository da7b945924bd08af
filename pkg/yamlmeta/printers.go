// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

type DocumentPrinter interface {
	Print(*Document) error
}

type YAMLPrinter struct {
	buf         io.Writer
	writtenOnce bool
}

var _ DocumentPrinter = &YAMLPrinter{}

func NewYAMLPrinter(writer io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer, false}
}

func (p *YAMLPrinter) Print(item *Document) error {
	bs, err := item.AsYAMLBytes()
	if err != nil {
		return err
	}
	if p.writtenOnce {
		p.buf.Write([]byte("---\n"))
	} else {
		p.writtenOnce = true
	}
	p.buf.Write(bs)
	return nil
}

type JSONPrinter struct {
	buf io.Writer
}

var _ DocumentPrinter = JSONPrinter{}

func NewJSONPrinter(writer io.Writer) JSONPrinter {
	return JSONPrinter{writer}
}

func (p JSONPrinter) Print(item *Document) error {
	bs, err := item.AsJSONBytes()
	if err != nil {
		return err
	}
	p.buf.Write(bs)
	p.buf.Write([]byte("\n"))
	return nil
}

func (d *Document) AsYAMLBytes() ([]byte, error) {
	buf := new(bytes.Buffer)

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(yamlIndent)

	err := enc.Encode(d.asYAMLNode())
	if err != nil {
		return nil, fmt.Errorf("marshaling doc: %s", err)
	}
	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("marshaling doc: %s", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) AsJSONBytes() ([]byte, error) {
	bs, err := json.Marshal(d.AsInterface())
	if err != nil {
		return nil, fmt.Errorf("marshaling doc: %s", err)
	}
	return bs, nil
}

func (d *Document) asYAMLNode() *yaml.Node {
	result := &yaml.Node{Kind: yaml.DocumentNode}
	applyComments(result, d.Comments)
	result.Content = []*yaml.Node{valueAsYAMLNode(d.Value)}
	return result
}

// valueAsYAMLNode rebuilds a low level node, reusing recorded style,
// tags, anchors and comments so that untouched nodes print as they were read.
func valueAsYAMLNode(val interface{}) *yaml.Node {
	switch typedVal := val.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}

	case *Map:
		result := &yaml.Node{
			Kind:   yaml.MappingNode,
			Tag:    typedVal.Tag,
			Style:  typedVal.Style,
			Anchor: typedVal.Anchor,
		}
		applyComments(result, typedVal.Comments)

		for _, item := range typedVal.Items {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: item.Key, Style: item.KeyStyle}
			applyComments(keyNode, item.Comments)
			result.Content = append(result.Content, keyNode, valueAsYAMLNode(item.Value))
		}
		return result

	case *Array:
		result := &yaml.Node{
			Kind:   yaml.SequenceNode,
			Tag:    typedVal.Tag,
			Style:  typedVal.Style,
			Anchor: typedVal.Anchor,
		}
		applyComments(result, typedVal.Comments)

		for _, item := range typedVal.Items {
			itemNode := valueAsYAMLNode(item.Value)
			applyComments(itemNode, item.Comments)
			result.Content = append(result.Content, itemNode)
		}
		return result

	case *Scalar:
		result := &yaml.Node{
			Kind:   yaml.ScalarNode,
			Tag:    typedVal.Tag,
			Value:  typedVal.Literal,
			Style:  typedVal.Style,
			Anchor: typedVal.Anchor,
		}
		applyComments(result, typedVal.Comments)
		return result

	default:
		panic(fmt.Sprintf("Unexpected %T in document", val))
	}
}

func applyComments(node *yaml.Node, comments []*Comment) {
	for _, comment := range comments {
		switch comment.Kind {
		case CommentHead:
			node.HeadComment = joinComment(node.HeadComment, comment.Data)
		case CommentLine:
			node.LineComment = joinComment(node.LineComment, comment.Data)
		case CommentFoot:
			node.FootComment = joinComment(node.FootComment, comment.Data)
		}
	}
}

func joinComment(existing, data string) string {
	if len(existing) == 0 {
		return data
	}
	return existing + "\n" + data
}
