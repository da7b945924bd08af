// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"fmt"
	"io"

	"github.com/johnbedeir/monokle/pkg/filepos"
	"gopkg.in/yaml.v3"
)

type ParserOpts struct {
	WithoutComments bool
}

type Parser struct {
	opts           ParserOpts
	associatedName string

	// anchored nodes currently being expanded through an alias
	expanding map[*yaml.Node]bool
}

func NewParser(opts ParserOpts) *Parser {
	return &Parser{opts: opts}
}

func (p *Parser) ParseBytes(data []byte, associatedName string) (*DocumentSet, error) {
	p.associatedName = associatedName
	p.expanding = map[*yaml.Node]bool{}

	docSet := &DocumentSet{Position: filepos.NewUnknownPositionInFile(associatedName)}

	dec := yaml.NewDecoder(bytes.NewReader(data))

	for {
		var rawDoc yaml.Node

		err := dec.Decode(&rawDoc)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, newParseErrorFromYAML(err, associatedName)
		}

		doc, err := p.parseDocument(&rawDoc)
		if err != nil {
			return nil, err
		}
		docSet.Items = append(docSet.Items, doc)
	}

	// Empty input still yields one (empty) document
	if len(docSet.Items) == 0 {
		docSet.Items = append(docSet.Items, &Document{
			Position: p.newPositionAt(1, 0),
			injected: true,
		})
	}

	return docSet, nil
}

func (p *Parser) parseDocument(node *yaml.Node) (*Document, error) {
	doc := &Document{
		Comments: p.comments(node),
		Position: p.newPosition(node),
	}

	if node.Kind != yaml.DocumentNode {
		return nil, p.newError(node, "expected document, but was %s", kindName(node.Kind))
	}
	if len(node.Content) == 0 {
		return doc, nil
	}

	val, err := p.parse(node.Content[0])
	if err != nil {
		return nil, err
	}
	doc.Value = val
	return doc, nil
}

func (p *Parser) parse(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.MappingNode:
		result := &Map{
			Comments: p.comments(node),
			Position: p.newPosition(node),
			Style:    node.Style,
			Tag:      node.Tag,
			Anchor:   node.Anchor,
		}

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, p.newError(keyNode, "expected map key to be a scalar, but was %s", kindName(keyNode.Kind))
			}

			if existing, found := result.Get(keyNode.Value); found {
				return nil, p.newError(keyNode, "duplicate map key '%s' (first defined on %s)",
					keyNode.Value, existing.Position.AsString())
			}

			val, err := p.parse(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			result.Items = append(result.Items, &MapItem{
				Comments: p.comments(keyNode),
				Key:      keyNode.Value,
				Value:    val,
				Position: p.newPosition(keyNode),
				KeyStyle: keyNode.Style,
			})
		}
		return result, nil

	case yaml.SequenceNode:
		result := &Array{
			Comments: p.comments(node),
			Position: p.newPosition(node),
			Style:    node.Style,
			Tag:      node.Tag,
			Anchor:   node.Anchor,
		}

		for _, itemNode := range node.Content {
			val, err := p.parse(itemNode)
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, &ArrayItem{
				Value:    val,
				Position: p.newPosition(itemNode),
			})
		}
		return result, nil

	case yaml.ScalarNode:
		var val interface{}
		err := node.Decode(&val)
		if err != nil {
			return nil, p.newError(node, "decoding scalar '%s': %s", node.Value, err)
		}
		return &Scalar{
			Comments: p.comments(node),
			Value:    val,
			Literal:  node.Value,
			Position: p.newPosition(node),
			Style:    node.Style,
			Tag:      node.Tag,
			Anchor:   node.Anchor,
		}, nil

	case yaml.AliasNode:
		return p.parseAlias(node)

	default:
		return nil, p.newError(node, "unexpected %s", kindName(node.Kind))
	}
}

// parseAlias expands an alias into a copy of its anchored node.
func (p *Parser) parseAlias(node *yaml.Node) (interface{}, error) {
	target := node.Alias
	if target == nil {
		return nil, p.newError(node, "unknown anchor '%s' referenced", node.Value)
	}
	if p.expanding[target] {
		return nil, p.newError(node, "anchor '%s' references itself", target.Anchor)
	}

	p.expanding[target] = true
	defer delete(p.expanding, target)

	val, err := p.parse(target)
	if err != nil {
		return nil, err
	}

	// Copy must not redeclare the anchor
	switch typedVal := val.(type) {
	case *Map:
		typedVal.Anchor = ""
		typedVal.Position = p.newPosition(node)
	case *Array:
		typedVal.Anchor = ""
		typedVal.Position = p.newPosition(node)
	case *Scalar:
		typedVal.Anchor = ""
		typedVal.Position = p.newPosition(node)
	}
	return val, nil
}

func (p *Parser) comments(node *yaml.Node) []*Comment {
	if p.opts.WithoutComments {
		return nil
	}

	var result []*Comment
	for _, c := range []struct {
		data string
		kind CommentKind
	}{
		{node.HeadComment, CommentHead},
		{node.LineComment, CommentLine},
		{node.FootComment, CommentFoot},
	} {
		if len(c.data) > 0 {
			result = append(result, &Comment{Data: c.data, Kind: c.kind, Position: p.newPosition(node)})
		}
	}
	return result
}

func (p *Parser) newError(node *yaml.Node, msg string, args ...interface{}) *ParseError {
	return &ParseError{Position: p.newPosition(node), Msg: fmt.Sprintf(msg, args...)}
}

func (p *Parser) newPosition(node *yaml.Node) *filepos.Position {
	return p.newPositionAt(node.Line, node.Column)
}

func (p *Parser) newPositionAt(line, column int) *filepos.Position {
	if line <= 0 {
		return filepos.NewUnknownPositionInFile(p.associatedName)
	}
	pos := filepos.NewPositionInFile(line, p.associatedName)
	pos.SetColumn(column)
	return pos
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "map"
	case yaml.SequenceNode:
		return "array"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", kind)
	}
}
