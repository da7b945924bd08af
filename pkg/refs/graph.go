// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package refs

import (
	"github.com/johnbedeir/monokle/pkg/filepos"
	"github.com/johnbedeir/monokle/pkg/nodepath"
)

// Reference is one value read by a rule from a source resource,
// whether or not it resolved to a target.
type Reference struct {
	SourceID   string
	Rule       RuleDescriptor
	SourcePath nodepath.Path
	Value      string
	Position   *filepos.Position
}

type Edge struct {
	Reference
	TargetID string
}

// ResolvedReference is a reference with the IDs of every target it
// resolved to.
type ResolvedReference struct {
	Reference
	TargetIDs []string
}

// Graph is the result of one resolution pass. It is not modified after
// Resolve returns; resolve again when the working set changes.
type Graph struct {
	resources  []*Resource
	byID       map[string]*Resource
	references []Reference
	targets    [][]string
	edges      []Edge

	outgoing map[string][]int
	incoming map[string][]int
}

func newGraph(resources []*Resource) *Graph {
	graph := &Graph{
		byID:     map[string]*Resource{},
		outgoing: map[string][]int{},
		incoming: map[string][]int{},
	}
	for _, res := range resources {
		graph.resources = append(graph.resources, res)
		graph.byID[res.ID] = res
	}
	return graph
}

func (g *Graph) add(ref Reference, targets []*Resource) {
	var targetIDs []string

	for _, target := range targets {
		idx := len(g.edges)
		g.edges = append(g.edges, Edge{Reference: ref, TargetID: target.ID})
		g.outgoing[ref.SourceID] = append(g.outgoing[ref.SourceID], idx)
		g.incoming[target.ID] = append(g.incoming[target.ID], idx)
		targetIDs = append(targetIDs, target.ID)
	}

	g.references = append(g.references, ref)
	g.targets = append(g.targets, targetIDs)
}

func (g *Graph) Resources() []*Resource {
	return append([]*Resource{}, g.resources...)
}

func (g *Graph) Resource(id string) (*Resource, bool) {
	res, found := g.byID[id]
	return res, found
}

func (g *Graph) Edges() []Edge {
	return append([]Edge{}, g.edges...)
}

// Outgoing lists edges whose source is the given resource.
func (g *Graph) Outgoing(id string) []Edge {
	return g.edgesAt(g.outgoing[id])
}

// Incoming lists edges whose target is the given resource.
func (g *Graph) Incoming(id string) []Edge {
	return g.edgesAt(g.incoming[id])
}

func (g *Graph) edgesAt(idxs []int) []Edge {
	var result []Edge
	for _, idx := range idxs {
		result = append(result, g.edges[idx])
	}
	return result
}

// References lists every rule match, resolved or not.
func (g *Graph) References() []Reference {
	return append([]Reference{}, g.references...)
}

// Unsatisfied lists references without any target. These are not
// errors; a reference may point outside the working set.
func (g *Graph) Unsatisfied() []Reference {
	var result []Reference
	for i, ref := range g.references {
		if len(g.targets[i]) == 0 {
			result = append(result, ref)
		}
	}
	return result
}

// Ambiguous lists references that resolved to more than one target.
func (g *Graph) Ambiguous() []ResolvedReference {
	var result []ResolvedReference
	for _, ref := range g.ResolvedReferences() {
		if len(ref.TargetIDs) > 1 {
			result = append(result, ref)
		}
	}
	return result
}

// ResolvedReferences lists every rule match in resolution order.
func (g *Graph) ResolvedReferences() []ResolvedReference {
	var result []ResolvedReference
	for i, ref := range g.references {
		result = append(result, ResolvedReference{
			Reference: ref,
			TargetIDs: append([]string{}, g.targets[i]...),
		})
	}
	return result
}
