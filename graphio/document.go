// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/bellman/core"
)

// Document is a decoded graph file: an optional default source and the
// adjacency in declaration order.
type Document struct {
	// Source is the default source vertex; empty when the file has none.
	Source string

	// Nodes lists every declared node in file order.
	Nodes []string

	// Edges lists edges grouped by tail, in file order for YAML/JSON and in
	// ascending neighbour order for HCL.
	Edges []core.Edge[string]
}

// Graph builds a core.Graph whose vertex and edge order follows the document.
// Every edge endpoint must be a declared node (core.ErrDanglingNeighbor).
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph[string], error) {
	if len(d.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}
	g := core.NewGraph[string](opts...)
	for _, id := range d.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, errors.Wrapf(err, "node %q", id)
		}
	}
	for _, e := range d.Edges {
		if !g.HasVertex(e.To) {
			return nil, errors.WithStack(fmt.Errorf("%w: %s→%s", core.ErrDanglingNeighbor, e.From, e.To))
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edge %s→%s", e.From, e.To)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document with the given default source.
func FromGraph(g *core.Graph[string], source string) *Document {
	ids, edges := g.Snapshot()

	return &Document{Source: source, Nodes: ids, Edges: edges}
}

// add appends a node, rejecting duplicates via seen.
func (d *Document) add(seen map[string]struct{}, id string) error {
	if _, dup := seen[id]; dup {
		return errors.Wrapf(ErrDuplicateNode, "%q", id)
	}
	seen[id] = struct{}{}
	d.Nodes = append(d.Nodes, id)

	return nil
}
