// SPDX-License-Identifier: MIT

package graphio

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bellman/core"
)

// decodeYAML reads {source: <id>, graph: {<node>: {<nbr>: <weight>}}}.
// JSON is accepted as YAML. The tree is walked as yaml.Node so that node and
// neighbour order is the order written in the file.
func decodeYAML(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, errors.Wrap(err, "graphio: parsing yaml")
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 {
		return nil, errors.Wrap(ErrMalformed, "expected a single document")
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrMalformed, "line %d: top level must be a mapping", top.Line)
	}

	doc := &Document{}
	var graph *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "source":
			if err := val.Decode(&doc.Source); err != nil {
				return nil, errors.Wrapf(err, "line %d: source", val.Line)
			}
		case "graph":
			graph = val
		default:
			return nil, errors.Wrapf(ErrMalformed, "line %d: unknown key %q", key.Line, key.Value)
		}
	}
	if graph == nil || isNull(graph) {
		return nil, ErrEmptyDocument
	}
	if graph.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrMalformed, "line %d: graph must be a mapping", graph.Line)
	}

	seen := make(map[string]struct{}, len(graph.Content)/2)
	for i := 0; i+1 < len(graph.Content); i += 2 {
		from, nbrs := graph.Content[i].Value, graph.Content[i+1]
		if err := doc.add(seen, from); err != nil {
			return nil, errors.Wrapf(err, "line %d", graph.Content[i].Line)
		}
		if isNull(nbrs) {
			continue
		}
		if nbrs.Kind != yaml.MappingNode {
			return nil, errors.Wrapf(ErrMalformed, "line %d: neighbours of %q must be a mapping", nbrs.Line, from)
		}
		for j := 0; j+1 < len(nbrs.Content); j += 2 {
			var w float64
			if err := nbrs.Content[j+1].Decode(&w); err != nil {
				return nil, errors.Wrapf(err, "line %d: weight of %s→%s", nbrs.Content[j+1].Line, from, nbrs.Content[j].Value)
			}
			doc.Edges = append(doc.Edges, core.Edge[string]{From: from, To: nbrs.Content[j].Value, Weight: w})
		}
	}
	if len(doc.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}

	return doc, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// documentNode renders d as an ordered YAML tree.
func documentNode(d *Document) (*yaml.Node, error) {
	graph := &yaml.Node{Kind: yaml.MappingNode}
	rows := make(map[string]*yaml.Node, len(d.Nodes))
	for _, id := range d.Nodes {
		row := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		rows[id] = row
		graph.Content = append(graph.Content, str(id), row)
	}
	for _, e := range d.Edges {
		row, ok := rows[e.From]
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "edge %s→%s: undeclared tail", e.From, e.To)
		}
		var w yaml.Node
		if err := w.Encode(e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edge %s→%s", e.From, e.To)
		}
		row.Content = append(row.Content, str(e.To), &w)
	}

	top := &yaml.Node{Kind: yaml.MappingNode}
	if d.Source != "" {
		top.Content = append(top.Content, str("source"), str(d.Source))
	}
	top.Content = append(top.Content, str("graph"), graph)

	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{top}}, nil
}

// str is a string scalar; numeric-looking IDs stay strings because the tag is explicit.
func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
