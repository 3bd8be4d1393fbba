// SPDX-License-Identifier: MIT

package graphio

import (
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/bellman/core"
)

// hclGraphFile is the top-level structure of a graph file:
//
//	source = "a"
//
//	node "a" {
//	  edges = { b = -1, c = 4 }
//	}
type hclGraphFile struct {
	Source string     `hcl:"source,optional"`
	Nodes  []*hclNode `hcl:"node,block"`
}

type hclNode struct {
	Name  string    `hcl:"name,label"`
	Edges cty.Value `hcl:"edges,optional"`
}

// decodeHCL parses an HCL graph file. Node order follows the file; the
// neighbours of one node come out in ascending name order because that is
// how cty iterates object attributes.
func decodeHCL(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "graphio: reading hcl")
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "graphio: parsing %s", filename)
	}

	var parsed hclGraphFile
	if diags = gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "graphio: decoding %s", filename)
	}
	if len(parsed.Nodes) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := &Document{Source: parsed.Source}
	seen := make(map[string]struct{}, len(parsed.Nodes))
	for _, n := range parsed.Nodes {
		if err = doc.add(seen, n.Name); err != nil {
			return nil, err
		}
		var edges []core.Edge[string]
		if edges, err = ctyEdges(n.Name, n.Edges); err != nil {
			return nil, err
		}
		doc.Edges = append(doc.Edges, edges...)
	}

	return doc, nil
}

// ctyEdges converts an `edges = { nbr = weight }` object into edges from `from`.
func ctyEdges(from string, v cty.Value) ([]core.Edge[string], error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, errors.Wrapf(ErrMalformed, "node %q: edges must be a literal", from)
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, errors.Wrapf(ErrMalformed, "node %q: edges must be an object, got %s", from, ty.FriendlyName())
	}

	var out []core.Edge[string]
	it := v.ElementIterator()
	for it.Next() {
		key, val := it.Element()
		to := key.AsString()
		if val.IsNull() || val.Type() != cty.Number {
			return nil, errors.Wrapf(ErrMalformed, "node %q: weight of %q must be a number", from, to)
		}
		var w float64
		if err := gocty.FromCtyValue(val, &w); err != nil {
			return nil, errors.Wrapf(err, "node %q: weight of %q", from, to)
		}
		out = append(out, core.Edge[string]{From: from, To: to, Weight: w})
	}

	return out, nil
}

// writeHCL renders d in the hclGraphFile layout.
func writeHCL(w io.Writer, d *Document) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if d.Source != "" {
		body.SetAttributeValue("source", cty.StringVal(d.Source))
		body.AppendNewline()
	}

	rows := make(map[string]map[string]cty.Value, len(d.Nodes))
	for _, id := range d.Nodes {
		rows[id] = make(map[string]cty.Value)
	}
	for _, e := range d.Edges {
		row, ok := rows[e.From]
		if !ok {
			return errors.Wrapf(ErrMalformed, "edge %s→%s: undeclared tail", e.From, e.To)
		}
		row[e.To] = cty.NumberFloatVal(e.Weight)
	}
	for i, id := range d.Nodes {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("node", []string{id}).Body()
		if len(rows[id]) > 0 {
			block.SetAttributeValue("edges", cty.ObjectVal(rows[id]))
		}
	}

	_, err := f.WriteTo(w)

	return errors.Wrap(err, "graphio: writing hcl")
}
