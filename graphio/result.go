// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	dgraph "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"
	k8syaml "sigs.k8s.io/yaml"

	"github.com/katalvlaran/bellman/core"
)

// Inf is how an unreachable distance is written.
const Inf = "inf"

// Result is a solved shortest-path tree ready for output.
type Result struct {
	Algorithm string
	Source    string
	Graph     *core.Graph[string]
	Dist      map[string]float64
	Prev      map[string]string
}

// resultFile is the serialised shape shared by yaml and json output.
type resultFile struct {
	Algorithm string       `json:"algorithm,omitempty"`
	Source    string       `json:"source"`
	Nodes     []resultNode `json:"nodes"`
}

type resultNode struct {
	Node        string  `json:"node"`
	Distance    any     `json:"distance"`
	Predecessor *string `json:"predecessor"`
}

// rows lists every vertex in graph order.
func (r Result) rows() []resultNode {
	ids := r.Graph.Vertices()
	out := make([]resultNode, 0, len(ids))
	for _, id := range ids {
		row := resultNode{Node: id, Distance: formatDistance(r.Dist[id])}
		if p, ok := r.Prev[id]; ok {
			row.Predecessor = &p
		}
		out = append(out, row)
	}

	return out
}

// formatDistance keeps finite values numeric and spells +Inf as Inf.
func formatDistance(d float64) any {
	if math.IsInf(d, 1) {
		return Inf
	}

	return d
}

// Encode writes r as yaml, json, text (aligned table) or dot (Graphviz, with
// the shortest-path tree highlighted).
func Encode(w io.Writer, r Result, format Format) error {
	if r.Graph == nil {
		return errors.Wrap(ErrMalformed, "result has no graph")
	}
	file := resultFile{Algorithm: r.Algorithm, Source: r.Source, Nodes: r.rows()}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(file), "graphio: encoding json")
	case FormatYAML:
		out, err := k8syaml.Marshal(file)
		if err != nil {
			return errors.Wrap(err, "graphio: encoding yaml")
		}
		_, err = w.Write(out)

		return errors.Wrap(err, "graphio: writing yaml")
	case FormatText:
		return writeTable(w, file)
	case FormatDOT:
		return writeDOT(w, r)
	}

	return errors.Wrapf(ErrUnknownFormat, "encode result %q", format)
}

func writeTable(w io.Writer, file resultFile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tDISTANCE\tPREDECESSOR")
	for _, row := range file.Nodes {
		prev := "-"
		if row.Predecessor != nil {
			prev = *row.Predecessor
		}
		dist := Inf
		if d, ok := row.Distance.(float64); ok {
			dist = strconv.FormatFloat(d, 'g', -1, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Node, dist, prev)
	}

	return errors.Wrap(tw.Flush(), "graphio: writing table")
}

// writeDOT copies the graph into a dominikbraun/graph and draws it. Vertices
// are labelled with their distance; predecessor edges are drawn bold.
func writeDOT(w io.Writer, r Result) error {
	out := dgraph.New(dgraph.StringHash, dgraph.Directed())
	for _, id := range r.Graph.Vertices() {
		label := fmt.Sprintf("%s (%v)", id, formatDistance(r.Dist[id]))
		if err := out.AddVertex(id, dgraph.VertexAttribute("label", label)); err != nil {
			return errors.Wrapf(err, "dot: vertex %s", id)
		}
	}
	for _, e := range r.Graph.Edges() {
		opts := []func(*dgraph.EdgeProperties){
			dgraph.EdgeAttribute("label", strconv.FormatFloat(e.Weight, 'g', -1, 64)),
		}
		if p, ok := r.Prev[e.To]; ok && p == e.From {
			opts = append(opts, dgraph.EdgeAttribute("style", "bold"))
		}
		if err := out.AddEdge(e.From, e.To, opts...); err != nil {
			return errors.Wrapf(err, "dot: edge %s→%s", e.From, e.To)
		}
	}

	return errors.Wrap(draw.DOT(out, w), "graphio: writing dot")
}
