package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/dijkstra"
	"github.com/katalvlaran/bellman/graphio"
)

const solveExamples = `  # solve from the source declared in the file
  bellman solve --filename graph.yaml

  # override the source and print JSON
  bellman solve -f graph.hcl --source b -o json

  # draw the shortest-path tree
  bellman solve -f graph.yaml -o dot | dot -Tsvg > tree.svg`

const (
	algoBellmanFord = "bellman-ford"
	algoDijkstra    = "dijkstra"
	algoDAG         = "dag"
	algoAuto        = "auto"
)

type solveOptions struct {
	filename  string
	source    string
	algorithm string
	earlyExit bool
	output    string
}

func newSolveCmd(a *app) *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:     "solve",
		Short:   "compute shortest distances and predecessors from a source vertex",
		Example: solveExamples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, a, o)
		},
	}
	cmd.Flags().StringVarP(&o.filename, "filename", "f", "", "graph document (.yaml, .yml, .json or .hcl).")
	cmd.Flags().StringVar(&o.source, "source", "", "source vertex; overrides the document's source.")
	cmd.Flags().StringVar(&o.algorithm, "algorithm", algoBellmanFord,
		fmt.Sprintf("One of: %s|%s|%s|%s. %s picks dijkstra when no weight is negative, then %s when the source reaches no cycle.",
			algoBellmanFord, algoDijkstra, algoDAG, algoAuto, algoAuto, algoDAG))
	cmd.Flags().BoolVar(&o.earlyExit, "early-exit", false, "stop bellman-ford after a sweep that changes nothing.")
	cmd.Flags().StringVarP(&o.output, "output", "o", string(graphio.FormatText), "Output format. One of: text|yaml|json|dot.")
	_ = cmd.MarkFlagRequired("filename")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, o *solveOptions) error {
	format, err := graphio.ParseFormat(o.output)
	if err != nil {
		return err
	}
	doc, err := graphio.LoadFile(o.filename)
	if err != nil {
		return err
	}
	source := o.source
	if source == "" {
		source = doc.Source
	}
	if source == "" {
		return errors.Errorf("%s declares no source; pass --source", o.filename)
	}
	g, err := doc.Graph(core.WithName(filepath.Base(o.filename)))
	if err != nil {
		return errors.Wrapf(err, "building graph from %s", o.filename)
	}

	if !g.HasVertex(source) {
		return errors.Wrapf(bellmanford.ErrInvalidSource, "%s has no vertex %q", o.filename, source)
	}

	algorithm := strings.ToLower(o.algorithm)
	log := a.log.WithValues("source", source)
	log.Info("solving", "graph", g.Name(), "vertices", g.VertexCount(), "edges", g.EdgeCount(), "algorithm", algorithm)

	bfOpts := []bellmanford.Option{bellmanford.WithLogger(log)}
	if o.earlyExit {
		bfOpts = append(bfOpts, bellmanford.WithEarlyExit())
	}
	var (
		dist map[string]float64
		prev map[string]string
	)
	switch algorithm {
	case algoAuto:
		algorithm, dist, prev, err = solveAuto(g, source, bfOpts)
	case algoBellmanFord:
		dist, prev, err = bellmanford.BellmanFord(g, source, bfOpts...)
	case algoDijkstra:
		dist, prev, err = dijkstra.Dijkstra(g, source)
	case algoDAG:
		dist, prev, err = bellmanford.DAG(g, source, bfOpts...)
	default:
		return errors.Errorf("unknown algorithm %q", o.algorithm)
	}
	if err != nil {
		log.Error(err, "solve failed", "algorithm", algorithm)
		return errors.Wrapf(err, "solving %s from %q", o.filename, source)
	}
	log.Info("solved", "algorithm", algorithm)

	return graphio.Encode(cmd.OutOrStdout(), graphio.Result{
		Algorithm: algorithm,
		Source:    source,
		Graph:     g,
		Dist:      dist,
		Prev:      prev,
	}, format)
}

// solveAuto runs the cheapest solver that is correct for g: dijkstra when
// no weight is negative, otherwise the single-sweep DAG solver, falling back
// to bellman-ford when the source reaches a cycle. It reports which one
// produced the result.
func solveAuto(g *core.Graph[string], source string, opts []bellmanford.Option) (string, map[string]float64, map[string]string, error) {
	if !bellmanford.NegativeWeights(g) {
		dist, prev, err := dijkstra.Dijkstra(g, source)
		return algoDijkstra, dist, prev, err
	}
	dist, prev, err := bellmanford.DAG(g, source, opts...)
	if !errors.Is(err, bellmanford.ErrNotAcyclic) {
		return algoDAG, dist, prev, err
	}
	dist, prev, err = bellmanford.BellmanFord(g, source, opts...)

	return algoBellmanFord, dist, prev, err
}
