package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellman/builder"
	"github.com/katalvlaran/bellman/graphio"
)

const generateExamples = `  # random DAG with signed integer weights
  bellman generate --kind dag -n 8 --seed 1 --min -5 --max 10 > dag.yaml

  # smallest negative cycle, as HCL
  bellman generate --kind cycle -n 3 --min -1 --max -1 -o hcl`

type generateOptions struct {
	kind   string
	n      int
	p      float64
	seed   int64
	min    int
	max    int
	ids    string
	output string
	source string
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "write a generated graph document",
		Example: generateExamples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, a, o)
		},
	}
	cmd.Flags().StringVar(&o.kind, "kind", "sparse", "One of: path|cycle|complete|sparse|dag.")
	cmd.Flags().IntVarP(&o.n, "vertices", "n", 8, "number of vertices.")
	cmd.Flags().Float64Var(&o.p, "density", 0.3, "edge probability for sparse and dag.")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "random seed.")
	cmd.Flags().IntVar(&o.min, "min", 1, "smallest integer edge weight (may be negative).")
	cmd.Flags().IntVar(&o.max, "max", 10, "largest integer edge weight.")
	cmd.Flags().StringVar(&o.ids, "ids", "decimal", "vertex names. One of: decimal|letters|excel.")
	cmd.Flags().StringVar(&o.source, "source", "", "source written into the document; defaults to the first vertex.")
	cmd.Flags().StringVarP(&o.output, "output", "o", string(graphio.FormatYAML), "Output format. One of: yaml|json|hcl.")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, o *generateOptions) error {
	format, err := graphio.ParseFormat(o.output)
	if err != nil {
		return err
	}
	if o.max < o.min {
		return errors.Errorf("--max %d is below --min %d", o.max, o.min)
	}
	if err = builder.CheckIntRange(o.min, o.max); err != nil {
		return errors.Wrap(err, "--min/--max")
	}

	var cons builder.Constructor
	switch strings.ToLower(o.kind) {
	case "path":
		cons = builder.Path(o.n)
	case "cycle":
		cons = builder.Cycle(o.n)
	case "complete":
		cons = builder.Complete(o.n)
	case "sparse":
		cons = builder.RandomSparse(o.n, o.p)
	case "dag":
		cons = builder.RandomDAG(o.n, o.p)
	default:
		return errors.Errorf("unknown kind %q", o.kind)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(o.seed), builder.WithIntWeight(o.min, o.max)}
	switch strings.ToLower(o.ids) {
	case "decimal":
	case "letters":
		if o.n > 26 {
			return errors.Errorf("--ids letters supports at most 26 vertices, got %d", o.n)
		}
		bopts = append(bopts, builder.WithSymbolIDs())
	case "excel":
		bopts = append(bopts, builder.WithExcelColumnIDs())
	default:
		return errors.Errorf("unknown id scheme %q", o.ids)
	}

	g, err := builder.BuildGraph(nil, bopts, cons)
	if err != nil {
		return errors.Wrapf(err, "generating %s graph", o.kind)
	}
	source := o.source
	if source == "" {
		source = g.Vertices()[0]
	}
	a.log.Info("generated", "kind", o.kind, "vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", o.seed)

	return graphio.EncodeDocument(cmd.OutOrStdout(), graphio.FromGraph(g, source), format)
}
