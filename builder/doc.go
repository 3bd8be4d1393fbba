// Package builder provides deterministic, functional-options style graph
// fixtures for the shortest-path packages: tests, benchmarks and the
// `bellman generate` command all build their graphs here.
//
// The package offers:
//
//   - Orchestration: BuildGraph(gopts, bopts, cons...).
//   - Constructors: Path, Cycle, Complete, RandomSparse, RandomDAG.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("a"…"z"),
//     ExcelColumnIDFn ("A","Z","AA",…), PrefixIDFn("v") ("v0","v1",…).
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntUniformWeightFn. Signed weights are allowed.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs,
//     including vertex and edge order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithIntWeight(-5, 10)},
//	    builder.RandomDAG(100, 0.1),
//	)
package builder
