// Package builder produces graphs and edges for tests, demos and the
// "random" action of the engine.
//
// The package offers:
//
//   - RandomEdge: one random upsert triple (u, v, w) with distinct integer
//     endpoints drawn from an id range (default 8..16) and a weight drawn
//     from a weight range (default 1..20).
//   - Topology constructors for deterministic fixtures: Path, Cycle, Star,
//     Complete, CompleteBipartite, RandomSparse and RandomEdges, composed
//     with BuildGraph.
//   - Configuration primitives: BuilderOption values resolved into an
//     internal builderConfig (RNG, ID scheme, weight function, ranges).
//   - ID schemes (IDFn) and weight distributions (WeightFn).
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order give the
//     same graph.
//   - Option constructors panic on nonsensical values (programmer error);
//     constructors return sentinel errors and never panic at runtime.
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)},
//		builder.Cycle(6), builder.RandomEdges(4),
//	)
package builder
