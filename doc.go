// Package simgraph builds weighted similarity graphs over a dataset of
// patterns, the input representation for spectral clustering pipelines.
//
// A pattern is any feature vector: a point, a pixel or a sample column of a
// matrix (see the dataset package). Which patterns count as neighbors of a
// vertex is decided by a pluggable strategy (see the neighborhood package):
// a clamped pixel window, the full clique, exact k-nearest neighbors via a
// spatial index, or uniform random sampling. Edge weights come exclusively
// from a caller-supplied Oracle.
//
// Construction is data-parallel over the vertex index space: every vertex's
// neighbor lookup, oracle evaluation and batched edge insertion is an
// independent unit of work, and the resulting graph is identical whatever
// the scheduling order. A failure in any unit aborts the whole build.
//
//	ds := dataset.Slice{{0}, {1}, {2}, {3}, {10}}
//
//	knn, err := neighborhood.NewKNN(2, ds)
//	if err != nil { ... }
//
//	g, err := simgraph.BuildFloat64(ctx, knn, simgraph.InverseDistance[float64](distance.Euclidean), ds)
//	if err != nil { ... }
//
// LocalScale estimates the per-pattern scale of the self-tuning affinity
// heuristic (distance to the k-th nearest neighbor), and RandomKGraph
// generates dataset-free random k-regular-ish graphs for testing downstream
// consumers.
//
// The eigen-solvers and clustering algorithms that consume the finished
// graph are out of scope; see the graph package for handing the result to
// gonum's algorithm ecosystem.
package simgraph
