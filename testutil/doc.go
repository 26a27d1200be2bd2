// Package testutil provides testing utilities for simgraph.
//
// This package is intended for use in tests, benchmarks and examples only.
// It provides seeded random dataset generation and exact nearest-neighbor
// ground truth for verifying strategy output.
//
// # Random Dataset Generation
//
//	rng := testutil.NewRNG(seed)
//	ds := rng.UniformDataset(1000, 32) // 1000 patterns, 32 features, [0, 1)
//
// # Ground Truth
//
//	ids := testutil.ExactNeighbors(ds, j, k, distance.SquaredL2)
package testutil
