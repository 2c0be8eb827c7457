// Package testutil provides testing utilities for vecknn.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random datasets and
// computing exact nearest neighbors by sorting.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	vectors := rng.UniformVectors(100, 8)          // uniform [0, 1)
//	vectors, classes := rng.ClusteredVectors(100, 8, 3, 0.1)
//
// # Exact Search (Ground Truth)
//
//	indices := testutil.ExactTopK(query, vectors, k)
package testutil
