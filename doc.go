// Package vecknn provides a k-nearest-neighbors label classifier over
// fixed-dimension float64 vectors.
//
// # Quick Start
//
//	samples := []*vecknn.Sample{
//	    vecknn.NewSample("action", vector.MustNew(1, 3, 5, 3, 4, 2)),
//	    vecknn.NewSample("comedy", vector.MustNew(2, 2, 3, 3, 2, 2)),
//	}
//	label, ok, err := vecknn.FindKNN(1, samples, vector.MustNew(4, 3, 4, 2, 1, 2))
//
// # Algorithm
//
// Classification is a single linear scan. The k nearest samples are kept in
// a bounded max-heap: once it is full, a sample replaces the farthest retained
// one only if it is strictly closer, so among equally distant samples the
// first seen wins. Each retained neighbor then votes for its label with
// weight 1/distance; an exact match (distance 0) votes with weight 1. The
// label with the largest total wins, exact ties going to the
// lexicographically smallest label.
//
// # Configuration
//
//	clf := vecknn.New(
//	    vecknn.WithLogger(vecknn.NewTextLogger(slog.LevelDebug)),
//	    vecknn.WithMetricsCollector(&vecknn.BasicMetricsCollector{}),
//	    vecknn.WithParallelism(4),
//	)
//	res, err := clf.Classify(ctx, 3, samples, query)
//
// An empty sample set is not an error; Result.Found is false. Mismatched
// dimensions are reported as *ErrDimensionMismatch before any distance is
// computed.
package vecknn
