// Package testutil provides testing utilities for artgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, lock-protected RNG and generators for binary
// feature matrices.
//
// # Random Matrices
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.BinaryRows(100, 32, 0.2) // 100 items, 32 features, ~20% ones
//	perm := rng.Perm(len(rows))
//
// # Fixed Shapes
//
//	rows := testutil.DisjointRows(5) // identity-like rows, no shared bits
package testutil
