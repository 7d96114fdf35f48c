package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// BinaryRows generates num rows of dimensions 0/1 values where each bit is
// set with probability density. Uses a single backing array.
func (r *RNG) BinaryRows(num, dimensions int, density float64) [][]uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]uint8, num*dimensions)
	rows := make([][]uint8, num)

	for i := range num {
		row := data[i*dimensions : (i+1)*dimensions]
		for j := range row {
			if r.rand.Float64() < density {
				row[j] = 1
			}
		}
		rows[i] = row
	}

	return rows
}

// ClusteredRows generates rows drawn around clusters random base patterns.
// Each row copies its base pattern (row i uses pattern i%clusters) and flips
// every bit with probability noise.
func (r *RNG) ClusteredRows(num, dimensions, clusters int, density, noise float64) [][]uint8 {
	bases := r.BinaryRows(clusters, dimensions, density)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]uint8, num*dimensions)
	rows := make([][]uint8, num)

	for i := range num {
		base := bases[i%clusters]
		row := data[i*dimensions : (i+1)*dimensions]
		for j := range row {
			row[j] = base[j]
			if r.rand.Float64() < noise {
				row[j] ^= 1
			}
		}
		rows[i] = row
	}

	return rows
}

// DisjointRows returns n rows of n features where row i has only bit i set.
// No two rows share a set bit.
func DisjointRows(n int) [][]uint8 {
	rows := make([][]uint8, n)
	for i := range rows {
		rows[i] = make([]uint8, n)
		rows[i][i] = 1
	}
	return rows
}

// Permute returns rows reordered so that out[k] = rows[perm[k]].
// The row slices themselves are shared, not copied.
func Permute(rows [][]uint8, perm []int) [][]uint8 {
	out := make([][]uint8, len(perm))
	for k, i := range perm {
		out[k] = rows[i]
	}
	return out
}

// Reverse returns the identity permutation of [0,n) reversed.
func Reverse(n int) []int {
	perm := make([]int, n)
	for k := range perm {
		perm[k] = n - 1 - k
	}
	return perm
}
