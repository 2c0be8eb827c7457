package testutil

import (
	"cmp"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"

	"gonum.org/v1/gonum/floats"
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
	r.rand = rand.New(rand.NewSource(r.seed))
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

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// IntegerVectors generates vectors with integer coordinates in [0, maxVal).
// Small maxVal values produce many exactly equal distances.
func (r *RNG) IntegerVectors(num, dimensions, maxVal int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float64, num)
	for i := range num {
		vec := make([]float64, dimensions)
		for j := range vec {
			vec[j] = float64(r.rand.Intn(maxVal))
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors around random centroids in [0, 1) and
// returns the cluster of each vector. spread is the standard deviation of the
// Gaussian noise added to the centroid.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) ([][]float64, []int) {
	centroids := r.UniformVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float64, num)
	assignment := make([]int, num)

	for i := range num {
		c := i % clusters
		vec := make([]float64, dim)
		for j := range dim {
			vec[j] = centroids[c][j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
		assignment[i] = c
	}

	return vectors, assignment
}

// ClassLabel returns the label used for cluster c.
func ClassLabel(c int) string {
	return fmt.Sprintf("class-%d", c)
}

// ClassLabels maps cluster assignments to labels.
func ClassLabels(assignment []int) []string {
	labels := make([]string, len(assignment))
	for i, c := range assignment {
		labels[i] = ClassLabel(c)
	}
	return labels
}

// EuclideanDistance returns the L2 distance, computed the same way as
// vector.ComputeDistance so rankings agree bit for bit.
func EuclideanDistance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// ExactTopK returns the indices of the k vectors nearest to query, nearest
// first. Equal distances are ordered by index; NaN distances come last.
func ExactTopK(query []float64, data [][]float64, k int) []int {
	type scored struct {
		index int
		dist  float64
	}

	all := make([]scored, len(data))
	for i, v := range data {
		all[i] = scored{index: i, dist: EuclideanDistance(query, v)}
	}

	slices.SortFunc(all, func(a, b scored) int {
		if an, bn := math.IsNaN(a.dist), math.IsNaN(b.dist); an != bn {
			if an {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return a.index - b.index
	})

	out := make([]int, 0, k)
	for i := range min(k, len(all)) {
		out = append(out, all[i].index)
	}
	return out
}
