package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// FeatureMatrix generates a flat row-major rows x dim matrix of random
// feature values using the given RNG.
func (r *RNG) FeatureMatrix(rows, dim int) []float64 {
	data := make([]float64, rows*dim)
	for i := range data {
		data[i] = r.rand.Float64()
	}
	return data
}

// Weights generates n random edge weights in [0, 1).
func (r *RNG) Weights(n int) []float64 {
	ws := make([]float64, n)
	for i := range ws {
		ws[i] = r.rand.Float64()
	}
	return ws
}

// Endpoints generates n random node ilocs in [0, numNodes).
func (r *RNG) Endpoints(n, numNodes int) []int64 {
	es := make([]int64, n)
	for i := range es {
		es[i] = r.rand.Int63n(int64(numNodes))
	}
	return es
}
