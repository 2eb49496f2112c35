// Package seqgen produces reproducible random sequences and query ranges
// for exercising range-sum indexes.
package seqgen

import (
	rng "github.com/leesper/go_rng"
)

// Source is the randomness a Generator draws from. Ranges are half-open:
// [a, b). *rng.UniformGenerator satisfies it.
type Source interface {
	Int64Range(a, b int64) int64
	Float64Range(a, b float64) float64
}

type Generator struct {
	src Source
}

// New returns a Generator seeded with seed. Equal seeds give equal output.
func New(seed int64) *Generator {
	return &Generator{src: rng.NewUniformGenerator(seed)}
}

// FromSource wraps an existing Source.
func FromSource(src Source) *Generator {
	return &Generator{src: src}
}

// Ints returns n integers drawn uniformly from [lo, hi). The result is
// non-nil even when n is zero.
func (g *Generator) Ints(n int, lo, hi int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = g.src.Int64Range(lo, hi)
	}
	return out
}

// Floats returns n floats drawn uniformly from [lo, hi). The result is
// non-nil even when n is zero.
func (g *Generator) Floats(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.src.Float64Range(lo, hi)
	}
	return out
}

// Range returns a valid inclusive range 0 <= left <= right < n.
// n must be positive.
func (g *Generator) Range(n int) (left, right int) {
	a := int(g.src.Int64Range(0, int64(n)))
	b := int(g.src.Int64Range(0, int64(n)))
	if a > b {
		a, b = b, a
	}
	return a, b
}
