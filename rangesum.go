// Package rangesum provides an immutable index answering inclusive
// range-sum queries over a fixed sequence of numbers in constant time.
//
// The index keeps a cumulative (prefix-sum) table t of length n+1 where
// t[0] is zero and t[i+1] = t[i] + s[i]. The sum of s[l] + … + s[r] is
// then a single subtraction, t[r+1] - t[l], regardless of the width of
// the range.
//
// An Index never changes after New returns, so any number of goroutines
// may query it concurrently once it has been published to them.
package rangesum

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types an Index can be built over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Index answers range-sum queries over the sequence it was built from.
// Only the cumulative table is retained; the input slice is not.
type Index[T Number] struct {
	// cumulative[i] holds the sum of the first i elements of the
	// original sequence, so len(cumulative) is always one more than
	// the sequence length and cumulative[0] is zero.
	cumulative []T
}

// New builds an Index over values.
//
// A nil slice is rejected with ErrInvalidInput; a non-nil empty slice
// is valid and yields an Index on which every range query fails with
// ErrOutOfRange. values is neither modified nor retained.
func New[T Number](values []T, options ...indexOption) (*Index[T], error) {
	if values == nil {
		return nil, fmt.Errorf("%w: nil sequence", ErrInvalidInput)
	}

	var cfg config
	for _, option := range options {
		option(&cfg)
	}

	if cfg.finiteOnly {
		for i, v := range values {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%w: element %d is %v", ErrInvalidInput, i, f)
			}
		}
	}

	cumulative := make([]T, len(values)+1)
	for i, v := range values {
		cumulative[i+1] = cumulative[i] + v
	}

	return &Index[T]{cumulative: cumulative}, nil
}

// Len returns the length of the indexed sequence.
func (x *Index[T]) Len() int {
	return len(x.cumulative) - 1
}

// Total returns the sum of the whole sequence, zero when it is empty.
func (x *Index[T]) Total() T {
	return x.cumulative[len(x.cumulative)-1]
}

// SumRange returns the sum of the elements from index left to index
// right, both inclusive.
//
// It fails with ErrOutOfRange unless 0 <= left <= right < Len(). Indices
// are never clamped.
func (x *Index[T]) SumRange(left, right int) (T, error) {
	if left < 0 || right >= x.Len() || left > right {
		var zero T
		return zero, fmt.Errorf("%w: [%d, %d] with length %d", ErrOutOfRange, left, right, x.Len())
	}
	return x.cumulative[right+1] - x.cumulative[left], nil
}

// Prefix returns the sum of the first i elements. Prefix(0) is zero and
// Prefix(Len()) equals Total().
func (x *Index[T]) Prefix(i int) (T, error) {
	if i < 0 || i > x.Len() {
		var zero T
		return zero, fmt.Errorf("%w: prefix %d with length %d", ErrOutOfRange, i, x.Len())
	}
	return x.cumulative[i], nil
}

func (x *Index[T]) String() string {
	return fmt.Sprintf("RangeSum<len=%d, total=%v>", x.Len(), x.Total())
}
