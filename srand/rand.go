package srand

import (
	"fmt"
	"math"
)

// shuffleInt32Max is the largest index that can be drawn with Int32n.
const shuffleInt32Max = math.MaxInt32 - 1

// A Rand derives random values from a Source. Every derived operation is
// built from the source's 63-bit stream, so a Rand over a RngSource and a
// Rand over a LockedSource seeded alike return identical sequences.
//
// A Rand is safe for concurrent use only when S is.
type Rand[S Source] struct {
	src S
}

// New returns a Rand that uses random values from src to generate other
// random values.
func New[S Source](src S) *Rand[S] {
	return &Rand[S]{src: src}
}

// Source returns the underlying source.
func (r *Rand[S]) Source() S {
	return r.src
}

// Seed uses the provided seed value to initialize the generator to a
// deterministic state.
func (r *Rand[S]) Seed(seed int64) {
	r.src.Seed(seed)
}

// Int64 returns a non-negative pseudo-random 63-bit integer as an int64.
func (r *Rand[S]) Int64() int64 {
	return r.src.Int63()
}

// Uint64 returns a pseudo-random 64-bit value as a uint64.
func (r *Rand[S]) Uint64() uint64 {
	return r.src.Uint64()
}

// Int32 returns a non-negative pseudo-random 31-bit integer as an int32.
func (r *Rand[S]) Int32() int32 {
	return int32(r.Int64() >> 32)
}

// Uint32 returns a pseudo-random 32-bit value as a uint32.
func (r *Rand[S]) Uint32() uint32 {
	return uint32(r.Int64() >> 31)
}

// Int32n returns, as an int32, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func (r *Rand[S]) Int32n(n int32) int32 {
	if n <= 0 {
		panic(fmt.Errorf("%w: Int32n bound %d", ErrInvalidArgument, n))
	}
	if n&(n-1) == 0 {
		return r.Int32() & (n - 1)
	}
	limit := int32((1 << 31) - 1 - (1<<31)%uint32(n))
	v := r.Int32()
	for v > limit {
		v = r.Int32()
	}
	return v % n
}

// Int64n returns, as an int64, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func (r *Rand[S]) Int64n(n int64) int64 {
	if n <= 0 {
		panic(fmt.Errorf("%w: Int64n bound %d", ErrInvalidArgument, n))
	}
	if n&(n-1) == 0 {
		return r.Int64() & (n - 1)
	}
	limit := int64((1 << 63) - 1 - (1<<63)%uint64(n))
	v := r.Int64()
	for v > limit {
		v = r.Int64()
	}
	return v % n
}

// IntN returns, as an int, a non-negative pseudo-random number in [0,n).
// It panics if n <= 0.
func (r *Rand[S]) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Errorf("%w: IntN bound %d", ErrInvalidArgument, n))
	}
	if n <= math.MaxInt32 {
		return int(r.Int32n(int32(n)))
	}
	return int(r.Int64n(int64(n)))
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *Rand[S]) Float64() float64 {
	for {
		// Rounding can carry values just below 1<<63 up to exactly 1.
		f := float64(r.Int64()) / (1 << 63)
		if f != 1 {
			return f
		}
	}
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *Rand[S]) Float32() float32 {
	for {
		f := float32(r.Float64())
		if f != 1 {
			return f
		}
	}
}

// Shuffle pseudo-randomizes the order of n elements using Fisher-Yates.
// swap swaps the elements with indexes i and j. It panics if n < 0.
func (r *Rand[S]) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic(fmt.Errorf("%w: Shuffle length %d", ErrInvalidArgument, n))
	}

	i := n - 1
	for ; i > shuffleInt32Max; i-- {
		j := int(r.Int64n(int64(i + 1)))
		swap(i, j)
	}
	for ; i > 0; i-- {
		j := int(r.Int32n(int32(i + 1)))
		swap(i, j)
	}
}

// Perm returns, as a slice of n ints, a pseudo-random permutation of the
// integers [0,n).
func (r *Rand[S]) Perm(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	r.Shuffle(n, func(i, j int) {
		m[i], m[j] = m[j], m[i]
	})
	return m
}

// ShuffleSlice shuffles s in place using r.
func ShuffleSlice[S Source, T any](r *Rand[S], s []T) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
