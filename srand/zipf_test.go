package srand

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipfRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		s    float64
		v    int64
	}{
		{"s equal to one", 1, 10},
		{"s below one", 0.5, 10},
		{"negative s", -2, 10},
		{"NaN s", math.NaN(), 10},
		{"infinite s", math.Inf(1), 10},
		{"zero domain", 2, 0},
		{"negative domain", 2, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := NewZipf(New(NewSource(1)), tt.s, tt.v)
			assert.Nil(t, z)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestZipfRange(t *testing.T) {
	for _, v := range []int64{1, 2, 10, 1000} {
		z, err := NewZipf(New(NewSource(1)), 1.5, v)
		require.NoError(t, err)
		assert.Equal(t, 1.5, z.S())
		assert.Equal(t, v, z.V())

		for i := 0; i < 5000; i++ {
			k := z.Draw()
			require.True(t, k >= 0 && k < v, "Draw() = %d for v = %d", k, v)
		}
	}
}

func TestZipfSingleRank(t *testing.T) {
	z, err := NewZipf(New(NewSource(9)), 3, 1)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int64(0), z.Draw())
	}
}

func TestZipfFrequencies(t *testing.T) {
	const (
		s       = 2.0
		v       = 10
		samples = 200000
	)
	z, err := NewZipf(New(NewSource(12345)), s, v)
	require.NoError(t, err)

	counts := make([]int, v)
	for i := 0; i < samples; i++ {
		counts[z.Draw()]++
	}

	var norm float64
	for k := 1; k <= v; k++ {
		norm += math.Pow(float64(k), -s)
	}
	for k := 0; k < v; k++ {
		want := math.Pow(float64(k+1), -s) / norm
		got := float64(counts[k]) / samples
		assert.InDelta(t, want, got, 0.005, "rank %d", k)
	}
	for k := 1; k < v; k++ {
		assert.Greater(t, counts[k-1], counts[k], "rank %d should be more frequent than rank %d", k-1, k)
	}
}

func TestZipfDeterministic(t *testing.T) {
	a, err := NewZipf(New(NewSource(77)), 1.2, 500)
	require.NoError(t, err)
	b, err := NewZipf(New(NewLockedSource(77)), 1.2, 500)
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		require.Equal(t, a.Draw(), b.Draw(), "draw %d", i)
	}
}

func BenchmarkZipf(b *testing.B) {
	z, err := NewZipf(New(NewSource(1)), 1.5, 1000)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		z.Draw()
	}
}

// firstSource returns first from its initial Int63 call and then defers to
// the wrapped source.
type firstSource struct {
	Source
	first  int64
	served bool
}

func (f *firstSource) Int63() int64 {
	if !f.served {
		f.served = true
		return f.first
	}
	return f.Source.Int63()
}

func TestZipfMaxDomainStaysInRange(t *testing.T) {
	// u = 2**-63 with s = 2 gives x = 1<<63, which float64(MaxInt64) equals.
	z, err := NewZipf(New(&firstSource{Source: NewSource(3), first: 1}), 2, math.MaxInt64)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		k := z.Draw()
		require.True(t, k >= 0 && k < math.MaxInt64, "Draw() = %d", k)
	}
}
