package srand

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedSourceMatchesRngSource(t *testing.T) {
	for _, seed := range []int64{DefaultSeed, 0, -17, 1 << 33} {
		exclusive := New(NewSource(seed))
		shared := New(NewLockedSource(seed))

		for i := 0; i < 1000; i++ {
			require.Equal(t, exclusive.Int64(), shared.Int64(), "seed %d draw %d", seed, i)
			require.Equal(t, exclusive.Uint64(), shared.Uint64(), "seed %d draw %d", seed, i)
			require.Equal(t, exclusive.Int32n(1000), shared.Int32n(1000), "seed %d draw %d", seed, i)
		}
	}
}

func TestLockedSourceReseed(t *testing.T) {
	shared := NewLockedSource(5)
	shared.Int63()
	shared.Seed(1)
	assert.Equal(t, int64(5577006791947779410), shared.Int63())
}

func TestLockedSourceConcurrentDraws(t *testing.T) {
	const (
		workers   = 8
		perWorker = 5000
	)

	shared := New(NewLockedSource(1))
	results := make([][]int64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			vals := make([]int64, perWorker)
			for i := range vals {
				vals[i] = shared.Int64()
			}
			results[w] = vals
		}(w)
	}
	wg.Wait()

	// The merged draws must be exactly the first workers*perWorker values
	// of the sequential stream.
	want := make(map[int64]bool, workers*perWorker)
	seq := New(NewSource(1))
	for i := 0; i < workers*perWorker; i++ {
		want[seq.Int64()] = true
	}
	require.Len(t, want, workers*perWorker)

	seen := make(map[int64]bool, workers*perWorker)
	for _, vals := range results {
		for _, v := range vals {
			require.False(t, seen[v], "duplicate value %d", v)
			require.True(t, want[v], "value %d not in sequential stream", v)
			seen[v] = true
		}
	}
	assert.Len(t, seen, workers*perWorker)
}

func BenchmarkLockedInt63Parallel(b *testing.B) {
	src := NewLockedSource(1)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			src.Int63()
		}
	})
}
