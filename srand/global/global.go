// Package global exposes a process-wide generator for callers that do not
// want to thread a *srand.Rand through their code.
//
// The shared instance is created on first use and seeded with
// srand.DefaultSeed, so a program that never calls Seed sees the same
// sequence on every run. It is guarded by a mutex; goroutines that draw
// heavily should take their own generator with Local instead.
package global

import (
	"sync"

	"github.com/lox/taprand/internal/entropy"
	"github.com/lox/taprand/srand"
)

var (
	once   sync.Once
	shared *srand.Rand[*srand.LockedSource]
)

func instance() *srand.Rand[*srand.LockedSource] {
	once.Do(func() {
		shared = srand.New(srand.NewLockedSource(srand.DefaultSeed))
	})
	return shared
}

// Seed reseeds the shared generator.
func Seed(seed int64) { instance().Seed(seed) }

// SeedFromEntropy reseeds the shared generator from the operating system
// and returns the seed used, so a run can be replayed later.
func SeedFromEntropy() (int64, error) {
	seed, err := entropy.Seed()
	if err != nil {
		return 0, err
	}
	instance().Seed(seed)
	return seed, nil
}

// Local returns a generator owned by the caller, seeded from the shared
// stream. It must not be used from more than one goroutine at a time.
func Local() *srand.Rand[*srand.RngSource] {
	return srand.New(srand.NewSource(instance().Int64()))
}

// Int32 returns a non-negative pseudo-random 31-bit integer.
func Int32() int32 { return instance().Int32() }

// Uint32 returns a pseudo-random 32-bit value.
func Uint32() uint32 { return instance().Uint32() }

// Int32n returns a pseudo-random number in [0,n). It panics if n <= 0.
func Int32n(n int32) int32 { return instance().Int32n(n) }

// Int64 returns a non-negative pseudo-random 63-bit integer.
func Int64() int64 { return instance().Int64() }

// Uint64 returns a pseudo-random 64-bit value.
func Uint64() uint64 { return instance().Uint64() }

// Int64n returns a pseudo-random number in [0,n). It panics if n <= 0.
func Int64n(n int64) int64 { return instance().Int64n(n) }

// IntN returns a pseudo-random number in [0,n). It panics if n <= 0.
func IntN(n int) int { return instance().IntN(n) }

// Float32 returns a pseudo-random number in [0.0,1.0).
func Float32() float32 { return instance().Float32() }

// Float64 returns a pseudo-random number in [0.0,1.0).
func Float64() float64 { return instance().Float64() }

// Shuffle pseudo-randomizes the order of n elements.
func Shuffle(n int, swap func(i, j int)) { instance().Shuffle(n, swap) }

// Perm returns a pseudo-random permutation of [0,n).
func Perm(n int) []int { return instance().Perm(n) }

// NewNormal returns a standard normal sampler over the shared generator.
func NewNormal() *srand.Normal[*srand.LockedSource] {
	return srand.NewNormal(instance())
}

// NewZipf returns a Zipf sampler over the shared generator.
func NewZipf(s float64, v int64) (*srand.Zipf[*srand.LockedSource], error) {
	return srand.NewZipf(instance(), s, v)
}
