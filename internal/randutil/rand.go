package randutil

import "github.com/lox/taprand/srand"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns an exclusive-owner generator seeded deterministically from seed.
func New(seed int64) *srand.Rand[*srand.RngSource] {
	return srand.New(srand.NewSource(seed))
}

// NewShared returns a mutex-guarded generator seeded from seed.
func NewShared(seed int64) *srand.Rand[*srand.LockedSource] {
	return srand.New(srand.NewLockedSource(seed))
}

// WorkerSeeds derives n seeds for independent per-worker generators. The
// seeds are a splitmix64 sequence started at seed, so the same parent seed
// always yields the same workers and neighbouring parents do not overlap.
func WorkerSeeds(seed int64, n int) []int64 {
	seeds := make([]int64, n)
	u := uint64(seed)
	for i := range seeds {
		u += goldenRatio64
		seeds[i] = int64(mix(u))
	}
	return seeds
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
