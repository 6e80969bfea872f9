package srand

const (
	rngLen   = 607
	rngTap   = 273
	rngMax   = 1 << 63
	rngMask  = rngMax - 1
	int32max = (1 << 31) - 1

	// seedZero replaces seeds that reduce to zero modulo int32max, which
	// would otherwise leave the auxiliary generator stuck at zero.
	seedZero = 89482311

	// seedWarmup is the number of auxiliary draws discarded before the
	// table is filled.
	seedWarmup = 20
)

// DefaultSeed is the canonical seed. Seeding with it loads a precomputed
// state instead of running the bootstrap.
const DefaultSeed int64 = 1

// RngSource is the tap generator. It is not safe for concurrent use; wrap
// it in a LockedSource to share it between goroutines.
type RngSource struct {
	tap  int           // index into vec
	feed int           // index into vec
	vec  [rngLen]int64 // current feedback register
}

// NewSource returns a generator seeded with seed.
func NewSource(seed int64) *RngSource {
	rng := new(RngSource)
	rng.Seed(seed)
	return rng
}

// seedrand is the Park-Miller minimal standard generator, x[n+1] = 48271 * x[n] mod (2**31 - 1),
// computed with Schrage's method so it never overflows 32 bits.
func seedrand(x int32) int32 {
	const (
		A = 48271
		Q = 44488
		R = 3399
	)

	hi := x / Q
	lo := x % Q
	x = A*lo - R*hi
	if x < 0 {
		x += int32max
	}
	return x
}

// Seed uses the provided seed value to initialize the generator to a
// deterministic state.
func (rng *RngSource) Seed(seed int64) {
	rng.tap = 0
	rng.feed = rngLen - rngTap

	if seed == DefaultSeed {
		rng.vec = rngDefault
		return
	}
	rng.bootstrap(seed)
}

// bootstrap fills the table from seed using the auxiliary generator. For
// DefaultSeed it yields exactly rngDefault.
func (rng *RngSource) bootstrap(seed int64) {
	seed = seed % int32max
	if seed < 0 {
		seed += int32max
	}
	if seed == 0 {
		seed = seedZero
	}

	x := int32(seed)
	for i := -seedWarmup; i < rngLen; i++ {
		x = seedrand(x)
		if i >= 0 {
			var u int64
			u = int64(x) << 40
			x = seedrand(x)
			u ^= int64(x) << 20
			x = seedrand(x)
			u ^= int64(x)
			u ^= rngCooked[i]
			rng.vec[i] = u
		}
	}
}

// Int63 returns a non-negative pseudo-random 63-bit integer as an int64.
func (rng *RngSource) Int63() int64 {
	return int64(rng.Uint64() & rngMask)
}

// Uint64 returns a pseudo-random 64-bit integer as a uint64.
func (rng *RngSource) Uint64() uint64 {
	rng.tap--
	if rng.tap < 0 {
		rng.tap += rngLen
	}

	rng.feed--
	if rng.feed < 0 {
		rng.feed += rngLen
	}

	x := rng.vec[rng.feed] + rng.vec[rng.tap]
	rng.vec[rng.feed] = x
	return uint64(x)
}
