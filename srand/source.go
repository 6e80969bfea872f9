package srand

// A Source produces the raw stream a Rand derives its values from.
//
// Implementations must be deterministic: after Seed(s), the sequence of
// values returned depends only on s and the order of calls.
type Source interface {
	// Int63 returns a non-negative pseudo-random 63-bit integer.
	Int63() int64
	// Uint64 returns a pseudo-random 64-bit integer.
	Uint64() uint64
	// Seed resets the source to the deterministic state for seed.
	Seed(seed int64)
}

var (
	_ Source = (*RngSource)(nil)
	_ Source = (*LockedSource)(nil)
)
