// Package randutil centralises deterministic RNG construction so that
// every call site seeding from a single int64 gets the same sequence.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded from the provided int64. rand/v2's
// PCG wants two 64-bit seeds; both are derived here with a splitmix
// finalizer so callers only carry one seed value around.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
