// Package randutil derives reproducible random generators from int64 seeds.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words come from the same seed so callers only track one number.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seeds draws n round seeds from a master generator seeded with seed.
// Seeds are drawn in order, so round i always gets the same value for a
// given master seed regardless of how rounds are later scheduled.
func Seeds(seed int64, n int) []int64 {
	master := New(seed)
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = master.Int64()
	}
	return seeds
}

// TimeSeed returns a non-zero seed derived from the current time
func TimeSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
