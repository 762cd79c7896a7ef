package framework

import "math/rand/v2"

// pcgStream is xor-ed into the seed to derive the second PCG word.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// NewRand returns a PCG-backed generator. A zero seed selects a process-random
// seed, so runs are not reproducible; any other seed is deterministic.
//
// The returned generator is not safe for concurrent use.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^pcgStream))
}
