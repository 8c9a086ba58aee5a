package solver

import "math/rand"

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
