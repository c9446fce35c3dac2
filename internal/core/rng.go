package core

import "math/rand/v2"

// Source supplies the uniform random integers a simulation consumes. Tests
// substitute a scripted implementation to make stepping reproducible.
type Source interface {
	// Uniform returns a uniformly distributed integer in [a, b).
	Uniform(a, b int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. It is the default Source for every simulation instance.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uniform returns a random integer in [a, b). Degenerate ranges return a.
func (r *RNG) Uniform(a, b int) int {
	if b <= a {
		return a
	}
	return a + r.r.IntN(b-a)
}

// Rand exposes the underlying rand.Rand for advanced use.
func (r *RNG) Rand() *rand.Rand { return r.r }
