package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding of sweep and test coordinate streams. It is not used by the noise
// or density cores, which derive all randomness from their own seeded LCG.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Range returns a uniform value in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + (max-min)*r.r.Float64()
}

// Coord2 returns a uniform 2D coordinate with both components in [-extent, extent).
func (r *RNG) Coord2(extent float64) (float64, float64) {
	return r.Range(-extent, extent), r.Range(-extent, extent)
}

// Coord3 returns a uniform 3D coordinate with all components in [-extent, extent).
func (r *RNG) Coord3(extent float64) (float64, float64, float64) {
	return r.Range(-extent, extent), r.Range(-extent, extent), r.Range(-extent, extent)
}

// IntN returns a uniform int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
