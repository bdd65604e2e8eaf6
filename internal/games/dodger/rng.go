package dodger

import "math/rand"

// RNG supplies the randomness for spawning: position, speed, color and type.
// *rand.Rand satisfies it; tests substitute a scripted source.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG returns a seeded generator.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// uniform returns a value in [lo, hi).
func uniform(rng RNG, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
