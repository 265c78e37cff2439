package common

import "strconv"

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Effects sample every position, velocity, hue and audio trigger from it so
// a fixed seed replays the same show.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt generates a random integer in the range [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat generates a random float in the range [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Chance reports true with probability p.
func (r *SeededRNG) Chance(p float64) bool {
	return r.Random() < p
}

// Pick returns a random index into a collection of length n.
func (r *SeededRNG) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return r.RandomInt(0, n)
}

// RandomHue returns a fully saturated mid-lightness color with a random hue.
func (r *SeededRNG) RandomHue() HSL {
	return HSL{H: r.Random() * 360, S: 100, L: 50, A: 1}
}

// Base36 returns n random characters from [0-9a-z].
func (r *SeededRNG) Base36(n int) string {
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		buf = strconv.AppendInt(buf, int64(r.RandomInt(0, 36)), 36)
	}
	return string(buf)
}

// EffectSeed derives a deterministic seed for one effect activation so
// consecutive activations of the same effect do not repeat.
func EffectSeed(baseSeed uint32, generation uint64) uint32 {
	seed := baseSeed ^ (uint32(generation) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
