// Package detrand provides a pure, counter-based random source for
// brush stamp placement.
//
// Stroke replay must reproduce scatter and jitter bit-identically, so
// nothing in the stroke render path may touch a shared PRNG. Instead
// every random value is hash(seed, counter): the seed is fixed per
// stroke and the counter advances in a fixed order per stamp, which
// makes the sequence a pure function of the recorded stroke.
package detrand

// Hash mixes a seed and counter into a well-distributed 32-bit value.
// This is the murmur3 finalizer applied to the XOR of the two inputs
// after an odd-constant spread; it has full avalanche, so consecutive
// counters produce uncorrelated outputs.
func Hash(seed, counter uint32) uint32 {
	h := seed ^ (counter * 0x9E3779B9)
	h ^= h >> 16
	h *= 0x85EBCA6B
	h ^= h >> 13
	h *= 0xC2B2AE35
	h ^= h >> 16
	return h
}

// Unit maps Hash(seed, counter) to the interval [0, 1).
func Unit(seed, counter uint32) float32 {
	return float32(float64(Hash(seed, counter)) * (1.0 / 4294967296.0))
}

// Source is a stateful view over the hash sequence for one seed.
// Callers consume values in a fixed order; Reseed resets the counter
// to replay the sequence from the start.
//
// The zero value is a valid source with seed 0.
type Source struct {
	seed    uint32
	counter uint32
}

// New creates a source positioned at the start of the sequence for seed.
func New(seed uint32) *Source {
	return &Source{seed: seed}
}

// Reseed restarts the source with a new seed and counter zero.
func (s *Source) Reseed(seed uint32) {
	s.seed = seed
	s.counter = 0
}

// Seed returns the current seed.
func (s *Source) Seed() uint32 {
	return s.seed
}

// Next returns the next raw 32-bit value and advances the counter.
func (s *Source) Next() uint32 {
	v := Hash(s.seed, s.counter)
	s.counter++
	return v
}

// Unit returns the next value in [0, 1).
func (s *Source) Unit() float32 {
	return float32(float64(s.Next()) * (1.0 / 4294967296.0))
}

// Signed returns the next value in [-1, 1).
func (s *Source) Signed() float32 {
	return s.Unit()*2 - 1
}

// Range returns the next value in [lo, hi).
func (s *Source) Range(lo, hi float32) float32 {
	return lo + s.Unit()*(hi-lo)
}
