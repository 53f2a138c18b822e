package core

import (
	"math/rand"
	randv2 "math/rand/v2"
)

// Sampler provides uniform random numbers for stochastic sampling.
// Seeding and determinism are the caller's responsibility.
type Sampler interface {
	// Get1D returns a uniform value in [0, 1)
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// StreamSampler produces independent random streams keyed by an index.
// Rendering keys each stream by (pixel, sample) so the jitter of a sample
// does not depend on which worker draws it.
type StreamSampler struct {
	seed uint64
	pcg  randv2.PCG
}

// NewStreamSampler creates a sampler positioned at stream 0
func NewStreamSampler(seed int64) *StreamSampler {
	s := &StreamSampler{seed: uint64(seed)}
	s.Reset(0)
	return s
}

// Reset restarts the sampler at the beginning of the given stream
func (s *StreamSampler) Reset(stream uint64) {
	s.pcg.Seed(s.seed, stream)
}

// Get1D returns the next value of the current stream in [0, 1)
func (s *StreamSampler) Get1D() float64 {
	return float64(s.pcg.Uint64()>>11) / (1 << 53)
}
