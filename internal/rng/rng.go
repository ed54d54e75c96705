package rng

import (
	"math/rand/v2"
	"strconv"
)

// #region source

// Source produces floats in [0, 1). It is the only entropy interface the
// selection engine knows about; callers inject either a seeded Stream or
// TimeSource.
type Source func() float64

// #endregion source

// #region stream

// mulberry32 increment; one odd step per draw.
const increment uint32 = 0x6D2B79F5

// fallback state when a seed hashes to exactly zero, which would otherwise
// produce a stream stuck near zero.
const zeroSeedReplacement uint32 = 0x9E3779B9

// Stream is a mulberry32 generator: 32 bits of state, one scalar, and a
// byte-identical sequence for the same seed on every platform.
type Stream struct {
	state uint32
}

// New creates a Stream from a 32-bit seed.
func New(seed uint32) *Stream {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	return &Stream{state: seed}
}

// NewFromInt creates a Stream from an integer seed, truncated to 32 bits.
func NewFromInt(seed int64) *Stream {
	return New(uint32(uint64(seed)))
}

// NewFromString creates a Stream by folding the seed text into 32 bits with
// a multiplicative hash. Numeric strings are parsed as integer seeds so
// "42" and seed 42 agree.
func NewFromString(seed string) *Stream {
	if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return NewFromInt(n)
	}
	return New(HashSeed(seed))
}

// HashSeed folds a textual seed character-by-character into a 32-bit state.
func HashSeed(s string) uint32 {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return h
}

// Float64 advances the state and returns the next value in [0, 1).
func (s *Stream) Float64() float64 {
	s.state += increment
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// Source adapts the stream to the engine's Source type.
func (s *Stream) Source() Source {
	return s.Float64
}

// #endregion stream

// #region time-source

// TimeSource returns a non-deterministic Source for callers that did not
// supply a seed.
func TimeSource() Source {
	return rand.Float64
}

// #endregion time-source
