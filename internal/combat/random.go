package combat

import (
	"math/rand"
	"time"
)

// RandomSource supplies uniformly distributed integers in [low, high).
type RandomSource interface {
	UniformInt(low, high int) int
}

// RandSource is a RandomSource backed by a seeded math/rand generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source with the given seed.
// A seed of 0 means the current time is used.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// UniformInt returns a value in [low, high). It panics if high <= low.
func (s *RandSource) UniformInt(low, high int) int {
	return low + s.rng.Intn(high-low)
}

// SequenceSource replays a fixed list of values, for deterministic matches.
// Values are clamped into the requested range; once exhausted it returns low.
type SequenceSource struct {
	values []int
	next   int
}

// NewSequenceSource creates a source that returns values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// UniformInt returns the next queued value clamped into [low, high).
func (s *SequenceSource) UniformInt(low, high int) int {
	if s.next >= len(s.values) {
		return low
	}
	v := s.values[s.next]
	s.next++
	if v < low {
		return low
	}
	if v >= high {
		return high - 1
	}
	return v
}

// Remaining returns how many queued values have not been used.
func (s *SequenceSource) Remaining() int {
	return len(s.values) - s.next
}

var (
	_ RandomSource = (*RandSource)(nil)
	_ RandomSource = (*SequenceSource)(nil)
)
