package core

import "math/rand/v2"

// Stream is a deterministic pseudorandom stream. Two streams created from
// the same seed produce identical draw sequences regardless of what any
// other stream does, which is what makes partitioned seeding reproducible.
type Stream struct {
	r *rand.Rand
}

// NewStream creates a deterministic stream from the provided seed.
func NewStream(seed uint64) *Stream {
	return &Stream{r: rand.New(rand.NewPCG(seed, 0))}
}

// Chance reports true with the given probability. Probabilities outside
// [0, 1] saturate.
func (s *Stream) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// Uint64 returns the stream's next raw output.
func (s *Stream) Uint64() uint64 { return s.r.Uint64() }

// Source exposes the underlying rand.Rand for advanced use.
func (s *Stream) Source() *rand.Rand { return s.r }
