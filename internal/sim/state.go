// Package sim orchestrates the automaton: generation stepping, seeding,
// and the global run state shared between them.
package sim

import (
	"math"
	"runtime"

	"ca3d/internal/core"
)

// AbsoluteCount converts a density fraction into an absolute cell count
// for a cubic lattice of the given edge length. The fraction saturates
// at 0 and 1.
func AbsoluteCount(edge int, density float64) int {
	return int(math.Round(float64(edge*edge*edge) * math.Min(math.Max(density, 0), 1)))
}

// RelDensity reports the fraction of the lattice the given count fills.
func RelDensity(edge int, count int) float64 {
	return float64(count) / float64(edge*edge*edge)
}

// Static holds configuration derived once at startup and never mutated:
// lattice dimensions, the absolute population thresholds driving growth
// hysteresis, and buffer-sizing hints for the parallel phases.
type Static struct {
	dims core.Dims

	minimum int
	maximum int

	maxAmount    int
	workers      int
	maxPerWorker int
}

// NewStatic derives the static configuration from the dimensions and the
// min/max population fractions.
func NewStatic(d core.Dims, minFrac, maxFrac float64) *Static {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	return &Static{
		dims:         d,
		minimum:      AbsoluteCount(d.X, minFrac),
		maximum:      AbsoluteCount(d.X, maxFrac),
		maxAmount:    d.Volume(),
		workers:      workers,
		maxPerWorker: d.Volume() / workers,
	}
}

// Dims returns the lattice dimensions.
func (s *Static) Dims() core.Dims { return s.dims }

// Minimum returns the population count below which growth re-enables.
func (s *Static) Minimum() int { return s.minimum }

// Maximum returns the population count above which growth disables.
func (s *Static) Maximum() int { return s.maximum }

// Workers returns the parallelism used for partitioned phases.
func (s *Static) Workers() int { return s.workers }

// MaxPerWorker returns the preallocation hint for per-worker buffers.
func (s *Static) MaxPerWorker() int { return s.maxPerWorker }

// Dynamic holds the mutable run counters. It is created once at startup,
// mutated on every generation and seed event, and never reset. Its
// methods are not synchronized: the stepper and seeder touch it only
// from their single-threaded phases.
type Dynamic struct {
	seed       uint64
	population int
	growth     bool
	generation uint64
}

// NewDynamic creates the run state with growth enabled and an empty
// population.
func NewDynamic(seed uint64) *Dynamic {
	return &Dynamic{seed: seed, growth: true}
}

// Seed returns the current RNG seed.
func (d *Dynamic) Seed() uint64 { return d.seed }

// SetSeed replaces the RNG seed.
func (d *Dynamic) SetSeed(seed uint64) { d.seed = seed }

// Population returns the accumulated net cell count.
func (d *Dynamic) Population() int { return d.population }

// Add applies a net population delta.
func (d *Dynamic) Add(n int) { d.population += n }

// Growth reports whether spawning is currently enabled.
func (d *Dynamic) Growth() bool { return d.growth }

// SetGrowth enables spawning.
func (d *Dynamic) SetGrowth() { d.growth = true }

// UnsetGrowth disables spawning.
func (d *Dynamic) UnsetGrowth() { d.growth = false }

// Generation returns the number of completed generations.
func (d *Dynamic) Generation() uint64 { return d.generation }

// AdvanceGeneration increments the generation counter.
func (d *Dynamic) AdvanceGeneration() { d.generation++ }
