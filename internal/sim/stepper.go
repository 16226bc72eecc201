package sim

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"ca3d/internal/core"
	"ca3d/internal/lattice"
	"ca3d/internal/rules"
	"ca3d/internal/vis"
)

// ShrinkFactor is the visual scale applied each time a cell ages.
const ShrinkFactor = 0.75

type effectOp uint8

const (
	opDespawn effectOp = iota
	opShrink
)

// pendingEffect defers a despawn or shrink notification until the
// generation it belongs to has been committed to the lattice.
type pendingEffect struct {
	op     effectOp
	handle vis.Handle
}

// Stepper advances the automaton one generation at a time. Evaluation
// runs against the pre-tick lattice as a read-only snapshot; all
// mutation happens single-threaded after every worker has finished.
type Stepper struct {
	lat     *lattice.Lattice
	rules   rules.Rules
	static  *Static
	dyn     *Dynamic
	effects vis.Effects
	timer   *core.StepTimer
}

// NewStepper wires a stepper to its collaborators. The timer may be nil
// when stepping is driven directly through Advance.
func NewStepper(lat *lattice.Lattice, r rules.Rules, st *Static, dyn *Dynamic, fx vis.Effects, timer *core.StepTimer) *Stepper {
	return &Stepper{lat: lat, rules: r, static: st, dyn: dyn, effects: fx, timer: timer}
}

// Tick advances one generation when the step timer fires. While paused,
// or between firings, it is a no-op and every piece of state is left
// untouched.
func (s *Stepper) Tick() bool {
	if s.timer != nil && !s.timer.Fire() {
		return false
	}
	s.Advance()
	return true
}

// Advance runs exactly one generation: parallel evaluation, atomic
// change application, deferred visual effects, then counter bookkeeping.
func (s *Stepper) Advance() {
	changes, pending, net := s.evaluate()
	s.lat.Apply(changes)
	for _, fx := range pending {
		switch fx.op {
		case opDespawn:
			s.effects.DespawnVisual(fx.handle)
		case opShrink:
			s.effects.ShrinkVisual(fx.handle, ShrinkFactor)
		}
	}
	s.dyn.Add(net)
	if s.dyn.Population() > s.static.Maximum() {
		s.dyn.UnsetGrowth()
	} else if s.dyn.Population() < s.static.Minimum() {
		s.dyn.SetGrowth()
	}
	s.dyn.AdvanceGeneration()
}

// evaluate fans the first axis out across the worker pool and collects
// each partition's change list, deferred effects and net spawn balance.
// No worker writes to the lattice; each coordinate is visited exactly
// once across the whole pass, so the merged change list is free of
// conflicts and its order is irrelevant.
func (s *Stepper) evaluate() ([]lattice.Change, []pendingEffect, int) {
	d := s.lat.Dims()
	workers := s.static.Workers()
	if workers > d.X {
		workers = d.X
	}
	perWorker := (d.X + workers - 1) / workers
	growth := s.dyn.Growth()

	var (
		eg      errgroup.Group
		mu      sync.Mutex
		changes = make([]lattice.Change, 0, d.Volume())
		pending = make([]pendingEffect, 0)
		net     int
	)
	for w := 0; w < workers; w++ {
		startX := w * perWorker
		endX := min(startX+perWorker, d.X)
		if startX >= d.X {
			break
		}
		eg.Go(func() error {
			local := make([]lattice.Change, 0, s.static.MaxPerWorker())
			localFx := make([]pendingEffect, 0, s.static.MaxPerWorker())
			spawned, despawned := 0, 0
			for x := startX; x < endX; x++ {
				for y := 0; y < d.Y; y++ {
					for z := 0; z < d.Z; z++ {
						n := s.lat.CountNeighbors(x, y, z, s.rules.Neighborhood)
						if s.rules.CheckDespawn(n) {
							at := s.lat.At(x, y, z)
							if at == nil {
								continue
							}
							if at.Life <= 0 {
								local = append(local, lattice.Clear(x, y, z))
								localFx = append(localFx, pendingEffect{op: opDespawn, handle: at.Visual})
								despawned++
							} else {
								local = append(local, lattice.Age(x, y, z, *at))
								localFx = append(localFx, pendingEffect{op: opShrink, handle: at.Visual})
							}
						} else if growth && s.lat.At(x, y, z) == nil && s.rules.CheckSpawn(n) {
							h := s.effects.AllocateVisual(vis.WorldPos(x, y, z, d))
							local = append(local, lattice.Spawn(x, y, z, h, s.rules.ExtraLife))
							spawned++
						}
					}
				}
			}
			// One lock acquisition per partition keeps contention bounded
			// by the worker count, not the cell count.
			mu.Lock()
			changes = append(changes, local...)
			pending = append(pending, localFx...)
			net += spawned - despawned
			mu.Unlock()
			return nil
		})
	}
	// workers are CPU-bound and never fail
	_ = eg.Wait()
	return changes, pending, net
}
