package sim

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"ca3d/internal/core"
	"ca3d/internal/lattice"
	"ca3d/internal/rules"
	"ca3d/internal/vis"
)

// fullSeedStride separates the per-plane random streams of a full fill.
const fullSeedStride = 999999999

// reseedDiscard is how many stream outputs are drawn and thrown away
// before committing the next global seed after a full fill, so that
// successive fills are decorrelated.
const reseedDiscard = 64

// Seeder populates the lattice pseudorandomly, either across the whole
// volume or restricted to the centered core region. Seeding only ever
// spawns into empty cells.
type Seeder struct {
	lat     *lattice.Lattice
	rules   rules.Rules
	static  *Static
	dyn     *Dynamic
	effects vis.Effects
}

// NewSeeder wires a seeder to its collaborators.
func NewSeeder(lat *lattice.Lattice, r rules.Rules, st *Static, dyn *Dynamic, fx vis.Effects) *Seeder {
	return &Seeder{lat: lat, rules: r, static: st, dyn: dyn, effects: fx}
}

// SeedFull fills empty cells across the whole lattice with the given
// probability. Each x plane draws from its own stream seeded from the
// global seed plus the plane index times a fixed stride, which makes the
// result a function of the seed alone, not of worker scheduling.
// Afterwards the global seed advances through a discard run so that the
// next fill is decorrelated from this one. Returns the number of cells
// spawned.
func (s *Seeder) SeedFull(density float64) int {
	d := s.lat.Dims()
	workers := s.static.Workers()
	if workers > d.X {
		workers = d.X
	}
	perWorker := (d.X + workers - 1) / workers
	seed := s.dyn.Seed()

	var (
		eg      errgroup.Group
		mu      sync.Mutex
		changes = make([]lattice.Change, 0, d.Volume())
		count   int
	)
	for w := 0; w < workers; w++ {
		startX := w * perWorker
		endX := min(startX+perWorker, d.X)
		if startX >= d.X {
			break
		}
		eg.Go(func() error {
			local := make([]lattice.Change, 0, s.static.MaxPerWorker())
			for x := startX; x < endX; x++ {
				stream := core.NewStream(seed + uint64(x)*fullSeedStride)
				for y := 0; y < d.Y; y++ {
					for z := 0; z < d.Z; z++ {
						// The draw happens before the occupancy check so the
						// stream consumption per plane is fixed.
						if stream.Chance(density) && s.lat.At(x, y, z) == nil {
							h := s.effects.AllocateVisual(vis.WorldPos(x, y, z, d))
							local = append(local, lattice.Spawn(x, y, z, h, s.rules.ExtraLife))
						}
					}
				}
			}
			mu.Lock()
			changes = append(changes, local...)
			count += len(local)
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	s.lat.Apply(changes)
	s.dyn.Add(count)

	stream := core.NewStream(s.dyn.Seed())
	for i := 0; i < reseedDiscard; i++ {
		stream.Uint64()
	}
	s.dyn.SetSeed(stream.Uint64())
	return count
}

// SeedCore fills empty cells inside the centered sub-cuboid selected by
// the size divisor, drawing from a single sequential stream seeded from
// the current global seed. The seed advances to the stream's next output
// when the fill completes. Returns the number of cells spawned.
func (s *Seeder) SeedCore(density float64, fraction int) int {
	d := s.lat.Dims()
	startX, endX := d.CoreRangeX(fraction)
	startY, endY := d.CoreRangeY(fraction)
	startZ, endZ := d.CoreRangeZ(fraction)

	stream := core.NewStream(s.dyn.Seed())
	changes := make([]lattice.Change, 0, (endX-startX)*(endY-startY)*(endZ-startZ))
	for x := startX; x < endX; x++ {
		for y := startY; y < endY; y++ {
			for z := startZ; z < endZ; z++ {
				if stream.Chance(density) && s.lat.At(x, y, z) == nil {
					h := s.effects.AllocateVisual(vis.WorldPos(x, y, z, d))
					changes = append(changes, lattice.Spawn(x, y, z, h, s.rules.ExtraLife))
				}
			}
		}
	}

	s.lat.Apply(changes)
	s.dyn.Add(len(changes))
	s.dyn.SetSeed(stream.Uint64())
	return len(changes)
}
