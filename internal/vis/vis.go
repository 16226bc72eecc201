// Package vis defines the contract between the simulation core and the
// rendering collaborator. The core never owns or inspects a visual: it
// holds opaque handles and reports spawn, despawn and shrink effects.
package vis

import (
	"sync/atomic"

	"ca3d/internal/core"
)

// Handle is an opaque, non-owning reference to an externally-owned
// visual representation. Zero is never a valid handle.
type Handle uint64

// Vec3 is a position in world space.
type Vec3 struct {
	X, Y, Z float64
}

// FieldUnit is the world-space size of one lattice cell. A 64x64x64
// lattice spans a 10x10x10 world cube, centered on the origin.
const FieldUnit = 0.15625

const halfUnit = FieldUnit / 2

// WorldPos converts lattice coordinates to the centered world position
// of the cell.
func WorldPos(x, y, z int, d core.Dims) Vec3 {
	halfX := float64(d.X) * FieldUnit / 2
	halfY := float64(d.Y) * FieldUnit / 2
	halfZ := float64(d.Z) * FieldUnit / 2
	return Vec3{
		X: float64(x)*FieldUnit - halfX + halfUnit,
		Y: float64(y)*FieldUnit - halfY + halfUnit,
		Z: float64(z)*FieldUnit - halfZ + halfUnit,
	}
}

// Effects is implemented by the rendering collaborator.
//
// AllocateVisual is called during parallel evaluation and must be safe
// for concurrent use; it only reserves the handle, and the collaborator
// may defer the actual visual creation. DespawnVisual and ShrinkVisual
// are always invoked after the lattice has committed the generation the
// effect belongs to, so visuals never run ahead of simulation state.
type Effects interface {
	AllocateVisual(pos Vec3) Handle
	DespawnVisual(h Handle)
	ShrinkVisual(h Handle, factor float64)
}

// Recorder is an Effects implementation that only counts calls. It backs
// headless runs and tests.
type Recorder struct {
	next      atomic.Uint64
	Despawned atomic.Uint64
	Shrunk    atomic.Uint64
}

// AllocateVisual reserves the next handle.
func (r *Recorder) AllocateVisual(Vec3) Handle {
	return Handle(r.next.Add(1))
}

// DespawnVisual counts a despawn effect.
func (r *Recorder) DespawnVisual(Handle) { r.Despawned.Add(1) }

// ShrinkVisual counts a shrink effect.
func (r *Recorder) ShrinkVisual(Handle, float64) { r.Shrunk.Add(1) }

// Allocated reports how many handles have been reserved.
func (r *Recorder) Allocated() uint64 { return r.next.Load() }
