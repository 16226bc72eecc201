// Package lattice stores the 3D toroidal cell grid and the change sets
// that mutate it between generations.
package lattice

import (
	"ca3d/internal/core"
	"ca3d/internal/rules"
	"ca3d/internal/vis"
)

// Cell is the state of one occupied lattice position. Visual is an opaque
// handle owned by the rendering collaborator; Life is the number of
// despawn considerations the cell still survives before it is cleared.
type Cell struct {
	Visual vis.Handle
	Life   int
}

// Change is one pending, coordinate-addressed mutation. A nil Cell clears
// the coordinate, a non-nil Cell replaces whatever occupies it.
type Change struct {
	X, Y, Z int
	Cell    *Cell
}

// Spawn builds a change placing a fresh cell.
func Spawn(x, y, z int, h vis.Handle, life int) Change {
	return Change{X: x, Y: y, Z: z, Cell: &Cell{Visual: h, Life: life}}
}

// Clear builds a change emptying a coordinate.
func Clear(x, y, z int) Change {
	return Change{X: x, Y: y, Z: z}
}

// Age builds a change reducing an occupied cell's remaining life by one,
// keeping its visual handle.
func Age(x, y, z int, prev Cell) Change {
	return Change{X: x, Y: y, Z: z, Cell: &Cell{Visual: prev.Visual, Life: prev.Life - 1}}
}

// Lattice is a dense store of optional cells over cubic dimensions. The
// dimensions are fixed for the lattice's lifetime. Coordinates handed to
// At and Set must already be in range; only neighbor counting wraps.
type Lattice struct {
	dims  core.Dims
	cells []*Cell
}

// New allocates an all-empty lattice for the given dimensions.
func New(d core.Dims) *Lattice {
	return &Lattice{dims: d, cells: make([]*Cell, d.Volume())}
}

// Dims returns the lattice dimensions.
func (l *Lattice) Dims() core.Dims { return l.dims }

func (l *Lattice) index(x, y, z int) int {
	return (x*l.dims.Y+y)*l.dims.Z + z
}

// At returns the cell at the given in-range coordinate, or nil if empty.
func (l *Lattice) At(x, y, z int) *Cell {
	return l.cells[l.index(x, y, z)]
}

// Set replaces the cell at the given in-range coordinate. A nil cell
// empties it.
func (l *Lattice) Set(x, y, z int, c *Cell) {
	l.cells[l.index(x, y, z)] = c
}

// Wrap maps a possibly out-of-range coordinate onto the axis of the given
// length using the Euclidean remainder, so -1 becomes length-1 and length
// becomes 0. This is what makes the lattice toroidal.
func Wrap(v, length int) int {
	return (v%length + length) % length
}

// occupiedWrapped reports occupancy at a coordinate after wrapping each
// axis independently.
func (l *Lattice) occupiedWrapped(x, y, z int) bool {
	return l.cells[l.index(Wrap(x, l.dims.X), Wrap(y, l.dims.Y), Wrap(z, l.dims.Z))] != nil
}

// CountNeighbors counts the occupied cells adjacent to (x, y, z) under
// the given neighborhood, wrapping around the lattice boundary.
func (l *Lattice) CountNeighbors(x, y, z int, n rules.Neighborhood) int {
	count := 0
	if n == rules.VonNeumann {
		for _, off := range vonNeumannOffsets {
			if l.occupiedWrapped(x+off[0], y+off[1], z+off[2]) {
				count++
			}
		}
		return count
	}
	for _, off := range mooreOffsets {
		if l.occupiedWrapped(x+off[0], y+off[1], z+off[2]) {
			count++
		}
	}
	return count
}

// Apply commits every change in the batch. Each coordinate appears at
// most once per generation, so application order is irrelevant.
func (l *Lattice) Apply(changes []Change) {
	for _, ch := range changes {
		l.cells[l.index(ch.X, ch.Y, ch.Z)] = ch.Cell
	}
}

// Population counts the occupied cells by scanning the store.
func (l *Lattice) Population() int {
	count := 0
	for _, c := range l.cells {
		if c != nil {
			count++
		}
	}
	return count
}
