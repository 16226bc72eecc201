package core

// Dims describes the extent of a cubic lattice along each axis.
type Dims struct {
	X, Y, Z int
}

// NewCubeClamped returns cubic dimensions with every axis clamped to
// [min, max].
func NewCubeClamped(min, max, edge int) Dims {
	l := edge
	if l < min {
		l = min
	}
	if l > max {
		l = max
	}
	return Dims{X: l, Y: l, Z: l}
}

// Volume returns the number of cells the lattice holds.
func (d Dims) Volume() int { return d.X * d.Y * d.Z }

// CoreRangeX returns the centered sub-range of the x axis sized by the
// given divisor. The divisor must be positive; this is a caller contract.
func (d Dims) CoreRangeX(fract int) (start, end int) { return CoreRange(d.X, fract) }

// CoreRangeY returns the centered sub-range of the y axis.
func (d Dims) CoreRangeY(fract int) (start, end int) { return CoreRange(d.Y, fract) }

// CoreRangeZ returns the centered sub-range of the z axis.
func (d Dims) CoreRangeZ(fract int) (start, end int) { return CoreRange(d.Z, fract) }

// CoreRange computes a centered half-open sub-range of an axis of the
// given extent. The sub-range covers extent/fract + 1 cells.
func CoreRange(extent, fract int) (start, end int) {
	part := extent/fract + 1
	start = extent/2 - part/2
	end = start + part
	return start, end
}
