package render

import (
	"ca3d/internal/lattice"
)

// fillSliceRGBA converts one z slice of the lattice into RGBA pixels.
// Occupied cells are shaded by the intensity function (clamped to [0, 1]);
// empty cells are opaque black.
func fillSliceRGBA(buf []byte, lat *lattice.Lattice, z int, intensity func(*lattice.Cell) float64) {
	d := lat.Dims()
	for y := 0; y < d.Y; y++ {
		for x := 0; x < d.X; x++ {
			base := (y*d.X + x) * 4
			c := lat.At(x, y, z)
			if c == nil {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0xff
				continue
			}
			v := intensity(c)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			g := uint8(v * 0xff)
			buf[base+0] = g
			buf[base+1] = g
			buf[base+2] = g
			buf[base+3] = 0xff
		}
	}
}
