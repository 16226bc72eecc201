//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ca3d/internal/lattice"
)

// SlicePainter draws one z slice of a lattice into a reusable RGBA image.
type SlicePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewSlicePainter allocates a painter for slices of w*h cells.
func NewSlicePainter(w, h int) *SlicePainter {
	sp := &SlicePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	sp.img = ebiten.NewImage(w, h)
	return sp
}

// Blit renders slice z of the lattice, shading each occupied cell by the
// intensity function.
func (sp *SlicePainter) Blit(dst *ebiten.Image, lat *lattice.Lattice, z, scale int, intensity func(*lattice.Cell) float64) {
	d := lat.Dims()
	if d.X != sp.w || d.Y != sp.h {
		return
	}
	fillSliceRGBA(sp.buf, lat, z, intensity)
	sp.img.WritePixels(sp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sp.img, op)
}

// Size returns the dimensions of the underlying image.
func (sp *SlicePainter) Size() (int, int) { return sp.w, sp.h }
