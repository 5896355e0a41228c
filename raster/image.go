package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DrawImage draws img scaled into the rectangle (x, y, w, h) in user space,
// composited over the existing pixels. A zero or negative size draws
// nothing.
func (c *Context) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || c.surface.Empty() || !(w > 0 && h > 0) {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	m := c.state.matrix.
		Multiply(Translate(x, y)).
		Multiply(Scale(w/float64(b.Dx()), h/float64(b.Dy()))).
		Multiply(Translate(float64(-b.Min.X), float64(-b.Min.Y)))
	c.drawTransformed(img, m)
}

// DrawSurface composites src over the surface with its top-left corner at
// (x, y) in user space.
func (c *Context) DrawSurface(src *Surface, x, y float64) {
	if src == nil || src.Empty() || c.surface.Empty() {
		return
	}
	c.drawTransformed(src.img, c.state.matrix.Multiply(Translate(x, y)))
}

// drawTransformed composites img through the source-to-destination
// transform m. Whole-pixel translations are copied without resampling.
func (c *Context) drawTransformed(img image.Image, m Matrix) {
	if _, ok := m.Invert(); !ok {
		return
	}
	dst := c.surface.img
	if m.IsIntegerTranslation() {
		b := img.Bounds()
		off := image.Pt(int(math.Trunc(m.C)), int(math.Trunc(m.F)))
		draw.Draw(dst, b.Add(off), img, b.Min, draw.Over)
		return
	}
	c.interp.Transform(dst, m.Aff3(), img, img.Bounds(), draw.Over, nil)
}
