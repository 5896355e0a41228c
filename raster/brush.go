package raster

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - Solid: a single color
//   - *LinearGradient: colors along a line
//   - *RadialGradient: colors along concentric circles
//
// Gradient geometry is given in user space and follows the transformation
// matrix that is current when the fill or stroke happens, as on an HTML
// canvas.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the non-premultiplied color at user-space (x, y).
	ColorAt(x, y float64) color.NRGBA64
}

// Solid is a single-color brush.
type Solid struct {
	Color color.Color
}

func (Solid) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b Solid) ColorAt(_, _ float64) color.NRGBA64 {
	if b.Color == nil {
		return color.NRGBA64{}
	}
	return color.NRGBA64Model.Convert(b.Color).(color.NRGBA64)
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  color.Color
}

// stops is the sorted stop list shared by the gradient brushes.
type stops []ColorStop

func (s *stops) add(offset float64, c color.Color) {
	*s = append(*s, ColorStop{Offset: clamp01(offset), Color: c})
	// Stable keeps insertion order for equal offsets, which makes a hard
	// color edge.
	sort.SliceStable(*s, func(i, j int) bool { return (*s)[i].Offset < (*s)[j].Offset })
}

// at returns the interpolated color at t; t is padded to [0, 1].
func (s stops) at(t float64) color.NRGBA64 {
	switch len(s) {
	case 0:
		return color.NRGBA64{}
	case 1:
		return toNRGBA64(s[0].Color)
	}
	t = clamp01(t)
	if math.IsNaN(t) || t <= s[0].Offset {
		return toNRGBA64(s[0].Color)
	}
	last := s[len(s)-1]
	if t >= last.Offset {
		return toNRGBA64(last.Color)
	}
	for i := 1; i < len(s); i++ {
		if t > s[i].Offset {
			continue
		}
		lo, hi := s[i-1], s[i]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return toNRGBA64(hi.Color)
		}
		return lerpNRGBA64(toNRGBA64(lo.Color), toNRGBA64(hi.Color), (t-lo.Offset)/span)
	}
	return toNRGBA64(last.Color)
}

// LinearGradient paints colors along the line from (X0, Y0) to (X1, Y1),
// padding with the end colors beyond it.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a color stop at the specified offset, clamped to [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) AddColorStop(offset float64, c color.Color) *LinearGradient {
	(*stops)(&g.Stops).add(offset, c)
	return g
}

func (*LinearGradient) brushMarker() {}

// ColorAt implements Brush.
func (g *LinearGradient) ColorAt(x, y float64) color.NRGBA64 {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		// A zero-length canvas gradient paints nothing.
		return color.NRGBA64{}
	}
	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq
	return stops(g.Stops).at(t)
}

// RadialGradient paints colors between two concentric circles centered on
// (CX, CY): offset 0 sits on radius R0 and offset 1 on radius R1.
type RadialGradient struct {
	CX, CY float64
	R0, R1 float64
	Stops  []ColorStop
}

// NewRadialGradient creates a radial gradient centered on (cx, cy).
func NewRadialGradient(cx, cy, r0, r1 float64) *RadialGradient {
	return &RadialGradient{CX: cx, CY: cy, R0: r0, R1: r1}
}

// AddColorStop adds a color stop at the specified offset, clamped to [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradient) AddColorStop(offset float64, c color.Color) *RadialGradient {
	(*stops)(&g.Stops).add(offset, c)
	return g
}

func (*RadialGradient) brushMarker() {}

// ColorAt implements Brush.
func (g *RadialGradient) ColorAt(x, y float64) color.NRGBA64 {
	span := g.R1 - g.R0
	if span == 0 {
		return color.NRGBA64{}
	}
	d := math.Hypot(x-g.CX, y-g.CY)
	return stops(g.Stops).at((d - g.R0) / span)
}

// brushImage exposes a brush as an infinite image in device space so the
// vector rasterizer can use it as its source. Each device pixel center is
// mapped back to user space before sampling.
type brushImage struct {
	brush Brush
	inv   Matrix
}

func (b *brushImage) ColorModel() color.Model { return color.NRGBA64Model }

func (b *brushImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (b *brushImage) At(x, y int) color.Color {
	ux, uy := b.inv.Apply(float64(x)+0.5, float64(y)+0.5)
	return b.brush.ColorAt(ux, uy)
}

// brushSource returns the rasterizer source for brush under the device
// transform m. Solid colors use image.Uniform, which the rasterizer
// composites on a fast path.
func brushSource(brush Brush, m Matrix) (image.Image, bool) {
	if s, ok := brush.(Solid); ok {
		if isTransparent(s.Color) {
			return nil, false
		}
		return image.NewUniform(s.Color), true
	}
	inv, ok := m.Invert()
	if !ok {
		return nil, false
	}
	return &brushImage{brush: brush, inv: inv}, true
}

func toNRGBA64(c color.Color) color.NRGBA64 {
	if c == nil {
		return color.NRGBA64{}
	}
	return color.NRGBA64Model.Convert(c).(color.NRGBA64)
}

func lerpNRGBA64(a, b color.NRGBA64, t float64) color.NRGBA64 {
	mix := func(x, y uint16) uint16 {
		return uint16(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA64{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
