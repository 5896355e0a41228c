package shape

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/dyncanvas/geom"
	"github.com/gogpu/dyncanvas/raster"
)

// Fill is how a shape's interior is painted: Color or *Gradient.
// A nil Fill paints nothing.
type Fill interface {
	isFill()
}

// Color is a solid fill.
type Color struct {
	color.Color
}

func (Color) isFill() {}

// GradientType selects the gradient geometry.
type GradientType int

const (
	// GradientLinear runs along Gradient.Angle through the shape center.
	GradientLinear GradientType = iota
	// GradientRadial spreads from the shape center.
	GradientRadial
)

// String returns "linear" or "radial".
func (t GradientType) String() string {
	switch t {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	}
	return fmt.Sprintf("GradientType(%d)", int(t))
}

// ParseGradientType parses "linear" or "radial".
func ParseGradientType(s string) (GradientType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return GradientLinear, nil
	case "radial":
		return GradientRadial, nil
	}
	return 0, fmt.Errorf("shape: unknown gradient type %q", s)
}

// Gradient is a gradient fill laid out over the shape's bounding box.
//
// A linear gradient runs at Angle degrees through the visual center of the
// box and spans the larger of width and height. A radial gradient is
// centered on the same point, from radius 0 to half the larger side.
//
// Colors are spread evenly over [0, 1]; a single color sits at offset 0 and
// fills everything. When Stops is not empty it is used instead of Colors.
type Gradient struct {
	Type   GradientType
	Colors []color.Color
	Stops  []raster.ColorStop
	Angle  float64
}

func (*Gradient) isFill() {}

// stops returns the color stops of the gradient in offset order.
func (g *Gradient) stops() []raster.ColorStop {
	if len(g.Stops) > 0 {
		return g.Stops
	}
	out := make([]raster.ColorStop, len(g.Colors))
	for i, c := range g.Colors {
		off := 0.0
		if len(g.Colors) > 1 {
			off = float64(i) / float64(len(g.Colors)-1)
		}
		out[i] = raster.ColorStop{Offset: off, Color: c}
	}
	return out
}

// brush builds the raster brush for a box whose visual center is center.
func (g *Gradient) brush(center geom.Vec, width, height float64) raster.Brush {
	span := math.Max(width, height)
	switch g.Type {
	case GradientRadial:
		rg := raster.NewRadialGradient(center.X, center.Y, 0, span/2)
		for _, s := range g.stops() {
			rg.AddColorStop(s.Offset, s.Color)
		}
		return rg
	default:
		sin, cos := math.Sincos(geom.Radians(g.Angle))
		half := span / 2
		lg := raster.NewLinearGradient(
			center.X-half*cos, center.Y-half*sin,
			center.X+half*cos, center.Y+half*sin,
		)
		for _, s := range g.stops() {
			lg.AddColorStop(s.Offset, s.Color)
		}
		return lg
	}
}

// Alignment places a stroke relative to the shape outline.
type Alignment int

const (
	// AlignCenter centers the stroke on the outline.
	AlignCenter Alignment = iota
	// AlignInner keeps the stroke inside the outline.
	AlignInner
	// AlignOuter keeps the stroke outside the outline.
	AlignOuter
)

// String returns "center", "inner" or "outer".
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignInner:
		return "inner"
	case AlignOuter:
		return "outer"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses "center", "inner" or "outer". Empty is center.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return AlignCenter, nil
	case "inner":
		return AlignInner, nil
	case "outer":
		return AlignOuter, nil
	}
	return 0, fmt.Errorf("shape: unknown stroke alignment %q", s)
}

// Stroke describes an outline. A zero Width draws no outline.
type Stroke struct {
	Color     color.Color
	Width     float64
	Alignment Alignment
}

// inset returns how far the stroked outline moves outward from the shape
// edge: half the width for outer, minus half for inner.
func (s Stroke) inset() float64 {
	switch s.Alignment {
	case AlignOuter:
		return s.Width / 2
	case AlignInner:
		return -s.Width / 2
	}
	return 0
}

func (s Stroke) visible() bool {
	return s.Width > 0 && s.Color != nil
}
