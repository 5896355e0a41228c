package raster

import (
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/dyncanvas/geom"
)

// ErrNonFinitePath is returned by fill and stroke operations when the
// current path holds a NaN or infinite coordinate.
var ErrNonFinitePath = errors.New("raster: path has non-finite coordinates")

// ellipseKappa is the control point distance, as a fraction of the radius,
// that best approximates a quarter circle with one cubic.
const ellipseKappa = 0.5522847498307936

// state is the part of a Context saved by Push and restored by Pop.
type state struct {
	matrix      Matrix
	fill        Brush
	stroke      Brush
	strokeStyle strokeStyle
}

// Context is an immediate-mode drawing context over a Surface.
// It maintains a current path, paint state, and a transformation stack, in
// the manner of an HTML canvas 2D context: coordinates are transformed when
// they are added to the path, and brushes are interpreted under the
// transformation current at fill or stroke time.
//
// A Context is not safe for concurrent use.
type Context struct {
	surface *Surface
	path    Path
	state   state
	stack   []state

	interp draw.Interpolator
	raster *vector.Rasterizer
}

// NewContext creates a new drawing context with the given dimensions.
//
//	dc := raster.NewContext(800, 600)
//	dc.SetFillColor(color.NRGBA{R: 255, A: 255})
//	dc.Rectangle(10, 10, 100, 50)
//	_ = dc.Fill()
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := options.surface
	if surface == nil {
		surface = NewSurface(width, height)
	}

	return &Context{
		surface: surface,
		state:   defaultState(),
		stack:   make([]state, 0, 8),
		interp:  options.interpolator,
	}
}

func defaultState() state {
	return state{
		matrix: Identity(),
		fill:   Solid{Color: color.Black},
		stroke: Solid{Color: color.Black},
		strokeStyle: strokeStyle{
			width:      1,
			cap:        LineCapButt,
			join:       LineJoinMiter,
			miterLimit: DefaultMiterLimit,
		},
	}
}

// Surface returns the surface the context draws into.
func (c *Context) Surface() *Surface {
	return c.surface
}

// Width returns the width of the surface.
func (c *Context) Width() int {
	return c.surface.Width()
}

// Height returns the height of the surface.
func (c *Context) Height() int {
	return c.surface.Height()
}

// Resize resizes the underlying surface, discarding its pixels. The path and
// the paint state are kept.
func (c *Context) Resize(width, height int) {
	c.surface.Resize(width, height)
}

// Clear makes the whole surface transparent, ignoring the transformation.
func (c *Context) Clear() {
	c.surface.Clear()
}

// ClearRect makes the rectangle (x, y, w, h), in user space, transparent.
// The current path is not affected.
func (c *Context) ClearRect(x, y, w, h float64) {
	if c.surface.Empty() {
		return
	}
	if c.state.matrix.IsIntegerTranslation() && isWhole(x, y, w, h) {
		x0, y0 := c.state.matrix.Apply(x, y)
		r := image.Rect(int(x0), int(y0), int(x0+w), int(y0+h))
		c.surface.ClearRect(r.Canon())
		return
	}
	var p Path
	c.rectPath(&p, x, y, w, h)
	z := c.rasterizer()
	p.rasterize(z)
	b := c.surface.Bounds()
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	// Src through the coverage mask scales each pixel by 1-coverage and
	// leaves uncovered pixels alone.
	draw.DrawMask(c.surface.img, b, image.Transparent, image.Point{}, mask, b.Min, draw.Src)
}

// Push saves the current state: transformation, brushes and line style.
func (c *Context) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the last saved state. Pop without a matching Push does
// nothing.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Identity resets the transformation matrix to identity.
func (c *Context) Identity() {
	c.state.matrix = Identity()
}

// SetTransform replaces the current transformation matrix.
func (c *Context) SetTransform(m Matrix) {
	c.state.matrix = m
}

// Transform returns the current transformation matrix.
func (c *Context) Transform() Matrix {
	return c.state.matrix
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Translate(x, y))
}

// Rotate applies a rotation (angle in radians). Positive angles turn
// clockwise on screen.
func (c *Context) Rotate(angle float64) {
	c.state.matrix = c.state.matrix.Multiply(Rotate(angle))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Scale(x, y))
}

// SetFillBrush sets the brush used for fill operations.
// A nil brush fills with transparent, which draws nothing.
func (c *Context) SetFillBrush(b Brush) {
	if b == nil {
		b = Solid{Color: Transparent}
	}
	c.state.fill = b
}

// SetFillColor sets a solid fill color.
func (c *Context) SetFillColor(col color.Color) {
	c.state.fill = Solid{Color: col}
}

// FillBrush returns the current fill brush.
func (c *Context) FillBrush() Brush {
	return c.state.fill
}

// SetStrokeBrush sets the brush used for stroke operations.
// A nil brush strokes with transparent, which draws nothing.
func (c *Context) SetStrokeBrush(b Brush) {
	if b == nil {
		b = Solid{Color: Transparent}
	}
	c.state.stroke = b
}

// SetStrokeColor sets a solid stroke color.
func (c *Context) SetStrokeColor(col color.Color) {
	c.state.stroke = Solid{Color: col}
}

// StrokeBrush returns the current stroke brush.
func (c *Context) StrokeBrush() Brush {
	return c.state.stroke
}

// SetLineWidth sets the line width for stroking, in user space.
// Zero, negative and non-finite widths are ignored.
func (c *Context) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) {
		c.state.strokeStyle.width = width
	}
}

// LineWidth returns the current line width.
func (c *Context) LineWidth() float64 {
	return c.state.strokeStyle.width
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.state.strokeStyle.cap = lineCap
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.state.strokeStyle.join = join
}

// SetMiterLimit sets the miter limit for line joins. Values below 1 are
// ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if limit >= 1 {
		c.state.strokeStyle.miterLimit = limit
	}
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(c.device(x, y))
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(c.device(x, y))
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	p0, ok := c.path.CurrentPoint()
	if !ok {
		p0 = c.device(cx, cy)
	}
	q := c.device(cx, cy)
	p := c.device(x, y)
	c1 := geom.Lerp(p0, q, 2.0/3)
	c2 := geom.Lerp(p, q, 2.0/3)
	if !ok {
		c.path.MoveTo(p0)
	}
	c.path.CubicTo(c1, c2, p)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c.device(c1x, c1y), c.device(c2x, c2y), c.device(x, y))
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Reset()
}

// Rectangle adds a closed rectangle subpath.
func (c *Context) Rectangle(x, y, w, h float64) {
	c.rectPath(&c.path, x, y, w, h)
}

// Ellipse adds a closed ellipse subpath centered on (cx, cy) built from
// four cubic Bezier curves. Negative radii add nothing.
func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	if rx < 0 || ry < 0 {
		return
	}
	kx := rx * ellipseKappa
	ky := ry * ellipseKappa
	c.MoveTo(cx+rx, cy)
	c.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.ClosePath()
}

// Circle adds a closed circle subpath.
func (c *Context) Circle(cx, cy, r float64) {
	c.Ellipse(cx, cy, r, r)
}

// Fill fills the current path with the fill brush and clears it.
// Returns an error if the path cannot be rasterized.
func (c *Context) Fill() error {
	err := c.FillPreserve()
	c.path.Reset()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	return c.fillPath(&c.path, c.state.fill)
}

// Stroke strokes the current path with the stroke brush and clears it.
// Returns an error if the path cannot be rasterized.
func (c *Context) Stroke() error {
	err := c.StrokePreserve()
	c.path.Reset()
	return err
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	return c.strokePath(&c.path, c.state.stroke)
}

// FillRect fills a rectangle without touching the current path.
func (c *Context) FillRect(x, y, w, h float64) error {
	var p Path
	c.rectPath(&p, x, y, w, h)
	return c.fillPath(&p, c.state.fill)
}

// StrokeRect strokes a rectangle without touching the current path.
func (c *Context) StrokeRect(x, y, w, h float64) error {
	var p Path
	c.rectPath(&p, x, y, w, h)
	return c.strokePath(&p, c.state.stroke)
}

func (c *Context) fillPath(p *Path, brush Brush) error {
	if !p.finite() {
		return ErrNonFinitePath
	}
	if c.surface.Empty() || p.Empty() {
		return nil
	}
	src, ok := brushSource(brush, c.state.matrix)
	if !ok {
		return nil
	}
	z := c.rasterizer()
	p.rasterize(z)
	z.Draw(c.surface.img, c.surface.Bounds(), src, image.Point{})
	return nil
}

func (c *Context) strokePath(p *Path, brush Brush) error {
	if !p.finite() {
		return ErrNonFinitePath
	}
	if c.surface.Empty() || p.Empty() {
		return nil
	}
	src, ok := brushSource(brush, c.state.matrix)
	if !ok {
		return nil
	}
	z := c.rasterizer()
	if !strokePath(z, p, c.state.matrix, c.state.strokeStyle) {
		return nil
	}
	z.Draw(c.surface.img, c.surface.Bounds(), src, image.Point{})
	return nil
}

func (c *Context) rectPath(p *Path, x, y, w, h float64) {
	p.MoveTo(c.device(x, y))
	p.LineTo(c.device(x+w, y))
	p.LineTo(c.device(x+w, y+h))
	p.LineTo(c.device(x, y+h))
	p.Close()
}

func (c *Context) device(x, y float64) geom.Vec {
	return c.state.matrix.TransformPoint(geom.Pt(x, y))
}

// rasterizer returns the shared rasterizer, reset to the surface size.
func (c *Context) rasterizer() *vector.Rasterizer {
	w, h := c.surface.Width(), c.surface.Height()
	if c.raster == nil {
		c.raster = vector.NewRasterizer(w, h)
	} else {
		c.raster.Reset(w, h)
	}
	return c.raster
}

func isWhole(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || v != math.Trunc(v) {
			return false
		}
	}
	return true
}
