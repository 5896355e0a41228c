package shape

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/dyncanvas"
	"github.com/gogpu/dyncanvas/geom"
	"github.com/gogpu/dyncanvas/raster"
)

// Sizer reports the size of a reference surface. *dyncanvas.Canvas and
// *raster.Surface both implement it.
type Sizer interface {
	Width() int
	Height() int
}

// Scale is a per-axis scale factor.
type Scale struct {
	X, Y float64
}

// Uniform returns a scale of s on both axes.
func Uniform(s float64) *Scale {
	return &Scale{X: s, Y: s}
}

// Flip mirrors a shape about its position.
type Flip struct {
	Horizontal bool
	Vertical   bool
}

// Config holds the options every shape accepts.
type Config struct {
	X, Y          float64
	Width, Height float64
	// Angle is a clockwise rotation in degrees about (X, Y).
	Angle float64
	// Scale defaults to {1, 1} when nil.
	Scale *Scale
	Flip  Flip
	// Origin is the anchor descriptor, DefaultOrigin when empty.
	Origin string
	Fill   Fill
	// Static shapes render once and then reuse their buffer until an
	// attribute changes.
	Static bool
}

// Shape is implemented by every shape in this package.
type Shape interface {
	dyncanvas.Layer
	dyncanvas.Resizer
	ID() uuid.UUID
	Dirty() bool
	MarkDirty()
	DrawCycle() int
}

// drawFunc draws a shape's geometry into ctx, which is already transformed
// for position, angle and scale.
type drawFunc func(ctx *raster.Context) error

// Base holds the attributes and render pipeline shared by all shapes.
// Concrete shapes embed it and supply the geometry step.
type Base struct {
	kind string
	id   uuid.UUID

	x, y          float64
	width, height float64
	angle         float64
	scale         Scale
	flip          Flip
	origin        string
	originOffset  geom.Vec
	fill          Fill
	static        bool

	dirty     bool
	drawCycle int

	buf *raster.Surface
	ctx *raster.Context

	draw drawFunc
	// prepare runs at the start of every Render, before the cache check.
	prepare func()
}

func newBase(kind string, ref Sizer, cfg Config) (Base, error) {
	b := Base{
		kind:   kind,
		id:     uuid.New(),
		x:      cfg.X,
		y:      cfg.Y,
		width:  cfg.Width,
		height: cfg.Height,
		angle:  cfg.Angle,
		scale:  Scale{X: 1, Y: 1},
		flip:   cfg.Flip,
		origin: cfg.Origin,
		fill:   cfg.Fill,
		static: cfg.Static,
		dirty:  true,
	}
	if cfg.Scale != nil {
		b.scale = *cfg.Scale
	}
	if b.origin == "" {
		b.origin = DefaultOrigin
	}
	off, err := ResolveOrigin(b.origin, b.width, b.height)
	if err != nil {
		return Base{}, err
	}
	b.originOffset = off
	if ref != nil {
		b.buf = raster.NewSurface(ref.Width(), ref.Height())
		b.ctx = raster.NewContext(0, 0, raster.WithSurface(b.buf))
	}
	return b, nil
}

// ID returns the unique id of the shape, used in log records.
func (b *Base) ID() uuid.UUID { return b.id }

// Kind returns the shape kind, such as "rectangle".
func (b *Base) Kind() string { return b.kind }

// LogValue implements slog.LogValuer.
func (b *Base) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", b.kind),
		slog.String("id", b.id.String()),
	)
}

// X returns the horizontal position.
func (b *Base) X() float64 { return b.x }

// SetX sets the horizontal position.
func (b *Base) SetX(x float64) {
	b.x = x
	b.dirty = true
}

// Y returns the vertical position.
func (b *Base) Y() float64 { return b.y }

// SetY sets the vertical position.
func (b *Base) SetY(y float64) {
	b.y = y
	b.dirty = true
}

// Position returns (X, Y).
func (b *Base) Position() geom.Vec { return geom.Pt(b.x, b.y) }

// SetPosition sets both coordinates.
func (b *Base) SetPosition(x, y float64) {
	b.x, b.y = x, y
	b.dirty = true
}

// Width returns the bounding-box width.
func (b *Base) Width() float64 { return b.width }

// SetWidth sets the bounding-box width and re-resolves the origin.
func (b *Base) SetWidth(w float64) {
	b.width = w
	b.resolveOrigin()
	b.dirty = true
}

// Height returns the bounding-box height.
func (b *Base) Height() float64 { return b.height }

// SetHeight sets the bounding-box height and re-resolves the origin.
func (b *Base) SetHeight(h float64) {
	b.height = h
	b.resolveOrigin()
	b.dirty = true
}

// SetSize sets width and height together.
func (b *Base) SetSize(w, h float64) {
	b.width, b.height = w, h
	b.resolveOrigin()
	b.dirty = true
}

// Angle returns the rotation in degrees.
func (b *Base) Angle() float64 { return b.angle }

// SetAngle sets the clockwise rotation in degrees about the position.
func (b *Base) SetAngle(deg float64) {
	b.angle = deg
	b.dirty = true
}

// Scale returns the scale factors.
func (b *Base) Scale() Scale { return b.scale }

// SetScale replaces both scale factors.
func (b *Base) SetScale(s Scale) {
	b.scale = s
	b.dirty = true
}

// SetUniformScale sets both scale factors to s.
func (b *Base) SetUniformScale(s float64) {
	b.scale = Scale{X: s, Y: s}
	b.dirty = true
}

// SetScaleX sets the horizontal scale factor, keeping the vertical one.
func (b *Base) SetScaleX(x float64) {
	b.scale.X = x
	b.dirty = true
}

// SetScaleY sets the vertical scale factor, keeping the horizontal one.
func (b *Base) SetScaleY(y float64) {
	b.scale.Y = y
	b.dirty = true
}

// Flip returns the flip flags.
func (b *Base) Flip() Flip { return b.flip }

// SetFlip replaces both flip flags.
func (b *Base) SetFlip(f Flip) {
	b.flip = f
	b.dirty = true
}

// SetFlipHorizontal mirrors the shape left to right.
func (b *Base) SetFlipHorizontal(v bool) {
	b.flip.Horizontal = v
	b.dirty = true
}

// SetFlipVertical mirrors the shape top to bottom.
func (b *Base) SetFlipVertical(v bool) {
	b.flip.Vertical = v
	b.dirty = true
}

// Origin returns the origin descriptor.
func (b *Base) Origin() string { return b.origin }

// SetOrigin parses and applies a new origin descriptor. On error the
// previous origin stays in force.
func (b *Base) SetOrigin(origin string) error {
	if origin == "" {
		origin = DefaultOrigin
	}
	off, err := ResolveOrigin(origin, b.width, b.height)
	if err != nil {
		return err
	}
	b.origin = origin
	b.originOffset = off
	b.dirty = true
	return nil
}

// OriginOffset returns the resolved anchor offset inside the bounding box.
func (b *Base) OriginOffset() geom.Vec { return b.originOffset }

// Fill returns the fill, nil when the shape is unfilled.
func (b *Base) Fill() Fill { return b.fill }

// SetFill sets the fill. nil removes it.
func (b *Base) SetFill(f Fill) {
	b.fill = f
	b.dirty = true
}

// Static reports whether the shape caches its buffer between changes.
func (b *Base) Static() bool { return b.static }

// SetStatic switches buffer caching on or off.
func (b *Base) SetStatic(v bool) {
	b.static = v
	b.dirty = true
}

// Dirty reports whether an attribute changed since the last render of a
// static shape. Non-static shapes stay dirty.
func (b *Base) Dirty() bool { return b.dirty }

// MarkDirty forces the next Render to redraw.
func (b *Base) MarkDirty() { b.dirty = true }

// DrawCycle returns how many times the shape has been drawn.
func (b *Base) DrawCycle() int { return b.drawCycle }

// Buffer returns the private buffer, nil when the shape was created
// without a reference surface.
func (b *Base) Buffer() *raster.Surface { return b.buf }

// Resize resizes the private buffer to follow the reference surface. A shape
// created without a reference surface gets its buffer here.
func (b *Base) Resize(width, height int) {
	if b.buf == nil {
		b.buf = raster.NewSurface(width, height)
		b.ctx = raster.NewContext(0, 0, raster.WithSurface(b.buf))
	} else {
		b.buf.Resize(width, height)
	}
	b.dirty = true
}

// resolveOrigin recomputes the origin offset for the current size. The
// descriptor was validated when it was set, so errors cannot occur here.
func (b *Base) resolveOrigin() {
	if off, err := ResolveOrigin(b.origin, b.width, b.height); err == nil {
		b.originOffset = off
	}
}

// topLeft returns the top-left corner of the bounding box.
func (b *Base) topLeft() geom.Vec {
	return geom.Pt(b.x-b.originOffset.X, b.y-b.originOffset.Y)
}

// center returns the visual center of the bounding box.
func (b *Base) center() geom.Vec {
	tl := b.topLeft()
	return geom.Pt(tl.X+b.width/2, tl.Y+b.height/2)
}

// fillBrush resolves the fill into a raster brush.
func (b *Base) fillBrush() raster.Brush {
	switch f := b.fill.(type) {
	case Color:
		return raster.Solid{Color: f.Color}
	case *Gradient:
		if f == nil {
			return nil
		}
		return f.brush(b.center(), b.width, b.height)
	}
	return nil
}

// Render draws the shape into its private buffer and returns the buffer.
// A static shape that has not changed since its last render returns the
// buffer untouched.
func (b *Base) Render() (*raster.Surface, error) {
	if b.prepare != nil {
		b.prepare()
	}
	if b.static && !b.dirty && b.drawCycle > 0 {
		return b.buf, nil
	}
	if b.ctx == nil || b.buf == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrSurfaceUnavailable, b.kind, b.id)
	}

	ctx := b.ctx
	ctx.Identity()
	ctx.ClearRect(-1, -1, float64(b.buf.Width()+2), float64(b.buf.Height()+2))
	ctx.ClearPath()
	b.resolveOrigin()

	ctx.Translate(b.x, b.y)
	ctx.Rotate(geom.Radians(b.angle))
	ctx.Translate(-b.x, -b.y)

	sx, sy := b.scale.X, b.scale.Y
	if b.flip.Horizontal {
		sx = -sx
	}
	if b.flip.Vertical {
		sy = -sy
	}
	ctx.Translate(b.x, b.y)
	ctx.Scale(sx, sy)
	ctx.Translate(-b.x, -b.y)

	if b.draw != nil {
		if err := b.draw(ctx); err != nil {
			return nil, fmt.Errorf("shape: draw %s %s: %w", b.kind, b.id, err)
		}
	}

	b.drawCycle++
	if b.static {
		b.dirty = false
	}
	dyncanvas.Logger().Debug("shape: rendered", "shape", b, "cycle", b.drawCycle)
	return b.buf, nil
}
