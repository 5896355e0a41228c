package shape

import (
	"slices"

	"github.com/gogpu/dyncanvas/geom"
	"github.com/gogpu/dyncanvas/raster"
)

// Smoothing computes handles from the neighboring anchors at draw time.
// Only points with both a previous and a next anchor are smoothed; on a
// closed path that is every point.
type Smoothing struct {
	Type geom.SmoothType
	// Factor is the smoothing factor for geometric smoothing and the knot
	// exponent for Catmull-Rom. Zero selects geom.DefaultSmoothFactor.
	Factor float64
}

// HandleConfig describes a handle either by position or in polar form
// relative to its anchor. When both forms are complete the position wins.
// A handle with neither form sits on its anchor.
type HandleConfig struct {
	X, Y          *float64
	Angle, Length *float64
}

// HandleAt returns a handle config at the absolute position (x, y).
func HandleAt(x, y float64) *HandleConfig {
	return &HandleConfig{X: &x, Y: &y}
}

// HandlePolar returns a handle config at angle degrees and length from
// its anchor.
func HandlePolar(angle, length float64) *HandleConfig {
	return &HandleConfig{Angle: &angle, Length: &length}
}

// PointConfig describes one path point.
type PointConfig struct {
	X, Y    float64
	In, Out *HandleConfig
	// Mirror keeps the two handles opposite each other when one is edited.
	Mirror bool
}

// PathConfig configures a Path. Point coordinates are surface coordinates;
// the position in Config is the pivot for rotation and scale.
type PathConfig struct {
	Config
	Points    []PointConfig
	Closed    bool
	Stroke    Stroke
	Smoothing *Smoothing
}

// Path is a sequence of anchors joined by cubic Bezier segments.
type Path struct {
	Base
	points    []*PathPoint
	closed    bool
	stroke    Stroke
	smoothing *Smoothing
}

// NewPath creates a path whose buffer matches ref.
func NewPath(ref Sizer, cfg PathConfig) (*Path, error) {
	b, err := newBase("path", ref, cfg.Config)
	if err != nil {
		return nil, err
	}
	p := &Path{
		Base:   b,
		closed: cfg.Closed,
		stroke: cfg.Stroke,
	}
	if cfg.Smoothing != nil {
		s := *cfg.Smoothing
		p.smoothing = &s
	}
	p.points = p.newPoints(cfg.Points)
	p.draw = p.drawPath
	return p, nil
}

// Points returns the points in order. The slice is a copy; the points are
// live and editing them marks the path dirty.
func (p *Path) Points() []*PathPoint {
	return slices.Clone(p.points)
}

// Point returns the point at index i, or nil when i is out of range.
func (p *Path) Point(i int) *PathPoint {
	if i < 0 || i >= len(p.points) {
		return nil
	}
	return p.points[i]
}

// Len returns the number of points.
func (p *Path) Len() int { return len(p.points) }

// SetPoints replaces all points.
func (p *Path) SetPoints(cfgs []PointConfig) {
	p.detach(p.points)
	p.points = p.newPoints(cfgs)
	p.dirty = true
}

// AppendPoint adds a point at the end and returns it.
func (p *Path) AppendPoint(cfg PointConfig) *PathPoint {
	pt := newPathPoint(p, cfg)
	p.points = append(p.points, pt)
	p.dirty = true
	return pt
}

// InsertPoint adds a point at index i, clamped to [0, Len()], and returns it.
func (p *Path) InsertPoint(i int, cfg PointConfig) *PathPoint {
	i = min(max(i, 0), len(p.points))
	pt := newPathPoint(p, cfg)
	p.points = slices.Insert(p.points, i, pt)
	p.dirty = true
	return pt
}

// RemovePoint removes the point at index i and reports whether it existed.
// The removed point no longer affects the path.
func (p *Path) RemovePoint(i int) bool {
	if i < 0 || i >= len(p.points) {
		return false
	}
	p.detach(p.points[i : i+1])
	p.points = slices.Delete(p.points, i, i+1)
	p.dirty = true
	return true
}

// Closed reports whether the last point connects back to the first.
func (p *Path) Closed() bool { return p.closed }

// SetClosed opens or closes the path.
func (p *Path) SetClosed(v bool) {
	p.closed = v
	p.dirty = true
}

// Stroke returns the outline style. Path strokes are always centered.
func (p *Path) Stroke() Stroke { return p.stroke }

// SetStroke sets the outline style.
func (p *Path) SetStroke(s Stroke) {
	p.stroke = s
	p.dirty = true
}

// Smoothing returns the draw-time smoothing, nil when off.
func (p *Path) Smoothing() *Smoothing {
	if p.smoothing == nil {
		return nil
	}
	s := *p.smoothing
	return &s
}

// SetSmoothing turns draw-time smoothing on, or off with nil.
func (p *Path) SetSmoothing(s *Smoothing) {
	if s == nil {
		p.smoothing = nil
	} else {
		c := *s
		p.smoothing = &c
	}
	p.dirty = true
}

// Smooth computes handles with s once and stores them in the points, so
// they can be edited afterwards. Mirror flags do not apply to these writes.
func (p *Path) Smooth(s Smoothing) {
	for _, h := range p.smoothed(s) {
		pt := p.points[h.index]
		pt.in.place(h.in)
		pt.out.place(h.out)
	}
	p.dirty = true
}

type smoothedHandles struct {
	index   int
	in, out geom.Vec
}

// smoothed returns the smoothed handles of every point that has two
// neighbors.
func (p *Path) smoothed(s Smoothing) []smoothedHandles {
	n := len(p.points)
	if n < 3 && !(p.closed && n >= 2) {
		return nil
	}
	out := make([]smoothedHandles, 0, n)
	for i, pt := range p.points {
		prev, next := i-1, i+1
		if p.closed {
			prev, next = (i+n-1)%n, (i+1)%n
		} else if prev < 0 || next >= n {
			continue
		}
		in, o := geom.SmoothHandles(s.Type, s.Factor, p.points[prev].pos, pt.pos, p.points[next].pos)
		out = append(out, smoothedHandles{index: i, in: in, out: o})
	}
	return out
}

func (p *Path) newPoints(cfgs []PointConfig) []*PathPoint {
	pts := make([]*PathPoint, len(cfgs))
	for i, cfg := range cfgs {
		pts[i] = newPathPoint(p, cfg)
	}
	return pts
}

func (p *Path) detach(pts []*PathPoint) {
	for _, pt := range pts {
		pt.path = nil
	}
}

func (p *Path) drawPath(ctx *raster.Context) error {
	n := len(p.points)
	if n == 0 {
		return nil
	}

	ins := make([]geom.Vec, n)
	outs := make([]geom.Vec, n)
	for i, pt := range p.points {
		ins[i], outs[i] = pt.in.pos, pt.out.pos
	}
	if p.smoothing != nil {
		for _, h := range p.smoothed(*p.smoothing) {
			ins[h.index], outs[h.index] = h.in, h.out
		}
	}

	ctx.ClearPath()
	first := p.points[0].pos
	ctx.MoveTo(first.X, first.Y)
	for i := 1; i < n; i++ {
		c1, c2, to := outs[i-1], ins[i], p.points[i].pos
		ctx.CubicTo(c1.X, c1.Y, c2.X, c2.Y, to.X, to.Y)
	}
	if p.closed {
		c1, c2 := outs[n-1], ins[0]
		ctx.CubicTo(c1.X, c1.Y, c2.X, c2.Y, first.X, first.Y)
		ctx.ClosePath()
	}

	if brush := p.fillBrush(); brush != nil {
		ctx.SetFillBrush(brush)
		if err := ctx.FillPreserve(); err != nil {
			return err
		}
	}
	if p.stroke.visible() {
		ctx.SetStrokeColor(p.stroke.Color)
		ctx.SetLineWidth(p.stroke.Width)
		if err := ctx.StrokePreserve(); err != nil {
			return err
		}
	}
	ctx.ClearPath()
	return nil
}

// PathPoint is an anchor of a Path with its two handles.
type PathPoint struct {
	path   *Path
	pos    geom.Vec
	in     Handle
	out    Handle
	mirror bool
}

func newPathPoint(p *Path, cfg PointConfig) *PathPoint {
	pt := &PathPoint{path: p, pos: geom.Pt(cfg.X, cfg.Y), mirror: cfg.Mirror}
	pt.in = Handle{point: pt, pos: pt.pos}
	pt.out = Handle{point: pt, pos: pt.pos}
	pt.in.configure(cfg.In)
	pt.out.configure(cfg.Out)
	return pt
}

func (pt *PathPoint) touch() {
	if pt.path != nil {
		pt.path.dirty = true
	}
}

// X returns the anchor's horizontal position.
func (pt *PathPoint) X() float64 { return pt.pos.X }

// Y returns the anchor's vertical position.
func (pt *PathPoint) Y() float64 { return pt.pos.Y }

// Position returns the anchor position.
func (pt *PathPoint) Position() geom.Vec { return pt.pos }

// SetX moves the anchor horizontally; both handles move with it.
func (pt *PathPoint) SetX(x float64) { pt.SetPosition(x, pt.pos.Y) }

// SetY moves the anchor vertically; both handles move with it.
func (pt *PathPoint) SetY(y float64) { pt.SetPosition(pt.pos.X, y) }

// SetPosition moves the anchor; both handles move with it, keeping their
// angle and length.
func (pt *PathPoint) SetPosition(x, y float64) {
	d := geom.Pt(x-pt.pos.X, y-pt.pos.Y)
	pt.pos = geom.Pt(x, y)
	pt.in.pos = geom.Pt(pt.in.pos.X+d.X, pt.in.pos.Y+d.Y)
	pt.out.pos = geom.Pt(pt.out.pos.X+d.X, pt.out.pos.Y+d.Y)
	pt.touch()
}

// In returns the handle controlling the segment that arrives at the anchor.
func (pt *PathPoint) In() *Handle { return &pt.in }

// Out returns the handle controlling the segment that leaves the anchor.
func (pt *PathPoint) Out() *Handle { return &pt.out }

// Mirror reports whether handle edits are mirrored.
func (pt *PathPoint) Mirror() bool { return pt.mirror }

// SetMirror turns handle mirroring on or off. Existing handles are not
// moved.
func (pt *PathPoint) SetMirror(v bool) {
	pt.mirror = v
	pt.touch()
}

// Handle is a tangent control point of a PathPoint. Its position and its
// polar form (angle in degrees, length) relative to the anchor are kept in
// step: writing one recomputes the other.
type Handle struct {
	point  *PathPoint
	pos    geom.Vec
	angle  float64
	length float64
}

func (h *Handle) configure(cfg *HandleConfig) {
	switch {
	case cfg == nil:
	case cfg.X != nil && cfg.Y != nil:
		h.setPos(geom.Pt(*cfg.X, *cfg.Y))
	case cfg.Angle != nil && cfg.Length != nil:
		h.setPolar(*cfg.Angle, *cfg.Length)
	}
}

// X returns the handle's horizontal position.
func (h *Handle) X() float64 { return h.pos.X }

// Y returns the handle's vertical position.
func (h *Handle) Y() float64 { return h.pos.Y }

// Position returns the handle position.
func (h *Handle) Position() geom.Vec { return h.pos }

// Angle returns the direction from the anchor in degrees, in [0, 360).
func (h *Handle) Angle() float64 { return h.angle }

// Length returns the distance from the anchor.
func (h *Handle) Length() float64 { return h.length }

// SetX moves the handle horizontally. With mirroring on, the other handle
// moves to the opposite side of the anchor on this axis.
func (h *Handle) SetX(x float64) {
	h.setPos(geom.Pt(x, h.pos.Y))
	if o := h.mirrored(); o != nil {
		a := h.point.pos
		o.setPos(geom.Pt(a.X-(x-a.X), o.pos.Y))
	}
	h.point.touch()
}

// SetY moves the handle vertically. With mirroring on, the other handle
// moves to the opposite side of the anchor on this axis.
func (h *Handle) SetY(y float64) {
	h.setPos(geom.Pt(h.pos.X, y))
	if o := h.mirrored(); o != nil {
		a := h.point.pos
		o.setPos(geom.Pt(o.pos.X, a.Y-(y-a.Y)))
	}
	h.point.touch()
}

// SetPosition moves the handle, mirroring both axes when enabled.
func (h *Handle) SetPosition(x, y float64) {
	h.SetX(x)
	h.SetY(y)
}

// SetAngle turns the handle about its anchor. With mirroring on, the other
// handle turns to the opposite direction and keeps its own length.
func (h *Handle) SetAngle(deg float64) {
	h.setPolar(deg, h.length)
	if o := h.mirrored(); o != nil {
		o.setPolar(deg-180, o.length)
	}
	h.point.touch()
}

// SetLength moves the handle along its direction. The other handle is never
// affected.
func (h *Handle) SetLength(length float64) {
	h.setPolar(h.angle, length)
	h.point.touch()
}

// SetPolar sets angle and length together. Mirroring propagates the angle.
func (h *Handle) SetPolar(deg, length float64) {
	h.setPolar(deg, length)
	if o := h.mirrored(); o != nil {
		o.setPolar(deg-180, o.length)
	}
	h.point.touch()
}

// Reset puts the handle back on its anchor.
func (h *Handle) Reset() {
	h.place(h.point.pos)
	h.point.touch()
}

// mirrored returns the opposite handle when mirroring is on.
func (h *Handle) mirrored() *Handle {
	if !h.point.mirror {
		return nil
	}
	if h == &h.point.in {
		return &h.point.out
	}
	return &h.point.in
}

// place sets the position without mirroring or dirty marking.
func (h *Handle) place(p geom.Vec) {
	h.setPos(p)
}

func (h *Handle) setPos(p geom.Vec) {
	h.pos = p
	h.angle, h.length = geom.Polar(h.point.pos, p)
}

func (h *Handle) setPolar(deg, length float64) {
	h.angle = geom.NormalizeDegrees(deg)
	h.length = length
	h.pos = geom.FromPolar(h.point.pos, h.angle, length)
}
