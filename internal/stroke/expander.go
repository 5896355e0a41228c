package stroke

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gogpu/dyncanvas/geom"
)

// Cap is the shape of open subpath endpoints.
type Cap int

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound adds a half disc at the endpoint.
	CapRound
	// CapSquare extends the stroke by half the width.
	CapSquare
)

// Join is the shape of the corner between two segments.
type Join int

const (
	// JoinMiter extends the outer edges to a point, falling back to bevel
	// beyond the miter limit.
	JoinMiter Join = iota
	// JoinRound rounds the outer corner.
	JoinRound
	// JoinBevel cuts the outer corner flat.
	JoinBevel
)

// Style holds the line parameters of a stroke.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Verb identifies the kind of an Element.
type Verb uint8

// Element verbs.
const (
	VerbMove Verb = iota
	VerbLine
	VerbCubic
	VerbClose
)

// Element is one path command. Move and line use Pts[0]; a cubic uses
// Pts[0] and Pts[1] as control points and Pts[2] as the end point.
type Element struct {
	Verb Verb
	Pts  [3]geom.Vec
}

// MoveTo returns a move element.
func MoveTo(p geom.Vec) Element { return Element{Verb: VerbMove, Pts: [3]geom.Vec{p}} }

// LineTo returns a line element.
func LineTo(p geom.Vec) Element { return Element{Verb: VerbLine, Pts: [3]geom.Vec{p}} }

// CubicTo returns a cubic element.
func CubicTo(c1, c2, p geom.Vec) Element {
	return Element{Verb: VerbCubic, Pts: [3]geom.Vec{c1, c2, p}}
}

// Close returns a close element.
func Close() Element { return Element{Verb: VerbClose} }

// End returns the point the element ends on. Close has none.
func (e Element) End() geom.Vec {
	if e.Verb == VerbCubic {
		return e.Pts[2]
	}
	return e.Pts[0]
}

// DefaultTolerance is the flattening and join tolerance of a new Expander.
const DefaultTolerance = 0.25

// Expander converts stroked paths to fill paths. An Expander is not safe
// for concurrent use, but it may be reused.
type Expander struct {
	style     Style
	tolerance float64

	forward  builder
	backward builder
	out      builder

	startPt   geom.Vec
	startNorm geom.Vec
	startTan  geom.Vec
	lastPt    geom.Vec
	lastTan   geom.Vec
	lastNorm  geom.Vec

	// joinThresh is the sine below which a corner is treated as straight.
	joinThresh float64
}

// NewExpander returns an Expander for style.
func NewExpander(style Style) *Expander {
	return &Expander{style: style, tolerance: DefaultTolerance}
}

// SetTolerance sets the curve flattening tolerance. Non-positive values are
// ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the fill outline of elements stroked with the expander's
// style. A non-positive width yields nil.
func (e *Expander) Expand(elements []Element) []Element {
	if !(e.style.Width > 0) {
		return nil
	}
	e.reset()
	for _, el := range elements {
		switch el.Verb {
		case VerbMove:
			e.finish()
			e.startPt = el.Pts[0]
			e.lastPt = el.Pts[0]
		case VerbLine:
			if el.Pts[0] != e.lastPt {
				e.segment(el.Pts[0])
			}
		case VerbCubic:
			if el.Pts[0] != e.lastPt || el.Pts[1] != e.lastPt || el.Pts[2] != e.lastPt {
				pts := e.flattenCubic(e.lastPt, el.Pts[0], el.Pts[1], el.Pts[2])
				for _, p := range pts[1:] {
					if r2.Norm2(r2.Sub(p, e.lastPt)) > 1e-10 {
						e.segment(p)
					}
				}
			}
		case VerbClose:
			if e.lastPt != e.startPt {
				e.segment(e.startPt)
			}
			e.finishClosed()
		}
	}
	e.finish()
	return e.out.elems
}

func (e *Expander) reset() {
	e.forward.reset()
	e.backward.reset()
	e.out = builder{}
	e.startPt, e.startNorm, e.startTan = geom.Vec{}, geom.Vec{}, geom.Vec{}
	e.lastPt, e.lastTan, e.lastNorm = geom.Vec{}, geom.Vec{}, geom.Vec{}
	e.joinThresh = 2 * e.tolerance / e.style.Width
}

// segment joins to and extends both offset paths with the line to p.
func (e *Expander) segment(p geom.Vec) {
	tan := r2.Sub(p, e.lastPt)
	e.join(tan)
	e.lastTan = tan
	norm := e.normal(tan)
	e.forward.lineTo(r2.Sub(p, norm))
	e.backward.lineTo(r2.Add(p, norm))
	e.lastPt = p
	e.lastNorm = norm
}

// normal returns the left perpendicular of tan with half the stroke width.
func (e *Expander) normal(tan geom.Vec) geom.Vec {
	return r2.Scale(0.5*e.style.Width/r2.Norm(tan), perp(tan))
}

// join connects the previous segment to one leaving lastPt along tan.
func (e *Expander) join(tan geom.Vec) {
	norm := e.normal(tan)
	p0 := e.lastPt
	if e.forward.empty() {
		e.forward.moveTo(r2.Sub(p0, norm))
		e.backward.moveTo(r2.Add(p0, norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := r2.Cross(ab, cd)
	dot := r2.Dot(ab, cd)
	hypot := math.Hypot(cross, dot)

	// Nearly straight: connect the offsets without a join so curves
	// flattened into short segments stay continuous.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(r2.Sub(p0, norm))
		e.backward.lineTo(r2.Add(p0, norm))
		return
	}

	switch e.style.Join {
	case JoinMiter:
		limit := e.style.MiterLimit * e.style.MiterLimit
		if 2*hypot < (hypot+dot)*limit {
			e.miter(p0, norm, ab, cd, cross)
		}
	case JoinRound:
		lastNorm := e.normal(ab)
		angle := math.Atan2(cross, dot)
		// The arc runs on the outer side and ends on the new offset.
		if angle > 0 {
			e.backward.lineTo(r2.Add(p0, norm))
			e.arc(&e.forward, p0, r2.Scale(-1, lastNorm), angle)
		} else {
			e.forward.lineTo(r2.Sub(p0, norm))
			e.arc(&e.backward, p0, lastNorm, angle)
		}
		return
	}
	e.forward.lineTo(r2.Sub(p0, norm))
	e.backward.lineTo(r2.Add(p0, norm))
}

// miter adds the miter tip on the outer side of the corner at p0.
func (e *Expander) miter(p0, norm, ab, cd geom.Vec, cross float64) {
	lastNorm := e.normal(ab)
	switch {
	case cross > 0:
		last, this := r2.Sub(p0, lastNorm), r2.Sub(p0, norm)
		h := r2.Cross(ab, r2.Sub(this, last)) / cross
		e.forward.lineTo(r2.Sub(this, r2.Scale(h, cd)))
		e.backward.lineTo(p0)
	case cross < 0:
		last, this := r2.Add(p0, lastNorm), r2.Add(p0, norm)
		h := r2.Cross(ab, r2.Sub(this, last)) / cross
		e.backward.lineTo(r2.Sub(this, r2.Scale(h, cd)))
		e.forward.lineTo(p0)
	}
}

// finish closes an open subpath with its caps.
func (e *Expander) finish() {
	if e.forward.empty() {
		return
	}
	e.out.append(e.forward.elems)
	e.cap(e.lastPt, r2.Scale(-1, e.lastNorm), false)
	e.appendReversed(e.backward.elems)
	e.cap(e.startPt, e.startNorm, true)
	e.forward.reset()
	e.backward.reset()
}

// finishClosed emits a closed subpath as two loops.
func (e *Expander) finishClosed() {
	if e.forward.empty() {
		return
	}
	e.join(e.startTan)
	e.out.append(e.forward.elems)
	e.out.close()
	back := e.backward.elems
	e.out.moveTo(back[len(back)-1].End())
	e.appendReversed(back)
	e.out.close()
	e.forward.reset()
	e.backward.reset()
}

// cap joins the forward side at center to the backward side. norm points
// from center to the side the output is currently on.
func (e *Expander) cap(center, norm geom.Vec, closing bool) {
	switch e.style.Cap {
	case CapRound:
		e.arc(&e.out, center, norm, math.Pi)
		if closing {
			e.out.close()
		}
	case CapSquare:
		// Corners of the square in the frame (norm, perp(norm)).
		corner := func(u, v float64) geom.Vec {
			return r2.Add(center, r2.Add(r2.Scale(u, norm), r2.Scale(v, perp(norm))))
		}
		e.out.lineTo(corner(1, 1))
		e.out.lineTo(corner(-1, 1))
		if closing {
			e.out.close()
		} else {
			e.out.lineTo(corner(-1, 0))
		}
	default:
		if closing {
			e.out.close()
		} else {
			e.out.lineTo(r2.Sub(center, norm))
		}
	}
}

// arc appends a circular arc around center starting at center+from and
// sweeping angle radians, as cubics of at most a quarter turn each.
func (e *Expander) arc(b *builder, center, from geom.Vec, angle float64) {
	n := max(int(math.Ceil(math.Abs(angle)/(math.Pi/2))), 1)
	step := angle / float64(n)
	a := math.Atan2(from.Y, from.X)
	r := r2.Norm(from)
	t := math.Tan(step / 2)
	k := math.Sin(step) * (math.Sqrt(4+3*t*t) - 1) / 3
	for range n {
		s0, c0 := math.Sincos(a)
		s1, c1 := math.Sincos(a + step)
		p1 := geom.Vec{X: center.X + r*c0, Y: center.Y + r*s0}
		p2 := geom.Vec{X: center.X + r*c1, Y: center.Y + r*s1}
		b.cubicTo(
			geom.Vec{X: p1.X - k*r*s0, Y: p1.Y + k*r*c0},
			geom.Vec{X: p2.X + k*r*s1, Y: p2.Y - k*r*c1},
			p2,
		)
		a += step
	}
}

// appendReversed appends elems, which start with a move, walked backwards
// from their last point.
func (e *Expander) appendReversed(elems []Element) {
	for i := len(elems) - 1; i >= 1; i-- {
		end := elems[i-1].End()
		switch el := elems[i]; el.Verb {
		case VerbLine:
			e.out.lineTo(end)
		case VerbCubic:
			e.out.cubicTo(el.Pts[1], el.Pts[0], end)
		}
	}
}

// flattenCubic returns points along the cubic, starting with p0, such that
// each control point lies within the tolerance of its chord.
func (e *Expander) flattenCubic(p0, p1, p2, p3 geom.Vec) []geom.Vec {
	pts := []geom.Vec{p0}
	var rec func(p0, p1, p2, p3 geom.Vec, depth int)
	rec = func(p0, p1, p2, p3 geom.Vec, depth int) {
		if depth >= 16 || max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3)) < e.tolerance {
			pts = append(pts, p3)
			return
		}
		q0, q1, q2 := geom.Lerp(p0, p1, 0.5), geom.Lerp(p1, p2, 0.5), geom.Lerp(p2, p3, 0.5)
		r0, r1 := geom.Lerp(q0, q1, 0.5), geom.Lerp(q1, q2, 0.5)
		s := geom.Lerp(r0, r1, 0.5)
		rec(p0, q0, r0, s, depth+1)
		rec(s, r1, q2, p3, depth+1)
	}
	rec(p0, p1, p2, p3, 0)
	return pts
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b geom.Vec) float64 {
	ab := r2.Sub(b, a)
	l2 := r2.Norm2(ab)
	if l2 < 1e-20 {
		return geom.Distance(p, a)
	}
	t := min(max(r2.Dot(r2.Sub(p, a), ab)/l2, 0), 1)
	return geom.Distance(p, r2.Add(a, r2.Scale(t, ab)))
}

func perp(v geom.Vec) geom.Vec { return geom.Vec{X: -v.Y, Y: v.X} }

// builder accumulates path elements.
type builder struct {
	elems []Element
}

func (b *builder) empty() bool          { return len(b.elems) == 0 }
func (b *builder) reset()               { b.elems = b.elems[:0] }
func (b *builder) moveTo(p geom.Vec)    { b.elems = append(b.elems, MoveTo(p)) }
func (b *builder) lineTo(p geom.Vec)    { b.elems = append(b.elems, LineTo(p)) }
func (b *builder) close()               { b.elems = append(b.elems, Close()) }
func (b *builder) append(els []Element) { b.elems = append(b.elems, els...) }

func (b *builder) cubicTo(c1, c2, p geom.Vec) {
	b.elems = append(b.elems, CubicTo(c1, c2, p))
}
