package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/dyncanvas/geom"
)

// flattenTolerance is the maximum distance, in device pixels, between a
// cubic and the polyline that replaces it when stroking.
const flattenTolerance = 0.1

type verb uint8

const (
	verbMove verb = iota
	verbLine
	verbCubic
	verbClose
)

type element struct {
	verb verb
	pts  [3]geom.Vec
}

// Path is a sequence of subpaths in device space. Context transforms
// coordinates as they are added, so later transform changes do not move
// geometry that is already in the path.
type Path struct {
	elems  []element
	start  geom.Vec
	cur    geom.Vec
	hasCur bool
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt geom.Vec) {
	p.elems = append(p.elems, element{verb: verbMove, pts: [3]geom.Vec{pt}})
	p.start, p.cur, p.hasCur = pt, pt, true
}

// LineTo adds a line from the current point to pt. Without a current point
// it behaves like MoveTo.
func (p *Path) LineTo(pt geom.Vec) {
	if !p.hasCur {
		p.MoveTo(pt)
		return
	}
	p.elems = append(p.elems, element{verb: verbLine, pts: [3]geom.Vec{pt}})
	p.cur = pt
}

// CubicTo adds a cubic Bezier from the current point to pt. A cubic whose
// control points sit on its endpoints is a straight line and is stored as one.
func (p *Path) CubicTo(c1, c2, pt geom.Vec) {
	if !p.hasCur {
		p.MoveTo(c1)
	}
	if c1 == p.cur && c2 == pt {
		p.LineTo(pt)
		return
	}
	p.elems = append(p.elems, element{verb: verbCubic, pts: [3]geom.Vec{c1, c2, pt}})
	p.cur = pt
}

// Close closes the current subpath. The current point returns to the start
// of the subpath, so a following LineTo begins a new subpath there.
func (p *Path) Close() {
	if !p.hasCur {
		return
	}
	if n := len(p.elems); n > 0 && p.elems[n-1].verb == verbClose {
		return
	}
	p.elems = append(p.elems, element{verb: verbClose})
	p.cur = p.start
	p.elems = append(p.elems, element{verb: verbMove, pts: [3]geom.Vec{p.start}})
}

// Reset removes all subpaths.
func (p *Path) Reset() {
	p.elems = p.elems[:0]
	p.hasCur = false
}

// Empty reports whether the path has any drawing segments.
func (p *Path) Empty() bool {
	for _, e := range p.elems {
		if e.verb == verbLine || e.verb == verbCubic {
			return false
		}
	}
	return true
}

// CurrentPoint returns the current point and whether there is one.
func (p *Path) CurrentPoint() (geom.Vec, bool) {
	return p.cur, p.hasCur
}

// rasterize adds the path to z with every subpath closed, as filling needs.
func (p *Path) rasterize(z *vector.Rasterizer) {
	open := false
	for _, e := range p.elems {
		switch e.verb {
		case verbMove:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(e.pts[0].X), float32(e.pts[0].Y))
			open = true
		case verbLine:
			z.LineTo(float32(e.pts[0].X), float32(e.pts[0].Y))
		case verbCubic:
			z.CubeTo(
				float32(e.pts[0].X), float32(e.pts[0].Y),
				float32(e.pts[1].X), float32(e.pts[1].Y),
				float32(e.pts[2].X), float32(e.pts[2].Y),
			)
		case verbClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// polyline is a flattened subpath.
type polyline struct {
	pts    []geom.Vec
	closed bool
}

// flatten converts the path into polylines, replacing cubics by line
// segments within flattenTolerance. Consecutive duplicate points are dropped.
func (p *Path) flatten() []polyline {
	var out []polyline
	push := func(pt geom.Vec) {
		cur := &out[len(out)-1]
		if n := len(cur.pts); n > 0 && cur.pts[n-1] == pt {
			return
		}
		cur.pts = append(cur.pts, pt)
	}
	for _, e := range p.elems {
		switch e.verb {
		case verbMove:
			out = append(out, polyline{pts: []geom.Vec{e.pts[0]}})
		case verbLine:
			push(e.pts[0])
		case verbCubic:
			last := out[len(out)-1].pts
			p0 := last[len(last)-1]
			n := cubicSegments(p0, e.pts[0], e.pts[1], e.pts[2])
			for i := 1; i <= n; i++ {
				push(cubicAt(p0, e.pts[0], e.pts[1], e.pts[2], float64(i)/float64(n)))
			}
		case verbClose:
			out[len(out)-1].closed = true
		}
	}
	// Drop the trailing bare moves that Close leaves behind.
	kept := out[:0]
	for _, pl := range out {
		if len(pl.pts) > 1 {
			kept = append(kept, pl)
		}
	}
	return kept
}

// cubicSegments estimates how many line segments keep a cubic within
// flattenTolerance, from the size of its second differences.
func cubicSegments(p0, p1, p2, p3 geom.Vec) int {
	dd1 := geom.Vec{X: p0.X - 2*p1.X + p2.X, Y: p0.Y - 2*p1.Y + p2.Y}
	dd2 := geom.Vec{X: p1.X - 2*p2.X + p3.X, Y: p1.Y - 2*p2.Y + p3.Y}
	dd := math.Max(math.Hypot(dd1.X, dd1.Y), math.Hypot(dd2.X, dd2.Y))
	n := int(math.Ceil(math.Sqrt(0.75 * dd / flattenTolerance)))
	return min(max(n, 1), 256)
}

func cubicAt(p0, p1, p2, p3 geom.Vec, t float64) geom.Vec {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geom.Vec{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// finite reports whether every coordinate in the path is a finite number.
func (p *Path) finite() bool {
	for _, e := range p.elems {
		for _, pt := range e.pts {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
				return false
			}
		}
	}
	return true
}
