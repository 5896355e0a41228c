package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/dyncanvas/geom"
	"github.com/gogpu/dyncanvas/internal/stroke"
)

// LineCap specifies the shape of open subpath endpoints.
type LineCap = stroke.Cap

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt = stroke.CapButt
	// LineCapRound adds a half disc at the endpoint.
	LineCapRound = stroke.CapRound
	// LineCapSquare extends the stroke by half the line width.
	LineCapSquare = stroke.CapSquare
)

// LineJoin specifies how segments of a stroke meet.
type LineJoin = stroke.Join

const (
	// LineJoinMiter extends the outer edges to a point, falling back to
	// bevel beyond the miter limit.
	LineJoinMiter = stroke.JoinMiter
	// LineJoinRound rounds the outer corner.
	LineJoinRound = stroke.JoinRound
	// LineJoinBevel cuts the outer corner flat.
	LineJoinBevel = stroke.JoinBevel
)

// DefaultMiterLimit is the miter limit of a new Context.
const DefaultMiterLimit = 10

// collinearEps bounds the sine of the turn below which a point in the
// middle of a straight run is dropped.
const collinearEps = 1e-9

// strokeStyle carries the line parameters of one stroke call.
type strokeStyle struct {
	width      float64
	cap        LineCap
	join       LineJoin
	miterLimit float64
}

// strokePath rasterizes the outline of path (device space) under the
// transform m into z. The outline is expanded in user space, where the line
// width is uniform, and mapped back to device space. It returns false when
// nothing was added.
func strokePath(z *vector.Rasterizer, path *Path, m Matrix, style strokeStyle) bool {
	if style.width <= 0 || math.IsNaN(style.width) {
		return false
	}
	inv, ok := m.Invert()
	if !ok {
		return false
	}
	var in []stroke.Element
	for _, pl := range path.flatten() {
		pts := make([]geom.Vec, 0, len(pl.pts))
		for _, p := range pl.pts {
			u := inv.TransformPoint(p)
			if n := len(pts); n > 0 && geom.Near(pts[n-1], u, 1e-12) {
				continue
			}
			pts = append(pts, u)
		}
		closed := pl.closed
		if closed && len(pts) > 2 && geom.Near(pts[0], pts[len(pts)-1], 1e-12) {
			pts = pts[:len(pts)-1]
		}
		pts = dropCollinear(pts)
		if len(pts) < 2 {
			continue
		}
		if len(pts) == 2 {
			closed = false
		}
		in = append(in, stroke.MoveTo(pts[0]))
		for _, p := range pts[1:] {
			in = append(in, stroke.LineTo(p))
		}
		if closed {
			in = append(in, stroke.Close())
		}
	}
	if len(in) == 0 {
		return false
	}

	e := stroke.NewExpander(stroke.Style{
		Width:      style.width,
		Cap:        style.cap,
		Join:       style.join,
		MiterLimit: style.miterLimit,
	})
	// The tolerance is in user units; keep it at flattenTolerance device
	// pixels.
	if scale := math.Sqrt(math.Abs(m.Determinant())); scale > 0 {
		e.SetTolerance(flattenTolerance / scale)
	}
	out := e.Expand(in)
	if len(out) == 0 {
		return false
	}
	open := false
	for _, el := range out {
		switch el.Verb {
		case stroke.VerbMove:
			if open {
				z.ClosePath()
			}
			p := m.TransformPoint(el.Pts[0])
			z.MoveTo(float32(p.X), float32(p.Y))
			open = true
		case stroke.VerbLine:
			p := m.TransformPoint(el.Pts[0])
			z.LineTo(float32(p.X), float32(p.Y))
		case stroke.VerbCubic:
			c1 := m.TransformPoint(el.Pts[0])
			c2 := m.TransformPoint(el.Pts[1])
			p := m.TransformPoint(el.Pts[2])
			z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
		case stroke.VerbClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	return true
}

// dropCollinear removes interior points of straight runs, so a flattened
// straight curve strokes like a single line.
func dropCollinear(pts []geom.Vec) []geom.Vec {
	if len(pts) < 3 {
		return pts
	}
	out := pts[:1]
	for i := 1; i < len(pts)-1; i++ {
		a, b, c := out[len(out)-1], pts[i], pts[i+1]
		d0 := unit(a, b)
		d1 := unit(b, c)
		cross := d0.X*d1.Y - d0.Y*d1.X
		dot := d0.X*d1.X + d0.Y*d1.Y
		if math.Abs(cross) < collinearEps && dot > 0 {
			continue
		}
		out = append(out, b)
	}
	return append(out, pts[len(pts)-1])
}

func unit(a, b geom.Vec) geom.Vec {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return geom.Vec{}
	}
	return geom.Vec{X: dx / l, Y: dy / l}
}
