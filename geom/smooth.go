package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SmoothType selects a tangent smoothing algorithm.
type SmoothType int

const (
	// SmoothCatmullRom converts a Catmull-Rom spline through the anchors to
	// cubic bezier handles. The factor is the knot exponent: 0.5 is
	// centripetal, 1 chordal.
	SmoothCatmullRom SmoothType = iota

	// SmoothGeometric places both handles along prev-next, split by the
	// ratio of the neighbor distances.
	SmoothGeometric
)

// DefaultSmoothFactor is used when a zero factor is given.
const DefaultSmoothFactor = 0.5

// String returns the algorithm name.
func (t SmoothType) String() string {
	switch t {
	case SmoothCatmullRom:
		return "catmull-rom"
	case SmoothGeometric:
		return "geometric"
	default:
		return "unknown"
	}
}

// SmoothHandles computes the incoming and outgoing handle positions for the
// anchor p1 with neighbors p0 (previous) and p2 (next). A zero factor selects
// DefaultSmoothFactor.
func SmoothHandles(typ SmoothType, factor float64, p0, p1, p2 Vec) (in, out Vec) {
	if factor == 0 {
		factor = DefaultSmoothFactor
	}
	if typ == SmoothGeometric {
		return smoothGeometric(factor, p0, p1, p2)
	}
	return smoothCatmullRom(factor, p0, p1, p2)
}

func smoothGeometric(t float64, p0, p1, p2 Vec) (in, out Vec) {
	d1 := Distance(p0, p1)
	d2 := Distance(p1, p2)
	if d1+d2 == 0 {
		return p1, p1
	}
	v := r2.Sub(p0, p2)
	k := t * d1 / (d1 + d2)
	return r2.Add(p1, r2.Scale(k, v)), r2.Add(p1, r2.Scale(k-t, v))
}

func smoothCatmullRom(a float64, p0, p1, p2 Vec) (in, out Vec) {
	d1 := Distance(p0, p1)
	d2 := Distance(p1, p2)
	d1a := math.Pow(d1, a)
	d2a := math.Pow(d2, a)
	d1a2 := d1a * d1a
	d2a2 := d2a * d2a

	in, out = p1, p1
	if n := 3 * d2a * (d1a + d2a); n != 0 {
		m := 2*d2a2 + 3*d1a*d2a + d1a2
		in = Vec{
			X: (d2a2*p0.X + m*p1.X - d1a2*p2.X) / n,
			Y: (d2a2*p0.Y + m*p1.Y - d1a2*p2.Y) / n,
		}
	}
	if n := 3 * d1a * (d1a + d2a); n != 0 {
		m := 2*d1a2 + 3*d1a*d2a + d2a2
		out = Vec{
			X: (d1a2*p2.X + m*p1.X - d2a2*p0.X) / n,
			Y: (d1a2*p2.Y + m*p1.Y - d2a2*p0.Y) / n,
		}
	}
	return in, out
}

// ParseSmoothType parses "catmull-rom" (also "catmullrom") or "geometric".
func ParseSmoothType(s string) (SmoothType, bool) {
	switch s {
	case "catmull-rom", "catmullrom", "catmull_rom":
		return SmoothCatmullRom, true
	case "geometric":
		return SmoothGeometric, true
	}
	return 0, false
}
