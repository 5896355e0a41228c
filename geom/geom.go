package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or displacement in surface coordinates.
type Vec = r2.Vec

// Pt is a convenience function to create a Vec.
func Pt(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees maps any angle onto [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod(-1e-17, 360) + 360 rounds to 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Vec) float64 {
	return r2.Norm(r2.Sub(q, p))
}

// Polar returns the angle (degrees, normalized) and length of the offset
// from anchor to p.
func Polar(anchor, p Vec) (angle, length float64) {
	d := r2.Sub(p, anchor)
	if d.X == 0 && d.Y == 0 {
		return 0, 0
	}
	return NormalizeDegrees(Degrees(math.Atan2(d.Y, d.X))), r2.Norm(d)
}

// FromPolar returns anchor + (cos(angle), sin(angle)) * length with angle in
// degrees.
func FromPolar(anchor Vec, angle, length float64) Vec {
	rad := Radians(angle)
	return Vec{
		X: anchor.X + math.Cos(rad)*length,
		Y: anchor.Y + math.Sin(rad)*length,
	}
}

// Mirror reflects p through anchor.
func Mirror(anchor, p Vec) Vec {
	return r2.Sub(r2.Scale(2, anchor), p)
}

// Lerp interpolates between p and q.
func Lerp(p, q Vec, t float64) Vec {
	return r2.Add(p, r2.Scale(t, r2.Sub(q, p)))
}

// Near reports whether p and q are within eps of each other on both axes.
func Near(p, q Vec, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}
