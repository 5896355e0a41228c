package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{-90, 270},
		{-180, 180},
		{540, 180},
		{-720, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	anchors := []Vec{Pt(0, 0), Pt(10, -4), Pt(-250.5, 33)}
	handles := []Vec{Pt(1, 0), Pt(0, 1), Pt(-3, -4), Pt(100, 0.001), Pt(-7.25, 19)}
	for _, a := range anchors {
		for _, h := range handles {
			p := Vec{X: a.X + h.X, Y: a.Y + h.Y}
			angle, length := Polar(a, p)
			if angle < 0 || angle >= 360 {
				t.Errorf("Polar(%v, %v) angle = %v, want [0,360)", a, p, angle)
			}
			back := FromPolar(a, angle, length)
			if !Near(back, p, 1e-9) {
				t.Errorf("FromPolar(Polar(%v, %v)) = %v", a, p, back)
			}
		}
	}
}

func TestPolarZeroOffset(t *testing.T) {
	angle, length := Polar(Pt(5, 5), Pt(5, 5))
	if angle != 0 || length != 0 {
		t.Errorf("Polar(same point) = (%v, %v), want (0, 0)", angle, length)
	}
}

func TestFromPolarAxes(t *testing.T) {
	tests := []struct {
		angle float64
		want  Vec
	}{
		{0, Pt(10, 0)},
		{90, Pt(0, 10)},
		{180, Pt(-10, 0)},
		{270, Pt(0, -10)},
	}
	for _, tt := range tests {
		got := FromPolar(Pt(0, 0), tt.angle, 10)
		if !Near(got, tt.want, 1e-9) {
			t.Errorf("FromPolar(0, %v, 10) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(Pt(0, 0), Pt(3, 4)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestMirror(t *testing.T) {
	got := Mirror(Pt(10, 10), Pt(15, 7))
	if !Near(got, Pt(5, 13), eps) {
		t.Errorf("Mirror = %v, want (5, 13)", got)
	}
}
