package raster

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-9

func matricesEqual(a, b Matrix) bool {
	return math.Abs(a.A-b.A) < matrixEpsilon && math.Abs(a.B-b.B) < matrixEpsilon &&
		math.Abs(a.C-b.C) < matrixEpsilon && math.Abs(a.D-b.D) < matrixEpsilon &&
		math.Abs(a.E-b.E) < matrixEpsilon && math.Abs(a.F-b.F) < matrixEpsilon
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -5), 3, 4, 13, -1},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"rotate 90 turns x onto y", Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"translate after scale", Translate(10, 0).Multiply(Scale(2, 2)), 1, 1, 12, 2},
		{"scale after translate", Scale(2, 2).Multiply(Translate(10, 0)), 1, 1, 22, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.Apply(tt.x, tt.y)
			if math.Abs(x-tt.wx) > matrixEpsilon || math.Abs(y-tt.wy) > matrixEpsilon {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, -0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() ok = false, want true")
	}
	if got := m.Multiply(inv); !matricesEqual(got, Identity()) {
		t.Errorf("m * inv = %+v, want identity", got)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Scale(0, 1).Invert() ok = true, want false")
	}
}

func TestMatrixIsIntegerTranslation(t *testing.T) {
	tests := []struct {
		m    Matrix
		want bool
	}{
		{Identity(), true},
		{Translate(3, -4), true},
		{Translate(0.5, 0), false},
		{Scale(2, 2), false},
		{Rotate(math.Pi / 4), false},
	}
	for _, tt := range tests {
		if got := tt.m.IsIntegerTranslation(); got != tt.want {
			t.Errorf("%+v.IsIntegerTranslation() = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestMatrixAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	got := m.Aff3()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if got[i] != want {
			t.Errorf("Aff3()[%d] = %v, want %v", i, got[i], want)
		}
	}
}
