package raster

import (
	"image/color"
	"testing"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func near16(a, b uint16) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func nrgba64Near(a, b color.NRGBA64) bool {
	return near16(a.R, b.R) && near16(a.G, b.G) && near16(a.B, b.B) && near16(a.A, b.A)
}

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0).
		AddColorStop(0, red).
		AddColorStop(1, blue)

	tests := []struct {
		name string
		x    float64
		want color.NRGBA64
	}{
		{"start", 0, color.NRGBA64{R: 0xffff, A: 0xffff}},
		{"end", 100, color.NRGBA64{B: 0xffff, A: 0xffff}},
		{"middle", 50, color.NRGBA64{R: 0x8000, B: 0x8000, A: 0xffff}},
		{"pad before", -20, color.NRGBA64{R: 0xffff, A: 0xffff}},
		{"pad after", 300, color.NRGBA64{B: 0xffff, A: 0xffff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.x, 42); !nrgba64Near(got, tt.want) {
				t.Errorf("ColorAt(%v, 42) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestGradientStopsSorted(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0).
		AddColorStop(1, blue).
		AddColorStop(0, red).
		AddColorStop(2, color.White)

	want := []float64{0, 1, 1}
	if len(g.Stops) != len(want) {
		t.Fatalf("len(Stops) = %d, want %d", len(g.Stops), len(want))
	}
	for i, off := range want {
		if g.Stops[i].Offset != off {
			t.Errorf("Stops[%d].Offset = %v, want %v", i, g.Stops[i].Offset, off)
		}
	}
}

func TestLinearGradientZeroLength(t *testing.T) {
	g := NewLinearGradient(5, 5, 5, 5).AddColorStop(0, red)
	if got := g.ColorAt(5, 5); got.A != 0 {
		t.Errorf("ColorAt on zero-length gradient alpha = %d, want 0", got.A)
	}
}

func TestRadialGradientColorAt(t *testing.T) {
	g := NewRadialGradient(50, 50, 0, 50).
		AddColorStop(0, red).
		AddColorStop(1, blue)

	if got := g.ColorAt(50, 50); !nrgba64Near(got, color.NRGBA64{R: 0xffff, A: 0xffff}) {
		t.Errorf("ColorAt(center) = %v, want red", got)
	}
	if got := g.ColorAt(75, 50); !nrgba64Near(got, color.NRGBA64{R: 0x8000, B: 0x8000, A: 0xffff}) {
		t.Errorf("ColorAt(half radius) = %v, want purple", got)
	}
	if got := g.ColorAt(50, 200); !nrgba64Near(got, color.NRGBA64{B: 0xffff, A: 0xffff}) {
		t.Errorf("ColorAt(outside) = %v, want blue", got)
	}
}

func TestSingleStop(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0).AddColorStop(0, red)
	for _, x := range []float64{-5, 0, 5, 50} {
		if got := g.ColorAt(x, 0); !nrgba64Near(got, color.NRGBA64{R: 0xffff, A: 0xffff}) {
			t.Errorf("ColorAt(%v, 0) = %v, want red", x, got)
		}
	}
}

func TestBrushSourceTransparentSolid(t *testing.T) {
	if _, ok := brushSource(Solid{Color: Transparent}, Identity()); ok {
		t.Error("brushSource(transparent) ok = true, want false")
	}
	if _, ok := brushSource(NewLinearGradient(0, 0, 1, 0), Scale(0, 0)); ok {
		t.Error("brushSource(gradient, singular) ok = true, want false")
	}
}
