package shape

import (
	"errors"
	"testing"

	"github.com/gogpu/dyncanvas/raster"
)

func TestRectangleLeftTop(t *testing.T) {
	r := newTestRect(t, RectangleConfig{Config: Config{
		X: 10, Y: 10, Width: 100, Height: 50, Origin: "left top", Fill: Color{red},
	}})
	buf, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y   int
		filled bool
	}{
		{10, 10, true},
		{109, 59, true},
		{60, 35, true},
		{9, 10, false},
		{10, 9, false},
		{110, 59, false},
		{109, 60, false},
	}
	for _, tt := range tests {
		got := buf.Pixel(tt.x, tt.y)
		if tt.filled && got != red {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, red)
		}
		if !tt.filled && got.A != 0 {
			t.Errorf("Pixel(%d, %d) = %v, want transparent", tt.x, tt.y, got)
		}
	}
}

func TestRectangleCenteredOrigin(t *testing.T) {
	r := newTestRect(t, RectangleConfig{Config: Config{
		X: 100, Y: 50, Width: 20, Height: 10, Fill: Color{red},
	}})
	buf, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(90, 45); got != red {
		t.Errorf("Pixel(90, 45) = %v, want %v", got, red)
	}
	if got := buf.Pixel(109, 54); got != red {
		t.Errorf("Pixel(109, 54) = %v, want %v", got, red)
	}
	if got := buf.Pixel(89, 45); got.A != 0 {
		t.Errorf("Pixel(89, 45) = %v, want transparent", got)
	}
}

func TestRectangleFlip(t *testing.T) {
	r := newTestRect(t, RectangleConfig{Config: Config{
		X: 50, Y: 20, Width: 30, Height: 10, Origin: "left top",
		Flip: Flip{Horizontal: true}, Fill: Color{red},
	}})
	buf, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(25, 25); got != red {
		t.Errorf("flipped Pixel(25, 25) = %v, want %v", got, red)
	}
	if got := buf.Pixel(55, 25); got.A != 0 {
		t.Errorf("flipped Pixel(55, 25) = %v, want transparent", got)
	}

	r.SetFlip(Flip{Vertical: true})
	if buf, err = r.Render(); err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(55, 15); got != red {
		t.Errorf("vertically flipped Pixel(55, 15) = %v, want %v", got, red)
	}
	if got := buf.Pixel(55, 25); got.A != 0 {
		t.Errorf("vertically flipped Pixel(55, 25) = %v, want transparent", got)
	}
}

func TestRectangleRotation(t *testing.T) {
	r := newTestRect(t, RectangleConfig{Config: Config{
		X: 100, Y: 50, Width: 60, Height: 10, Angle: 90, Fill: Color{red},
	}})
	buf, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(100, 25); got.A < 250 || got.R < 250 {
		t.Errorf("rotated Pixel(100, 25) = %v, want red", got)
	}
	if got := buf.Pixel(120, 50); got.A != 0 {
		t.Errorf("rotated Pixel(120, 50) = %v, want transparent", got)
	}
}

func TestRectangleScale(t *testing.T) {
	r := newTestRect(t, RectangleConfig{Config: Config{
		X: 100, Y: 50, Width: 20, Height: 10, Scale: Uniform(2), Fill: Color{red},
	}})
	buf, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(82, 42); got != red {
		t.Errorf("scaled Pixel(82, 42) = %v, want %v", got, red)
	}
	if got := buf.Pixel(78, 50); got.A != 0 {
		t.Errorf("scaled Pixel(78, 50) = %v, want transparent", got)
	}
}

func TestRectangleStrokeAlignment(t *testing.T) {
	tests := []struct {
		align       Alignment
		blue, clear []int
	}{
		{AlignOuter, []int{17, 19}, []int{15, 21}},
		{AlignCenter, []int{18, 21}, []int{17, 22}},
		{AlignInner, []int{20, 23}, []int{19, 24}},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			r := newTestRect(t, RectangleConfig{
				Config: Config{X: 20, Y: 20, Width: 40, Height: 20, Origin: "left top"},
				Stroke: Stroke{Color: blue, Width: 4, Alignment: tt.align},
			})
			buf, err := r.Render()
			if err != nil {
				t.Fatal(err)
			}
			for _, x := range tt.blue {
				if got := buf.Pixel(x, 30); got != blue {
					t.Errorf("Pixel(%d, 30) = %v, want %v", x, got, blue)
				}
			}
			for _, x := range tt.clear {
				if got := buf.Pixel(x, 30); got.A != 0 {
					t.Errorf("Pixel(%d, 30) = %v, want transparent", x, got)
				}
			}
		})
	}
}

func TestRectangleNoFill(t *testing.T) {
	r := newTestRect(t, RectangleConfig{Config: Config{X: 50, Y: 50, Width: 20, Height: 20}})
	buf, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if !buf.IsTransparent() {
		t.Error("unfilled rectangle without stroke drew pixels")
	}
}

func TestSquare(t *testing.T) {
	s, err := NewSquare(raster.NewSurface(100, 100), SquareConfig{
		Config: Config{X: 10, Y: 10, Origin: "left top", Fill: Color{red}},
		Size:   20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 20 || s.Width() != 20 || s.Height() != 20 {
		t.Errorf("size = %v (%vx%v), want 20", s.Size(), s.Width(), s.Height())
	}
	buf, err := s.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(29, 29); got != red {
		t.Errorf("Pixel(29, 29) = %v, want %v", got, red)
	}

	s.SetSize(30)
	if s.Width() != 30 || s.Height() != 30 || !s.Dirty() {
		t.Errorf("after SetSize(30): %vx%v dirty=%v", s.Width(), s.Height(), s.Dirty())
	}
	if buf, err = s.Render(); err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(39, 39); got != red {
		t.Errorf("Pixel(39, 39) after SetSize = %v, want %v", got, red)
	}

	if _, err := NewSquare(nil, SquareConfig{}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewSquare() with zero size error = %v, want ErrInvalidDimension", err)
	}
}

func TestSquareKeepsSidesEqual(t *testing.T) {
	s, err := NewSquare(nil, SquareConfig{Size: 10})
	if err != nil {
		t.Fatal(err)
	}
	s.SetWidth(24)
	if s.Width() != 24 || s.Height() != 24 {
		t.Errorf("after SetWidth(24): %vx%v, want 24x24", s.Width(), s.Height())
	}
	s.SetHeight(8)
	if s.Width() != 8 || s.Height() != 8 || s.Size() != 8 {
		t.Errorf("after SetHeight(8): %vx%v, want 8x8", s.Width(), s.Height())
	}
}
