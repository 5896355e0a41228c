package shape

import (
	"errors"
	"testing"

	"github.com/gogpu/dyncanvas/raster"
)

func TestEllipse(t *testing.T) {
	e, err := NewEllipse(raster.NewSurface(200, 100), EllipseConfig{Config: Config{
		X: 100, Y: 50, Width: 80, Height: 40, Fill: Color{red},
	}})
	if err != nil {
		t.Fatal(err)
	}
	buf, err := e.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(100, 50); got != red {
		t.Errorf("center pixel = %v, want %v", got, red)
	}
	if got := buf.Pixel(135, 50); got != red {
		t.Errorf("Pixel(135, 50) = %v, want %v", got, red)
	}
	if got := buf.Pixel(100, 25); got.A != 0 {
		t.Errorf("Pixel(100, 25) = %v, want transparent", got)
	}
	if got := buf.Pixel(137, 67); got.A != 0 {
		t.Errorf("bounding-box corner pixel = %v, want transparent", got)
	}
}

func TestCircle(t *testing.T) {
	ref := raster.NewSurface(100, 100)
	c, err := NewCircle(ref, CircleConfig{Config: Config{X: 50, Y: 50, Fill: Color{red}}, Radius: 10})
	if err != nil {
		t.Fatal(err)
	}
	if c.Radius() != 10 || c.Diameter() != 20 || c.Width() != 20 || c.Height() != 20 {
		t.Errorf("radius %v diameter %v size %vx%v, want 10 20 20x20",
			c.Radius(), c.Diameter(), c.Width(), c.Height())
	}
	buf, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{50, 50}, {50, 42}, {57, 50}} {
		if got := buf.Pixel(p[0], p[1]); got != red {
			t.Errorf("Pixel(%d, %d) = %v, want %v", p[0], p[1], got, red)
		}
	}
	for _, p := range [][2]int{{62, 50}, {58, 58}, {41, 41}} {
		if got := buf.Pixel(p[0], p[1]); got.A != 0 {
			t.Errorf("Pixel(%d, %d) = %v, want transparent", p[0], p[1], got)
		}
	}

	c.SetDiameter(30)
	if c.Radius() != 15 || c.Width() != 30 || c.Height() != 30 || !c.Dirty() {
		t.Errorf("after SetDiameter(30): radius %v size %vx%v", c.Radius(), c.Width(), c.Height())
	}
	c.SetRadius(4)
	if c.Diameter() != 8 {
		t.Errorf("Diameter() after SetRadius(4) = %v, want 8", c.Diameter())
	}
	if got := c.OriginOffset(); got.X != 4 || got.Y != 4 {
		t.Errorf("OriginOffset() = %v, want (4, 4)", got)
	}
}

func TestCircleConfig(t *testing.T) {
	c, err := NewCircle(nil, CircleConfig{Radius: 5, Diameter: 40})
	if err != nil {
		t.Fatal(err)
	}
	if c.Diameter() != 40 {
		t.Errorf("Diameter() = %v, want 40 (diameter wins)", c.Diameter())
	}
	c, err = NewCircle(nil, CircleConfig{Diameter: 12})
	if err != nil {
		t.Fatal(err)
	}
	if c.Radius() != 6 {
		t.Errorf("Radius() = %v, want 6", c.Radius())
	}
	if _, err := NewCircle(nil, CircleConfig{}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("NewCircle() without size error = %v, want ErrInvalidDimension", err)
	}
}

func TestCircleKeepsRound(t *testing.T) {
	tests := map[string]func(c *Circle){
		"SetWidth":  func(c *Circle) { c.SetWidth(30) },
		"SetHeight": func(c *Circle) { c.SetHeight(30) },
		"SetSize":   func(c *Circle) { c.SetSize(30) },
	}
	for name, set := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := NewCircle(nil, CircleConfig{Radius: 5})
			if err != nil {
				t.Fatal(err)
			}
			set(c)
			if c.Width() != 30 || c.Height() != 30 || c.Radius() != 15 {
				t.Errorf("size = %vx%v radius %v, want 30x30 radius 15", c.Width(), c.Height(), c.Radius())
			}
			if got := c.OriginOffset(); got.X != 15 || got.Y != 15 {
				t.Errorf("OriginOffset() = %v, want (15, 15)", got)
			}
		})
	}
}

func TestEllipseInnerStrokeStaysInside(t *testing.T) {
	e, err := NewEllipse(raster.NewSurface(100, 100), EllipseConfig{
		Config: Config{X: 50, Y: 50, Width: 40, Height: 40},
		Stroke: Stroke{Color: blue, Width: 6, Alignment: AlignInner},
	})
	if err != nil {
		t.Fatal(err)
	}
	buf, err := e.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := buf.Pixel(71, 50); got.A != 0 {
		t.Errorf("Pixel(71, 50) outside the outline = %v, want transparent", got)
	}
	if got := buf.Pixel(67, 50); got.A == 0 {
		t.Error("Pixel(67, 50) inside the inner stroke is transparent")
	}
	if got := buf.Pixel(50, 50); got.A != 0 {
		t.Errorf("center pixel = %v, want transparent", got)
	}
}
