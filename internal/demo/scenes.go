package demo

import (
	"image/color"
	"math"

	"github.com/gogpu/dyncanvas/geom"
	"github.com/gogpu/dyncanvas/raster"
	"github.com/gogpu/dyncanvas/shape"
)

func init() {
	register(Info{Name: "drawing", Description: "every shape kind, turning and pulsing"}, buildDrawing)
	register(Info{Name: "line", Description: "a smoothed path whose anchors wave"}, buildLine)
	register(Info{Name: "circle", Description: "a breathing circle"}, buildCircle)
	register(Info{Name: "square", Description: "spinning squares, one of them static"}, buildSquare)
	register(Info{Name: "zoom", Description: "a static grid under an oscillating zoom", Zoom: true}, buildZoom)
	register(Info{Name: "flip", Description: "an image flipped on both axes"}, buildFlip)
	register(Info{Name: "racer", Description: "a car weaving down a scrolling street"}, buildRacer)
}

func hex(s string) color.Color { return raster.MustParseColor(s) }

func buildDrawing(b *builder) (func(uint64), error) {
	w, h := b.w(), b.h()
	rect, err := b.rect(shape.RectangleConfig{
		Config: shape.Config{
			X: w / 2, Y: h / 2, Width: w / 4, Height: h / 6,
			Fill: &shape.Gradient{Colors: []color.Color{hex("#e63946"), hex("#ffb703")}},
		},
		Stroke: shape.Stroke{Color: hex("#1d3557"), Width: 4, Alignment: shape.AlignOuter},
	})
	if err != nil {
		return nil, err
	}
	ell, err := b.ellipse(shape.EllipseConfig{
		Config: shape.Config{X: w / 4, Y: h / 4, Width: w / 6, Height: h / 10, Fill: shape.Color{Color: hex("steelblue")}},
	})
	if err != nil {
		return nil, err
	}
	if _, err := b.circle(shape.CircleConfig{
		Config: shape.Config{X: 3 * w / 4, Y: h / 4, Fill: &shape.Gradient{
			Type:   shape.GradientRadial,
			Colors: []color.Color{hex("white"), hex("#2a9d8f")},
		}},
		Radius: h / 10,
	}); err != nil {
		return nil, err
	}
	if _, err := b.square(shape.SquareConfig{
		Config: shape.Config{X: w / 4, Y: 3 * h / 4, Angle: 15, Static: true, Fill: shape.Color{Color: hex("#8338ec")}},
		Size:   h / 8,
		Stroke: shape.Stroke{Color: hex("black"), Width: 3, Alignment: shape.AlignInner},
	}); err != nil {
		return nil, err
	}
	star, err := b.path(shape.PathConfig{
		Config:    shape.Config{X: 3 * w / 4, Y: 3 * h / 4, Fill: shape.Color{Color: hex("#fb8500")}},
		Points:    starPoints(3*w/4, 3*h/4, h/8, h/16, 5),
		Closed:    true,
		Stroke:    shape.Stroke{Color: hex("#023047"), Width: 2},
		Smoothing: &shape.Smoothing{Type: geom.SmoothGeometric, Factor: 0.3},
	})
	if err != nil {
		return nil, err
	}

	return func(frame uint64) {
		t := float64(frame)
		rect.SetAngle(2 * t)
		ell.SetUniformScale(1 + 0.25*math.Sin(t/8))
		star.SetAngle(-t)
	}, nil
}

// starPoints returns the anchors of a star with n spikes around (cx, cy).
func starPoints(cx, cy, outer, inner float64, n int) []shape.PointConfig {
	pts := make([]shape.PointConfig, 0, 2*n)
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		p := geom.FromPolar(geom.Pt(cx, cy), float64(i)*180/float64(n)-90, r)
		pts = append(pts, shape.PointConfig{X: p.X, Y: p.Y})
	}
	return pts
}

func buildLine(b *builder) (func(uint64), error) {
	w, h := b.w(), b.h()
	const n = 6
	cfgs := make([]shape.PointConfig, n)
	for i := range cfgs {
		cfgs[i] = shape.PointConfig{X: w * float64(i+1) / (n + 1), Y: h / 2, Mirror: true}
	}
	line, err := b.path(shape.PathConfig{
		Points:    cfgs,
		Stroke:    shape.Stroke{Color: hex("#264653"), Width: 6},
		Smoothing: &shape.Smoothing{Type: geom.SmoothCatmullRom},
	})
	if err != nil {
		return nil, err
	}
	markers := make([]*shape.Circle, n)
	for i, cfg := range cfgs {
		markers[i], err = b.circle(shape.CircleConfig{
			Config: shape.Config{X: cfg.X, Y: cfg.Y, Fill: shape.Color{Color: hex("#e76f51")}},
			Radius: 6,
		})
		if err != nil {
			return nil, err
		}
	}

	return func(frame uint64) {
		t := float64(frame)
		for i, pt := range line.Points() {
			y := h/2 + h/4*math.Sin(t/15+float64(i))
			pt.SetY(y)
			markers[i].SetY(y)
		}
	}, nil
}

func buildCircle(b *builder) (func(uint64), error) {
	w, h := b.w(), b.h()
	base := math.Min(w, h) / 6
	c, err := b.circle(shape.CircleConfig{
		Config: shape.Config{X: w / 2, Y: h / 2, Fill: shape.Color{Color: hex("#219ebc")}},
		Radius: base,
		Stroke: shape.Stroke{Color: hex("#023047"), Width: 8, Alignment: shape.AlignOuter},
	})
	if err != nil {
		return nil, err
	}
	return func(frame uint64) {
		c.SetRadius(base * (1 + 0.3*math.Sin(float64(frame)/10)))
	}, nil
}

func buildSquare(b *builder) (func(uint64), error) {
	w, h := b.w(), b.h()
	size := math.Min(w, h) / 4
	spin, err := b.square(shape.SquareConfig{
		Config: shape.Config{X: w / 3, Y: h / 2, Fill: &shape.Gradient{
			Colors: []color.Color{hex("#06d6a0"), hex("#118ab2"), hex("#073b4c")},
			Angle:  45,
		}},
		Size: size,
	})
	if err != nil {
		return nil, err
	}
	if _, err := b.square(shape.SquareConfig{
		Config: shape.Config{X: 2 * w / 3, Y: h / 2, Origin: "left top", Static: true, Fill: shape.Color{Color: hex("#ef476f")}},
		Size:   size / 2,
		Stroke: shape.Stroke{Color: hex("#073b4c"), Width: 4},
	}); err != nil {
		return nil, err
	}
	return func(frame uint64) {
		spin.SetAngle(3 * float64(frame))
		spin.SetFlipVertical(frame/60%2 == 1)
	}, nil
}

func buildZoom(b *builder) (func(uint64), error) {
	w, h := b.w(), b.h()
	const cols, rows = 8, 6
	cw, ch := w/cols, h/rows
	palette := []string{"#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51"}
	for r := range rows {
		for c := range cols {
			if _, err := b.square(shape.SquareConfig{
				Config: shape.Config{
					X: cw*float64(c) + cw/2, Y: ch*float64(r) + ch/2, Static: true,
					Fill: shape.Color{Color: hex(palette[(r+c)%len(palette)])},
				},
				Size: math.Min(cw, ch) * 0.7,
			}); err != nil {
				return nil, err
			}
		}
	}
	return func(frame uint64) {
		b.c.SetZoom(1 + 0.5*math.Sin(float64(frame)/20))
	}, nil
}

func buildFlip(b *builder) (func(uint64), error) {
	w, h := b.w(), b.h()
	img, err := b.image(shape.ImageConfig{
		Config: shape.Config{X: w / 2, Y: h / 2, Width: 80, Height: 160},
		Src:    SpritePrefix + "car",
	})
	if err != nil {
		return nil, err
	}
	return func(frame uint64) {
		img.SetFlip(shape.Flip{
			Horizontal: frame/30%2 == 1,
			Vertical:   frame/90%2 == 1,
		})
	}, nil
}

func buildRacer(b *builder) (func(uint64), error) {
	w, h := b.w(), b.h()
	road := w / 2
	if _, err := b.rect(shape.RectangleConfig{
		Config: shape.Config{X: w / 2, Y: h / 2, Width: road, Height: h, Static: true, Fill: shape.Color{Color: hex("#3d405b")}},
		Stroke: shape.Stroke{Color: hex("#f4f1de"), Width: 6, Alignment: shape.AlignInner},
	}); err != nil {
		return nil, err
	}

	const stripes = 6
	gap := h / stripes
	lines := make([]*shape.Rectangle, stripes)
	for i := range lines {
		var err error
		lines[i], err = b.rect(shape.RectangleConfig{
			Config: shape.Config{X: w / 2, Y: float64(i) * gap, Width: 8, Height: gap / 2, Fill: shape.Color{Color: hex("#f2cc8f")}},
		})
		if err != nil {
			return nil, err
		}
	}

	rival, err := b.image(shape.ImageConfig{
		Config: shape.Config{X: w/2 - road/4, Y: -80, Angle: 180},
		Src:    SpritePrefix + "rival",
	})
	if err != nil {
		return nil, err
	}
	car, err := b.image(shape.ImageConfig{
		Config: shape.Config{X: w / 2, Y: h - 100},
		Src:    SpritePrefix + "car",
	})
	if err != nil {
		return nil, err
	}

	const speed = 12
	return func(frame uint64) {
		t := float64(frame)
		off := math.Mod(t*speed, gap)
		for i, l := range lines {
			l.SetY(float64(i)*gap + off)
		}
		rival.SetY(math.Mod(t*speed/2, h+160) - 80)
		car.SetX(w/2 + road/4*math.Sin(t/25))
		car.SetAngle(12 * math.Cos(t/25))
	}, nil
}
