package shape

import "fmt"

// CircleConfig configures a Circle. Either Radius or Diameter must be
// positive; when both are set Diameter wins. Width and Height in Config are
// ignored.
type CircleConfig struct {
	Config
	Radius   float64
	Diameter float64
	Stroke   Stroke
}

// Circle is an Ellipse whose width and height are kept equal.
type Circle struct {
	Ellipse
}

// NewCircle creates a circle whose buffer matches ref.
func NewCircle(ref Sizer, cfg CircleConfig) (*Circle, error) {
	d := 2 * cfg.Radius
	if cfg.Diameter > 0 {
		d = cfg.Diameter
	}
	if !(d > 0) {
		return nil, fmt.Errorf("%w: circle needs a positive radius or diameter", ErrInvalidDimension)
	}
	cfg.Width, cfg.Height = d, d
	b, err := newBase("circle", ref, cfg.Config)
	if err != nil {
		return nil, err
	}
	c := &Circle{Ellipse: Ellipse{Base: b, stroke: cfg.Stroke}}
	c.draw = c.drawEllipse
	return c, nil
}

// Radius returns half the diameter.
func (c *Circle) Radius() float64 { return c.width / 2 }

// SetRadius sets the radius; width and height become 2r.
func (c *Circle) SetRadius(r float64) {
	c.Base.SetSize(2*r, 2*r)
}

// Diameter returns the width of the circle.
func (c *Circle) Diameter() float64 { return c.width }

// SetDiameter sets the diameter; width and height become d.
func (c *Circle) SetDiameter(d float64) {
	c.Base.SetSize(d, d)
}

// SetSize sets the diameter.
func (c *Circle) SetSize(d float64) { c.Base.SetSize(d, d) }

// SetWidth sets the diameter, so the height follows.
func (c *Circle) SetWidth(d float64) { c.Base.SetSize(d, d) }

// SetHeight sets the diameter, so the width follows.
func (c *Circle) SetHeight(d float64) { c.Base.SetSize(d, d) }
