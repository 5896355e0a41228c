package shape

import "github.com/gogpu/dyncanvas/raster"

// EllipseConfig configures an Ellipse.
type EllipseConfig struct {
	Config
	Stroke Stroke
}

// Ellipse is the ellipse inscribed in the shape's bounding box.
type Ellipse struct {
	Base
	stroke Stroke
}

// NewEllipse creates an ellipse whose buffer matches ref.
func NewEllipse(ref Sizer, cfg EllipseConfig) (*Ellipse, error) {
	b, err := newBase("ellipse", ref, cfg.Config)
	if err != nil {
		return nil, err
	}
	e := &Ellipse{Base: b, stroke: cfg.Stroke}
	e.draw = e.drawEllipse
	return e, nil
}

// Stroke returns the outline style.
func (e *Ellipse) Stroke() Stroke { return e.stroke }

// SetStroke sets the outline style.
func (e *Ellipse) SetStroke(s Stroke) {
	e.stroke = s
	e.dirty = true
}

func (e *Ellipse) drawEllipse(ctx *raster.Context) error {
	c := e.center()
	rx, ry := e.width/2, e.height/2
	if e.stroke.visible() {
		d := e.stroke.inset()
		rx = max(rx+d, 0)
		ry = max(ry+d, 0)
	}

	ctx.ClearPath()
	ctx.Ellipse(c.X, c.Y, rx, ry)
	if brush := e.fillBrush(); brush != nil {
		ctx.SetFillBrush(brush)
		if err := ctx.FillPreserve(); err != nil {
			return err
		}
	}
	if e.stroke.visible() {
		ctx.SetStrokeColor(e.stroke.Color)
		ctx.SetLineWidth(e.stroke.Width)
		if err := ctx.StrokePreserve(); err != nil {
			return err
		}
	}
	ctx.ClearPath()
	return nil
}
