package shape

import "github.com/gogpu/dyncanvas/raster"

// RectangleConfig configures a Rectangle.
type RectangleConfig struct {
	Config
	Stroke Stroke
}

// Rectangle is an axis-aligned box in shape space, turned and scaled by the
// shape transform.
type Rectangle struct {
	Base
	stroke Stroke
}

// NewRectangle creates a rectangle whose buffer matches ref.
func NewRectangle(ref Sizer, cfg RectangleConfig) (*Rectangle, error) {
	b, err := newBase("rectangle", ref, cfg.Config)
	if err != nil {
		return nil, err
	}
	r := &Rectangle{Base: b, stroke: cfg.Stroke}
	r.draw = r.drawRect
	return r, nil
}

// Stroke returns the outline style.
func (r *Rectangle) Stroke() Stroke { return r.stroke }

// SetStroke sets the outline style.
func (r *Rectangle) SetStroke(s Stroke) {
	r.stroke = s
	r.dirty = true
}

func (r *Rectangle) drawRect(ctx *raster.Context) error {
	tl := r.topLeft()
	if brush := r.fillBrush(); brush != nil {
		ctx.SetFillBrush(brush)
		if err := ctx.FillRect(tl.X, tl.Y, r.width, r.height); err != nil {
			return err
		}
	}
	return strokeRect(ctx, r.stroke, tl.X, tl.Y, r.width, r.height)
}

// strokeRect outlines the box, grown or shrunk per the stroke alignment.
func strokeRect(ctx *raster.Context, s Stroke, x, y, w, h float64) error {
	if !s.visible() {
		return nil
	}
	d := s.inset()
	ctx.SetStrokeColor(s.Color)
	ctx.SetLineWidth(s.Width)
	return ctx.StrokeRect(x-d, y-d, w+2*d, h+2*d)
}
