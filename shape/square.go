package shape

import "fmt"

// SquareConfig configures a Square. Size must be positive; Width and Height
// in Config are ignored.
type SquareConfig struct {
	Config
	Size   float64
	Stroke Stroke
}

// Square is a Rectangle whose width and height are kept equal.
type Square struct {
	Rectangle
}

// NewSquare creates a square whose buffer matches ref.
func NewSquare(ref Sizer, cfg SquareConfig) (*Square, error) {
	if !(cfg.Size > 0) {
		return nil, fmt.Errorf("%w: square needs a positive size", ErrInvalidDimension)
	}
	cfg.Width, cfg.Height = cfg.Size, cfg.Size
	b, err := newBase("square", ref, cfg.Config)
	if err != nil {
		return nil, err
	}
	s := &Square{Rectangle: Rectangle{Base: b, stroke: cfg.Stroke}}
	s.draw = s.drawRect
	return s, nil
}

// Size returns the side length.
func (s *Square) Size() float64 { return s.width }

// SetSize sets width and height to size.
func (s *Square) SetSize(size float64) {
	s.Base.SetSize(size, size)
}

// SetWidth sets the side length, so the height follows.
func (s *Square) SetWidth(size float64) { s.Base.SetSize(size, size) }

// SetHeight sets the side length, so the width follows.
func (s *Square) SetHeight(size float64) { s.Base.SetSize(size, size) }
