package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Surface is a rectangular RGBA pixel buffer with premultiplied alpha.
// The zero Surface has no pixels.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a transparent surface. Negative dimensions are
// treated as zero.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int {
	if s == nil || s.img == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int {
	if s == nil || s.img == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

// Image returns the backing image. It shares memory with the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Bounds returns the pixel rectangle of the surface.
func (s *Surface) Bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Rect
}

// Empty reports whether the surface has no pixels.
func (s *Surface) Empty() bool {
	return s.Width() == 0 || s.Height() == 0
}

// IsTransparent reports whether every pixel has zero alpha. A surface with
// no pixels is transparent.
func (s *Surface) IsTransparent() bool {
	if s == nil || s.img == nil {
		return true
	}
	for i := 3; i < len(s.img.Pix); i += 4 {
		if s.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	if s.img != nil {
		clear(s.img.Pix)
	}
}

// Fill sets every pixel to c, replacing what was there.
func (s *Surface) Fill(c color.Color) {
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// ClearRect makes the pixels in r transparent. r is clipped to the surface.
func (s *Surface) ClearRect(r image.Rectangle) {
	if s.img == nil {
		return
	}
	r = r.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// Pixel returns the non-premultiplied color at (x, y). Pixels outside the
// surface are transparent.
func (s *Surface) Pixel(x, y int) color.NRGBA {
	if s.img == nil || !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(s.img.RGBAAt(x, y)).(color.NRGBA)
}

// Resize reallocates the pixel buffer. The contents are discarded.
// Resizing to the current size keeps the buffer and its pixels.
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.img != nil && s.Width() == width && s.Height() == height {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.img == nil {
		return png.Encode(w, image.NewRGBA(image.Rectangle{}))
	}
	return png.Encode(w, s.img)
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
