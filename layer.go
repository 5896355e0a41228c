package dyncanvas

import "github.com/gogpu/dyncanvas/raster"

// Layer is anything the canvas can composite. Render returns a surface the
// size of the canvas that is drawn at (0, 0) under the canvas zoom. A nil
// surface with a nil error draws nothing.
//
// Every shape in the shape package is a Layer.
type Layer interface {
	Render() (*raster.Surface, error)
}

// Resizer is implemented by layers whose buffers follow the canvas size.
type Resizer interface {
	Resize(width, height int)
}
