// Package raster is the immediate-mode canvas underneath the scene graph.
//
// A [Surface] is an RGBA pixel buffer. A [Context] draws onto one surface with
// an API modelled on the HTML canvas: a current transformation matrix with a
// save/restore stack, a current path built from MoveTo/LineTo/CubicTo, fill
// and stroke brushes, clear-rect, bitmap drawing and surface compositing.
//
// # Quick Start
//
//	dc := raster.NewContext(320, 240)
//
//	dc.SetFillColor(color.RGBA{R: 255, A: 255})
//	_ = dc.FillRect(10, 10, 100, 50)
//
//	dc.SetStrokeColor(color.Black)
//	dc.SetLineWidth(2)
//	dc.MoveTo(0, 0)
//	dc.CubicTo(40, 80, 120, -40, 160, 40)
//	_ = dc.Stroke()
//
//	_ = dc.Surface().SavePNG("out.png")
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner, X grows right and Y grows down.
// Angles passed to [Context.Rotate] are radians; positive angles turn
// clockwise on screen.
//
// # Rasterization
//
// Fills and strokes are rasterized with golang.org/x/image/vector using
// non-zero style coverage. Strokes are expanded into outline polygons (segment
// bodies, joins and caps) before rasterization. Bitmaps and surfaces
// are resampled with golang.org/x/image/draw when the transform is more than
// an integer translation.
package raster
