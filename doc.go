// Package dyncanvas is a retained-mode 2D scene graph over an
// immediate-mode raster canvas.
//
// Shapes from the shape package keep their geometry, transform and fill as
// attributes and render themselves into private buffers. A [Canvas] owns the
// target surface and composites the buffers of its layers every frame,
// optionally under a zoom about the canvas center.
//
// # Quick Start
//
//	c := dyncanvas.New(640, 480, dyncanvas.WithZoom(dyncanvas.ZoomConfig{}))
//
//	rect, _ := shape.NewRectangle(c, shape.RectangleConfig{
//		Config: shape.Config{X: 320, Y: 240, Width: 200, Height: 100,
//			Fill: shape.Color{Color: color.RGBA{R: 255, A: 255}}},
//	})
//	c.Add(rect)
//
//	for range 60 {
//		rect.SetAngle(rect.Angle() + 6)
//		if err := c.Tick(); err != nil {
//			log.Print(err)
//		}
//	}
//	_ = c.Surface().SavePNG("frame.png")
//
// # Packages
//
//   - geom: vectors, polar handles and the smoothing algorithms
//   - raster: the immediate-mode canvas (Surface, Context, Brush)
//   - shape: rectangles, ellipses, circles, squares, paths and images
//
// # Logging
//
// Logging goes through log/slog and is silent until [SetLogger] is called.
// Sub-packages share the logger returned by [Logger].
//
// # Concurrency
//
// A Canvas and its shapes belong to one goroutine. Image loading is the only
// background work; its results are picked up by the next render.
package dyncanvas
