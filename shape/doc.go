// Package shape provides the retained scene-graph nodes drawn by a
// dyncanvas.Canvas.
//
// Every shape embeds [Base], which stores position, bounding box, rotation,
// scale, flip, origin and fill, and renders the shape into a private
// [raster.Surface] the size of the reference surface. Setters mark the shape
// dirty; a static shape redraws only when dirty, other shapes redraw on
// every Render.
//
// The transform pipeline rotates about (X, Y), then scales about (X, Y),
// with a negative factor on each flipped axis. Geometry is drawn relative to
// the origin: a shape with origin "left top" has its top-left corner at
// (X, Y), one with the default "center center" is centered there.
//
// Shapes: [Rectangle], [Ellipse], [Circle], [Square], [Path] and [Image].
//
// Shapes are not safe for concurrent use. [Image] loads bitmaps on a
// background goroutine and hands the result to the next Render.
package shape
