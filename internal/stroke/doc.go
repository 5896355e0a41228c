// Package stroke expands stroked paths into filled outlines.
//
// A stroke becomes a fill path built from two offset paths: the forward
// path runs at -width/2 from the centerline, the backward path at +width/2.
// An open subpath is emitted as forward path, end cap, reversed backward
// path and start cap, closed into one loop. A closed subpath is emitted as
// two loops of opposite direction, so the region between them has nonzero
// winding and the interior has none.
//
// Caps are butt, round or square. Joins are miter (bounded by the miter
// limit, falling back to bevel), round or bevel. Round caps and joins are
// emitted as cubic arcs.
//
//	e := stroke.NewExpander(stroke.Style{Width: 4, Join: stroke.JoinRound})
//	outline := e.Expand([]stroke.Element{
//		stroke.MoveTo(geom.Pt(0, 0)),
//		stroke.LineTo(geom.Pt(100, 0)),
//		stroke.LineTo(geom.Pt(100, 100)),
//	})
//
// The outline is meant for a nonzero fill, such as the accumulation of
// golang.org/x/image/vector.
package stroke
