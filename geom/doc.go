// Package geom holds the small amount of plane geometry the scene graph needs:
// degree/radian conversion, polar handle offsets, distances and the two
// tangent smoothing algorithms used by bezier paths.
//
// Points and vectors are gonum's [r2.Vec]. Angles cross package boundaries in
// degrees, measured clockwise from the positive X axis because Y grows
// downward, and are normalized to [0, 360).
package geom
