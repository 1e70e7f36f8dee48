// Package geometry provides the angular and discrete-line primitives
// the tracer's post-processing operations use to decide whether two
// edge endpoints continue one another: a least-squares line fit, the
// two angle conventions built on top of it, and Bresenham's line
// algorithm for materializing a bridging edge between two pixels.
//
// The line fit is a two-variable closed-form regression, not a
// general linear-algebra solve — there is no matrix to invert, so this
// package depends on nothing beyond math.
package geometry
