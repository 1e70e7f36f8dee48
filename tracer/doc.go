// Package tracer is the orchestration layer that turns a binary pixel
// grid into a structured vector representation: it runs cluster
// preprocessing, performs the recursive trace, and implements the
// merge, bridge, connect, close, and prune operations that manipulate
// the result.
//
// Processor is a façade over core.EdgeTable and core.EdgeMap. The two
// are kept consistent by convention: every mutation of an edge's
// identifier or pixel set is paired with the matching EdgeMap update in
// the same orchestrator step, and Processor never hands out raw
// mutable references to both structures at once — callers get EdgesView
// and EdgeMapView, read-only projections safe to pass to an external
// renderer after processing completes.
//
// Complexity: tracing is O(pixels) amortized (each pixel is visited by
// expansion from at most one seed, both for cluster preprocessing and
// for the trace itself). The post-processing operations are bounded by
// the image size times the configured search radius or pixel-count
// window; none of them is documented as sub-quadratic and none needs
// to be for the sizes this system targets.
//
// Errors: the only error that crosses this package's public boundary
// is ErrInvalidState, returned when a post-processing operation is
// called before TraceEdges. A handful of other conditions are treated
// as diagnostics rather than failures (merging an edge with itself, a
// fall-through merge with no matching endpoints): these are logged via
// the standard log package and otherwise absorbed.
package tracer
