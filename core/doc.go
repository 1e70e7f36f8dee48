// Package core defines the fundamental types shared by every edgetrace
// package: Point, the read-only Image contract, EdgeTable (the ordered
// collection of traced edges) and EdgeMap (the per-pixel edge-id and
// cluster indices).
//
// EdgeTable and EdgeMap are deliberately "dumb": each enforces its own
// local invariants (tombstone handling on EdgeTable, cluster
// replication on EdgeMap) but knows nothing about tracing, merging, or
// the other orchestration performed by package tracer. Keeping them
// separate from the orchestration layer lets tracer expose only safe,
// paired mutations instead of handing out two sets of mutable
// references that could drift out of sync (see tracer's doc.go).
//
// Both structures index directly by pixel coordinate or edge id and
// trust the caller to stay in bounds; package tracer is the only
// caller and never passes a coordinate or id it hasn't itself derived
// from the image or the table's own Size.
package core
