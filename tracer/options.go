package tracer

// Options collects every tunable parameter named by the post-processing
// operations: continuity-cost weights, the search window used by
// bridging and connection, and the free/dangling/bridged class
// selectors used by the two length-based pruning operations. Every
// operation reads only the fields it needs; the rest keep their
// defaults.
type Options struct {
	// N is the number of pixels walked from a connection point when
	// fitting its tangent angle.
	N int

	// ThresholdAngle is the maximum angular mismatch, in degrees, at
	// which two candidate endpoints are still considered continuous.
	ThresholdAngle float64

	// Alpha weights angular mismatch in the connection cost function
	// C = alpha*angleDiff + beta*distance.
	Alpha float64

	// Beta weights pixel distance in the connection cost function.
	Beta float64

	// BlockDistance is the Chebyshev search radius bridge_edge_gaps
	// considers around a reference endpoint.
	BlockDistance int

	// ConnectSameEdge allows connect_edges_in_clusters to close an
	// edge against itself (excluding three-pixel-L self-connections).
	ConnectSameEdge bool

	// OnlyIf8Neighbors restricts connect_edges_in_two_edge_clusters to
	// connection points that are already 8-neighbors.
	OnlyIf8Neighbors bool

	// DeleteClustersAfterConnect clears the cluster once its two
	// edges have been merged.
	DeleteClustersAfterConnect bool

	// Free, Dangling, Bridged select which edge classes the
	// length-based pruning operations remove, classified by how many
	// endpoints lie in a cluster (0, 1, 2 respectively).
	Free, Dangling, Bridged bool
}

// Option configures a post-processing operation via functional
// arguments.
type Option func(*Options)

// defaultOptions supplies the values used when a caller does not set a
// given field explicitly. N and ThresholdAngle are always overwritten
// by the operations that treat them as required parameters; the
// remaining fields keep these defaults unless overridden.
func defaultOptions() Options {
	return Options{
		N:                          5,
		ThresholdAngle:             45,
		Alpha:                      1.0,
		Beta:                       1.0,
		BlockDistance:              5,
		ConnectSameEdge:            true,
		OnlyIf8Neighbors:           false,
		DeleteClustersAfterConnect: false,
		Free:                       true,
		Dangling:                   true,
		Bridged:                    false,
	}
}

func applyOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		opt(&base)
	}

	return base
}

// WithN sets the number of pixels used to fit a connection point's
// tangent angle. The operations that take n as a parameter overwrite
// this value with their argument.
func WithN(n int) Option {
	return func(o *Options) { o.N = n }
}

// WithThresholdAngle sets the maximum angular mismatch, in degrees,
// for a pair of endpoints to be considered continuous. The operations
// that take thresholdAngle as a parameter overwrite this value with
// their argument.
func WithThresholdAngle(deg float64) Option {
	return func(o *Options) { o.ThresholdAngle = deg }
}

// WithAlpha sets the angular-mismatch weight in the connection cost.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithBeta sets the distance weight in the connection cost.
func WithBeta(b float64) Option {
	return func(o *Options) { o.Beta = b }
}

// WithBlockDistance sets the Chebyshev search radius for bridge_edge_gaps.
func WithBlockDistance(d int) Option {
	return func(o *Options) { o.BlockDistance = d }
}

// WithConnectSameEdge toggles whether an edge may close against itself.
func WithConnectSameEdge(v bool) Option {
	return func(o *Options) { o.ConnectSameEdge = v }
}

// WithOnlyIf8Neighbors restricts two-edge cluster connection to
// endpoints that are already 8-neighbors.
func WithOnlyIf8Neighbors(v bool) Option {
	return func(o *Options) { o.OnlyIf8Neighbors = v }
}

// WithDeleteClustersAfterConnect clears a cluster once its two edges
// have been merged.
func WithDeleteClustersAfterConnect(v bool) Option {
	return func(o *Options) { o.DeleteClustersAfterConnect = v }
}

// WithFree selects whether free-standing edges (no endpoint in a
// cluster) are eligible for length-based removal.
func WithFree(v bool) Option {
	return func(o *Options) { o.Free = v }
}

// WithDangling selects whether dangling edges (exactly one endpoint in
// a cluster) are eligible for length-based removal.
func WithDangling(v bool) Option {
	return func(o *Options) { o.Dangling = v }
}

// WithBridged selects whether bridged edges (both endpoints in a
// cluster) are eligible for length-based removal.
func WithBridged(v bool) Option {
	return func(o *Options) { o.Bridged = v }
}
