// Package edgetrace turns a binary thinned image into a structured
// vector representation: an ordered set of pixel-chain edges plus the
// ambiguity clusters where those edges meet, fork, or cross.
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — Point, the read-only Image contract, EdgeTable, EdgeMap
//	geometry/ — least-squares line fit, edge/point-pair angle, Bresenham bridging
//	cluster/  — generalized grid connected-components scan (ambiguity clusters)
//	tracer/   — the Processor façade: trace, merge, bridge, connect, prune
//
// A typical pipeline traces an image, then runs whichever
// post-processing operations the caller's thinning noise calls for:
//
//	p := tracer.NewProcessor()
//	_ = p.TraceEdges(img)
//	_ = p.ConnectEdgesInClusters(5, 45)
//	_, _ = p.RemoveEdgesShorterThan(3)
//	_ = p.CleanUpEdges()
//
//	for id, edge := range p.EdgesView().All() {
//		_ = id
//		_ = edge
//	}
//
//	go get github.com/nullcluster/edgetrace
package edgetrace
