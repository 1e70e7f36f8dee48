package tracer

import (
	"fmt"

	"github.com/nullcluster/edgetrace/cluster"
	"github.com/nullcluster/edgetrace/core"
)

// Processor is the EdgeTable/EdgeMap façade: it owns both structures
// for the duration of a processing session and exposes only paired
// mutations, never raw mutable references to both sides at once.
type Processor struct {
	edges   *core.EdgeTable
	edgeMap *core.EdgeMap
	traced  bool
}

// NewProcessor returns an idle Processor. Call TraceEdges before any
// other operation; every post-processing method returns
// ErrInvalidState until then.
func NewProcessor() *Processor {
	return &Processor{
		edges:   core.NewEdgeTable(),
		edgeMap: core.NewEdgeMap(0, 0),
	}
}

// TraceEdges resets the processor's state, runs cluster preprocessing
// over img, then sweeps it in raster order so every unvisited edge
// pixel outside a cluster seeds a trace.
func (p *Processor) TraceEdges(img core.Image) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidState)
	}

	rows, cols := img.Rows(), img.Cols()
	p.edges.Clear()
	p.edgeMap.Init(rows, cols)
	p.traced = false

	p.preprocessClusters(img)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pt := core.Point{X: x, Y: y}
			if core.IsEdgePixel(img, x, y) && p.edgeMap.NumEdgeIDs(pt) == 0 && !p.edgeMap.IsCluster(pt) {
				p.traceFrom(img, pt)
			}
		}
	}

	p.traced = true

	return nil
}

// EdgesView returns a read-only projection of the traced edges.
func (p *Processor) EdgesView() EdgesView {
	return EdgesView{table: p.edges}
}

// EdgeMapView returns a read-only projection of the per-pixel edge-id
// and cluster indices.
func (p *Processor) EdgeMapView() EdgeMapView {
	return EdgeMapView{m: p.edgeMap}
}

// Stats reports the number of edge pixels in img (if non-nil) and the
// number of traced edges and points currently held, mirroring
// EdgeProcessor::printEdgeInfos.
func (p *Processor) Stats(img core.Image) (imagePixels, numEdges, numPoints int) {
	if img != nil {
		for y := 0; y < img.Rows(); y++ {
			for x := 0; x < img.Cols(); x++ {
				if core.IsEdgePixel(img, x, y) {
					imagePixels++
				}
			}
		}
	}

	numEdges, numPoints = p.edges.Stats()

	return imagePixels, numEdges, numPoints
}

func (p *Processor) requireTraced() error {
	if !p.traced {
		return fmt.Errorf("%w: post-processing called before TraceEdges", ErrInvalidState)
	}

	return nil
}

func isClusterPoint(img core.Image, pt core.Point) bool {
	if len(core.DirectNeighbors(img, pt)) > 2 {
		return true
	}

	return core.ContainsFourCluster(core.BinaryCode(img, pt))
}

// preprocessClusters populates the cluster index with a single
// cluster.Scan call, using the cluster-point predicate and the
// direct-neighbor relation as its membership and expansion rules.
func (p *Processor) preprocessClusters(img core.Image) {
	isMember := func(pt core.Point) bool {
		return core.IsEdgePixel(img, pt.X, pt.Y) && isClusterPoint(img, pt)
	}
	neighbors := func(pt core.Point) []core.Point {
		return core.DirectNeighbors(img, pt)
	}

	for _, component := range cluster.Scan(img.Rows(), img.Cols(), isMember, neighbors) {
		for _, member := range component {
			p.edgeMap.SetClusterPoints(member, component)
		}
	}
}

// overlayImage unions a base image with a set of additional edge
// pixels, used by ResetClusters to rebuild clusters against both the
// input image and the edges traced so far.
type overlayImage struct {
	base  core.Image
	extra map[core.Point]struct{}
}

func (o *overlayImage) Rows() int { return o.base.Rows() }
func (o *overlayImage) Cols() int { return o.base.Cols() }

func (o *overlayImage) PixelAt(x, y int) uint8 {
	if v := o.base.PixelAt(x, y); v > 0 {
		return v
	}
	if _, ok := o.extra[core.Point{X: x, Y: y}]; ok {
		return 1
	}

	return 0
}

// ResetClusters rebuilds the cluster index from scratch against img
// unioned with every pixel of every currently-traced edge.
func (p *Processor) ResetClusters(img core.Image) error {
	if err := p.requireTraced(); err != nil {
		return err
	}

	p.edgeMap.ResetClusterMap()

	extra := make(map[core.Point]struct{})
	for _, edge := range p.edges.AllEdges() {
		for _, pt := range edge {
			extra[pt] = struct{}{}
		}
	}

	p.preprocessClusters(&overlayImage{base: img, extra: extra})

	return nil
}

// CleanUpEdges compacts EdgeTable and rebuilds the edge-id index from
// the surviving, renumbered edges.
func (p *Processor) CleanUpEdges() error {
	if err := p.requireTraced(); err != nil {
		return err
	}

	p.edges.EraseEmptyEdges()
	p.edgeMap.ResetEdgeIDMap()

	for id, edge := range p.edges.AllEdges() {
		for _, pt := range edge {
			p.edgeMap.PushEdgeID(pt, id)
		}
	}

	return nil
}

// ReverseAllEdges reverses the point order of every traced edge.
func (p *Processor) ReverseAllEdges() error {
	if err := p.requireTraced(); err != nil {
		return err
	}

	p.edges.ReverseAll()

	return nil
}
