package cluster

import "github.com/nullcluster/edgetrace/core"

// Predicate reports whether p qualifies as a member of a component.
type Predicate func(p core.Point) bool

// Neighbors returns the candidate adjacent pixels of p to consider for
// component expansion. It need not be symmetric; Scan only follows it
// outward from already-admitted members.
type Neighbors func(p core.Point) []core.Point

// Scan sweeps a rows x cols grid in raster order and returns every
// connected component of pixels satisfying isMember. Each unvisited
// member pixel seeds a breadth-first expansion that admits every
// unvisited member appearing in neighbors(m) of an already-admitted
// member m; a pixel is visited by expansion from at most one seed. For
// a symmetric neighbor relation the components are maximal; for an
// asymmetric one, a member reachable only against the relation's
// direction ends up in a component of its own.
//
// Components are returned in the raster order of their seed pixel;
// within a component, points are in breadth-first discovery order.
func Scan(rows, cols int, isMember Predicate, neighbors Neighbors) [][]core.Point {
	seen := make([]bool, rows*cols)
	index := func(p core.Point) int { return p.Y*cols + p.X }

	var components [][]core.Point
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			seed := core.Point{X: x, Y: y}
			if seen[index(seed)] || !isMember(seed) {
				continue
			}

			component := []core.Point{seed}
			seen[index(seed)] = true
			for c := 0; c < len(component); c++ {
				for _, n := range neighbors(component[c]) {
					if n.X < 0 || n.X >= cols || n.Y < 0 || n.Y >= rows {
						continue // out-of-bounds candidates are silently dropped, never an error
					}
					if seen[index(n)] {
						continue
					}
					if !isMember(n) {
						continue
					}
					seen[index(n)] = true
					component = append(component, n)
				}
			}
			components = append(components, component)
		}
	}

	return components
}
