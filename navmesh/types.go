package navmesh

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// Triangle is one face of a built Mesh: three vertices, up to three
// neighbor triangle ids (one across each edge, -1 if the edge is a mesh
// boundary), a traversal weight, and whether it is blocked.
type Triangle struct {
	ID        int
	Vertices  [3]geom.Point
	Neighbors [3]int
	Centroid  geom.Point
	Weight    float64
	Blocked   bool
}

// EdgeTo returns the index (0, 1, or 2) of the edge shared with neighbor
// triangle id, or -1 if t is not adjacent to it.
func (t Triangle) EdgeTo(neighborID int) int {
	for i, n := range t.Neighbors {
		if n == neighborID {
			return i
		}
	}
	return -1
}

// key identifies one cached, independently-rebuildable mesh.
type key struct {
	layer layout.Layer
	netID int32
}

// CostFunc maps a triangle's raw weight (max(0, ideal_width -
// local_clearance), per spec.md §4.6) through a convex cost used as the
// Path finder's edge weight contribution. The default, SquaredCost,
// penalizes tight triangles superlinearly so the A* search prefers a
// slightly longer path through open triangles over a short path through a
// sequence of cramped ones.
type CostFunc func(weight float64) float64

// SquaredCost is the default CostFunc: weight^2.
func SquaredCost(weight float64) float64 { return weight * weight }
