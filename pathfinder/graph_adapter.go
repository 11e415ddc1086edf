package pathfinder

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/navmesh"
)

// triangleNode adapts a navmesh triangle id to graph.Node.
type triangleNode int64

func (n triangleNode) ID() int64 { return int64(n) }

// triangleEdge adapts a navmesh triangle-to-triangle adjacency to
// graph.WeightedEdge.
type triangleEdge struct {
	f, t triangleNode
	w    float64
}

func (e triangleEdge) From() graph.Node         { return e.f }
func (e triangleEdge) To() graph.Node           { return e.t }
func (e triangleEdge) ReversedEdge() graph.Edge { return triangleEdge{f: e.t, t: e.f, w: e.w} }
func (e triangleEdge) Weight() float64          { return e.w }

// meshGraph adapts one (layer, net_id) triangulation of a navmesh.Mesh to
// gonum's graph.Weighted interface. Blocked triangles are simply absent
// from Nodes/From/Weight, which is what excludes them from the search
// entirely: navmesh.Mesh.Triangles(layer, netID) already computes
// Blocked relative to netID, so a triangle that is "blocked" here always
// means blocked by a genuinely different net, satisfying spec.md §4.7's
// "Blocked triangles are excluded unless they belong to the querying net".
type meshGraph struct {
	mesh  *navmesh.Mesh
	layer layout.Layer
	netID int32
}

func (g *meshGraph) triangle(id int64) (navmesh.Triangle, bool) {
	t, err := g.mesh.Triangle(g.layer, g.netID, int(id))
	if err != nil {
		return navmesh.Triangle{}, false
	}
	return t, true
}

func (g *meshGraph) Node(id int64) graph.Node {
	if _, ok := g.triangle(id); !ok {
		return nil
	}
	return triangleNode(id)
}

func (g *meshGraph) Nodes() graph.Nodes {
	tris, err := g.mesh.Triangles(g.layer, g.netID)
	if err != nil {
		return iterator.NewOrderedNodes(nil)
	}
	nodes := make([]graph.Node, 0, len(tris))
	for _, t := range tris {
		if !t.Blocked {
			nodes = append(nodes, triangleNode(t.ID))
		}
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *meshGraph) From(id int64) graph.Nodes {
	t, ok := g.triangle(id)
	if !ok {
		return iterator.NewOrderedNodes(nil)
	}
	var nodes []graph.Node
	for _, n := range t.Neighbors {
		if n < 0 {
			continue
		}
		if nt, ok := g.triangle(int64(n)); ok && !nt.Blocked {
			nodes = append(nodes, triangleNode(n))
		}
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g *meshGraph) HasEdgeBetween(xid, yid int64) bool {
	t, ok := g.triangle(xid)
	if !ok {
		return false
	}
	return t.EdgeTo(int(yid)) != -1
}

func (g *meshGraph) Edge(uid, vid int64) graph.Edge {
	return g.WeightedEdge(uid, vid)
}

func (g *meshGraph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	w, ok := g.Weight(uid, vid)
	if !ok {
		return nil
	}
	return triangleEdge{f: triangleNode(uid), t: triangleNode(vid), w: w}
}

// Weight returns the edge cost from triangle xid to triangle yid:
// Euclidean centroid distance plus the destination triangle's weight,
// per spec.md §4.7. A vanishingly small term proportional to yid breaks
// ties in favor of the smaller triangle id without meaningfully
// perturbing real costs, satisfying the "then smaller triangle id
// (stable)" tie-break spec.md names.
func (g *meshGraph) Weight(xid, yid int64) (float64, bool) {
	tx, ok := g.triangle(xid)
	if !ok {
		return 0, false
	}
	ty, ok := g.triangle(yid)
	if !ok || ty.Blocked {
		return 0, false
	}
	if tx.EdgeTo(int(yid)) == -1 {
		return 0, false
	}
	cost := tx.Centroid.DistanceTo(ty.Centroid) + ty.Weight
	cost += float64(yid) * 1e-9
	return cost, true
}
