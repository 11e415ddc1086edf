package pathfinder

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/navmesh"
)

// FindPath runs A* from startTriangle to targetTriangle over mesh's
// (layer, net_id) triangulation, returning the ordered triangle sequence
// T0...Tn the Router then converts into funnel steps. Returns ErrNoPath
// if the open set empties before reaching targetTriangle.
func FindPath(mesh *navmesh.Mesh, layer layout.Layer, netID int32, startTriangle, targetTriangle int) ([]navmesh.Triangle, error) {
	g := &meshGraph{mesh: mesh, layer: layer, netID: netID}

	start := g.Node(int64(startTriangle))
	target := g.Node(int64(targetTriangle))
	if start == nil || target == nil {
		return nil, ErrNoPath
	}

	heuristic := func(x, y graph.Node) float64 {
		tx, okx := g.triangle(x.ID())
		ty, oky := g.triangle(y.ID())
		if !okx || !oky {
			return 0
		}
		return tx.Centroid.DistanceTo(ty.Centroid)
	}

	shortest, _ := path.AStar(start, target, g, heuristic)
	nodes, _ := shortest.To(target.ID())
	if len(nodes) == 0 {
		return nil, ErrNoPath
	}

	result := make([]navmesh.Triangle, len(nodes))
	for i, n := range nodes {
		t, ok := g.triangle(n.ID())
		if !ok {
			return nil, ErrNoPath
		}
		result[i] = t
	}
	return result, nil
}
