// Package navmesh implements the triangulated navigation mesh (component
// C6 of the topola design) the Path finder searches over. A Mesh is
// rebuilt on demand, lazily, per (layer, net_id) query: vertices are every
// dot center on the layer plus Steiner points sampled along each bend
// arc's midpoint and endpoints, triangulated with
// github.com/fogleman/delaunay (an unconstrained Delaunay triangulation —
// true constrained-edge insertion is not in that library's surface, so
// navmesh approximates the seg/bend constraint edges spec.md §4.6 calls
// for by marking triangles blocked post-triangulation rather than forcing
// the triangulation itself to respect them; see DESIGN.md).
//
// Each triangle carries a weight derived from how tight its local
// clearance is, mapped through a pluggable convex CostFunc, and a blocked
// flag when its interior falls inside another net's existing band.
package navmesh

import "errors"

// Sentinel errors returned by Mesh's build and query operations.
var (
	// ErrTooFewVertices indicates fewer than 3 vertices are available on
	// the requested (layer, net_id), so no triangulation is possible.
	ErrTooFewVertices = errors.New("navmesh: fewer than 3 vertices to triangulate")
	// ErrTriangleNotFound indicates a triangle id does not exist in the
	// most recently built mesh for the requested (layer, net_id).
	ErrTriangleNotFound = errors.New("navmesh: triangle not found")
)
