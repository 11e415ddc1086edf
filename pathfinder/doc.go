// Package pathfinder implements the Path finder (component C7 of the
// topola design): classic A* over the dual graph of a navmesh.Mesh,
// triangles as nodes and shared edges as arcs. It adapts a Mesh's
// triangle adjacency to gonum.org/v1/gonum/graph's interfaces and hands
// the search itself to gonum.org/v1/gonum/graph/path.AStar, the same way
// the teacher hands Dijkstra's heap bookkeeping to container/heap rather
// than reimplementing a priority queue by hand.
//
// The heuristic is Euclidean distance from a triangle's centroid to the
// target triangle's centroid; tie-breaking (lower cumulative cost, then
// smaller triangle id) is enforced by the adapter's edge weights rather
// than by gonum itself, since gonum's AStar has no notion of a secondary
// tie-break key.
package pathfinder

import "errors"

// ErrNoPath indicates the Path finder's open set emptied before reaching
// the target triangle (spec.md §4.7's NoPath).
var ErrNoPath = errors.New("pathfinder: no path exists")
