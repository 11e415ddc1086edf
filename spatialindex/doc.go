// Package spatialindex maintains a bounding-box index over layout
// primitives so that shove and navmesh queries can find nearby primitives
// in O(log n) instead of scanning the whole layout.
//
// It is a thin, id-keyed wrapper around github.com/tidwall/rtree's generic
// R-tree: every primitive is indexed by its inflated shape (the shape
// expanded by its clearance radius, see geom.Inflate), so a clearance-range
// query is just an AABB query against the tree.
//
// Lookup of an unknown id is always a hard error: it indicates the layout
// graph (C3) and the index have gone out of sync, which is a bug in the
// core, never a condition callers should try to recover from.
package spatialindex

import "errors"

// ErrUnknownID indicates an operation referenced an id that was never
// inserted (or was already removed). This always signals corruption
// between the layout graph and its spatial index; callers must treat it as
// fatal rather than attempt recovery.
var ErrUnknownID = errors.New("spatialindex: unknown primitive id")
