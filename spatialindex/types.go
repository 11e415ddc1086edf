package spatialindex

import "github.com/katalvlaran/topola/geom"

// ID identifies one indexed primitive. Callers (layout.Graph) use their own
// dense arena indices as ID; spatialindex never interprets it beyond using
// it as a map key.
type ID uint64

// entry records what we told the R-tree about one id, so Remove and Update
// can issue the matching delete (tidwall/rtree's Delete needs the exact
// bounds that were inserted).
type entry struct {
	box  geom.Rect
	data ID
}
