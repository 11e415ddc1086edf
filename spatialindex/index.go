package spatialindex

import (
	"sort"

	"github.com/tidwall/rtree"

	"github.com/katalvlaran/topola/geom"
)

// Index is a bounding-box R-tree over layout primitives, keyed by ID.
// The zero value is not usable; construct with New.
type Index struct {
	tree    rtree.RTreeG[ID]
	entries map[ID]entry
}

// New returns an empty Index.
func New() *Index {
	return &Index{entries: make(map[ID]entry)}
}

// BulkLoad constructs an Index from a known set of (id, box) pairs by
// calling Insert for each pair in ascending id order.
func BulkLoad(boxes map[ID]geom.Rect) *Index {
	idx := New()
	// Deterministic insertion order keeps the resulting tree shape stable
	// across runs with the same input, which in turn keeps Query result
	// ordering (and therefore A* tie-breaks downstream) reproducible.
	ids := make([]ID, 0, len(boxes))
	for id := range boxes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		idx.Insert(id, boxes[id])
	}
	return idx
}

// Insert adds id with bounding box box. Inserting an id that is already
// present first removes the old entry (acts as Update).
func (idx *Index) Insert(id ID, box geom.Rect) {
	if old, ok := idx.entries[id]; ok {
		idx.tree.Delete(toMin(old.box), toMax(old.box), id)
	}
	idx.entries[id] = entry{box: box, data: id}
	idx.tree.Insert(toMin(box), toMax(box), id)
}

// Remove deletes id from the index. Returns ErrUnknownID if id was never
// inserted.
func (idx *Index) Remove(id ID) error {
	e, ok := idx.entries[id]
	if !ok {
		return ErrUnknownID
	}
	idx.tree.Delete(toMin(e.box), toMax(e.box), id)
	delete(idx.entries, id)
	return nil
}

// Update replaces id's bounding box. Equivalent to Remove followed by
// Insert, but validates presence first so the error matches Remove's.
func (idx *Index) Update(id ID, box geom.Rect) error {
	if _, ok := idx.entries[id]; !ok {
		return ErrUnknownID
	}
	idx.Insert(id, box)
	return nil
}

// Query returns every id whose bounding box intersects box, in ascending
// id order (deterministic for callers building A* tie-breaks on top).
func (idx *Index) Query(box geom.Rect) []ID {
	var out []ID
	idx.tree.Search(toMin(box), toMax(box), func(_, _ [2]float64, data ID) bool {
		out = append(out, data)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NearestK returns up to k ids whose boxes are nearest to point p, ordered
// by distance from p to each box's center, ascending.
func (idx *Index) NearestK(p geom.Point, k int) []ID {
	if k <= 0 {
		return nil
	}
	// tidwall/rtree has no native nearest-neighbor walk in the version
	// pinned here; a bounded expanding-box search is sufficient for our
	// workloads (shove/navmesh queries operate on local neighborhoods,
	// never whole-board scans) and keeps the dependency surface small.
	type cand struct {
		id   ID
		dist float64
	}
	var candidates []cand
	seen := make(map[ID]bool)
	radius := 1.0
	for tries := 0; tries < 40 && len(candidates) < k; tries++ {
		box := geom.Rect{MinX: p.X - radius, MinY: p.Y - radius, MaxX: p.X + radius, MaxY: p.Y + radius}
		candidates = candidates[:0]
		for id := range seen {
			delete(seen, id)
		}
		idx.tree.Search(toMin(box), toMax(box), func(_, _ [2]float64, data ID) bool {
			if seen[data] {
				return true
			}
			seen[data] = true
			c := idx.entries[data].box.Center()
			candidates = append(candidates, cand{id: data, dist: p.DistanceTo(c)})
			return true
		})
		radius *= 2
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	out := make([]ID, len(candidates))
	for i, c := range candidates {
		out[i] = c.id
	}
	return out
}

// Len returns the number of indexed ids.
func (idx *Index) Len() int { return len(idx.entries) }

func toMin(r geom.Rect) [2]float64 { return [2]float64{r.MinX, r.MinY} }
func toMax(r geom.Rect) [2]float64 { return [2]float64{r.MaxX, r.MaxY} }
