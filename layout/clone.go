package layout

import "github.com/katalvlaran/topola/geom"

// CloneEmpty returns a new Graph with the same clearance/bend-offset
// configuration but no dots, segs, or bends. Carries over nextID so a
// clone's future ids never collide with ids already issued to the
// original (mirrors the teacher's CloneEmpty carrying nextEdgeID).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithClearance(g.clearance), WithBendOffset(g.bendOffset))
	clone.debug = g.debug
	clone.nextID = g.nextID
	return clone
}

// Clone returns a deep copy of the Graph: every dot, seg, and bend, plus a
// freshly rebuilt spatial index. invoker uses Clone to snapshot state
// cheaply for history compaction; overlay uses it to inspect a consistent
// view without holding the live graph's lock for the duration of a
// read-only traversal.
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for id, d := range g.dots {
		nd := *d
		clone.dots[id] = &nd
		clone.segsByDot[id] = make(map[SegID]struct{})

		box, _ := geom.Inflate(nd.shape(), clone.clearance(nd.Layer))
		clone.index.Insert(dotShapeID(id), box)
	}
	for id, s := range g.segs {
		ns := *s
		clone.segs[id] = &ns
		clone.segsByDot[s.From][id] = struct{}{}
		clone.segsByDot[s.To][id] = struct{}{}

		box, _ := geom.Inflate(segShape(clone, &ns), clone.clearance(ns.Layer))
		clone.index.Insert(segShapeID(id), box)
	}
	for id, b := range g.bends {
		nb := *b
		clone.bends[id] = &nb
		if clone.bendsByCore[b.Core] == nil {
			clone.bendsByCore[b.Core] = make(map[BendID]struct{})
		}
		clone.bendsByCore[b.Core][id] = struct{}{}
		clone.bendOf[b.Inner] = id
		clone.bendOf[b.Outer] = id

		box, _ := geom.Inflate(bendShape(clone, &nb), clone.clearance(nb.Layer))
		clone.index.Insert(bendShapeID(id), box)
	}

	return clone
}

// RestoreFrom replaces g's entire arena state (dots, segs, bends, their
// secondary indexes, the spatial index, and nextID) with a fresh copy of
// snapshot's, in place: every other holder of g's pointer (invoker's
// navmesh.Mesh cache, any caller holding Graph()) observes the restored
// state immediately without needing a new pointer. snapshot is cloned
// again internally rather than adopted directly, so repeated restores
// from the same stored snapshot (e.g. undo, redo, undo) never share
// mutable maps with it.
//
// invoker uses this to move the live graph back to a Clone()'d
// before/after snapshot on Undo/Redo: since nothing is removed and
// re-added, every primitive keeps the exact id it had when the snapshot
// was taken, honoring spec.md §8's undo/redo round-trip law.
func (g *Graph) RestoreFrom(snapshot *Graph) {
	cp := snapshot.Clone()

	g.mu.Lock()
	defer g.mu.Unlock()

	g.clearance = cp.clearance
	g.bendOffset = cp.bendOffset
	g.debug = cp.debug
	g.nextID = cp.nextID
	g.dots = cp.dots
	g.segs = cp.segs
	g.bends = cp.bends
	g.segsByDot = cp.segsByDot
	g.bendsByCore = cp.bendsByCore
	g.bendOf = cp.bendOf
	g.index = cp.index
}
