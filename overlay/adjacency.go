package overlay

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// hugeRect covers the entire working area; overlay, like router and
// invoker, has no narrower way to enumerate every primitive on a layer
// since layout.Graph exposes query-by-region but not query-everything.
var hugeRect = geom.Rect{MinX: -1e12, MinY: -1e12, MaxX: 1e12, MaxY: 1e12}

// edge is one hop in a band's connectivity graph: the neighboring dot and
// the Ref (seg or bend) that joins them.
type edge struct {
	other layout.DotID
	ref   layout.Ref
}

// buildBandAdjacency walks every seg and bend on layer and returns, for
// each dot, its band-connectivity edges. A bend contributes only an
// Inner<->Outer edge: its Core dot is the obstacle the bend wraps, never
// a member of the band itself, matching invoker's band-tracing rule.
func buildBandAdjacency(g *layout.Graph, layer layout.Layer) map[layout.DotID][]edge {
	adj := make(map[layout.DotID][]edge)
	add := func(a, b layout.DotID, ref layout.Ref) {
		adj[a] = append(adj[a], edge{other: b, ref: ref})
		adj[b] = append(adj[b], edge{other: a, ref: ref})
	}
	for _, ref := range g.QueryBox(hugeRect) {
		switch ref.Kind {
		case layout.KindSeg:
			s, err := g.Seg(ref.Seg)
			if err != nil {
				continue
			}
			if s.Layer != layer {
				continue
			}
			add(s.From, s.To, ref)
		case layout.KindBend:
			b, err := g.Bend(ref.Bend)
			if err != nil {
				continue
			}
			if b.Layer != layer {
				continue
			}
			add(b.Inner, b.Outer, ref)
		}
	}
	return adj
}

// tracePath returns the chain of Refs connecting from to to, walking the
// band adjacency built from g. It is a plain BFS shortest hop-count path,
// sufficient here since a band has exactly one path between any two of
// its own dots (no cycles by construction).
func tracePath(g *layout.Graph, layer layout.Layer, from, to layout.DotID) ([]layout.Ref, bool) {
	adj := buildBandAdjacency(g, layer)
	type step struct {
		dot  layout.DotID
		ref  layout.Ref
		prev *step
	}
	visited := map[layout.DotID]bool{from: true}
	queue := []*step{{dot: from}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.dot == to {
			var refs []layout.Ref
			for s := cur; s.prev != nil; s = s.prev {
				refs = append([]layout.Ref{s.ref}, refs...)
			}
			return refs, true
		}
		for _, e := range adj[cur.dot] {
			if visited[e.other] {
				continue
			}
			visited[e.other] = true
			queue = append(queue, &step{dot: e.other, ref: e.ref, prev: cur})
		}
	}
	return nil, false
}

// pathLength sums the straight/arc length of every Ref in path.
func pathLength(g *layout.Graph, path []layout.Ref) (float64, error) {
	var total float64
	for _, ref := range path {
		switch ref.Kind {
		case layout.KindSeg:
			seg, err := g.SegShape(ref.Seg)
			if err != nil {
				return 0, err
			}
			total += seg.Length()
		case layout.KindBend:
			b, err := g.Bend(ref.Bend)
			if err != nil {
				return 0, err
			}
			core, err := g.Dot(b.Core)
			if err != nil {
				return 0, err
			}
			inner, err := g.Dot(b.Inner)
			if err != nil {
				return 0, err
			}
			outer, err := g.Dot(b.Outer)
			if err != nil {
				return 0, err
			}
			arc, err := geom.BuildArc(core.Center, b.Radius, inner.Center, outer.Center, b.Dir)
			if err != nil {
				return 0, err
			}
			total += arc.Length()
		}
	}
	return total, nil
}
