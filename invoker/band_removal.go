package invoker

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// hugeRect bounds a query intended to return every primitive in the
// graph, the same trick navmesh.snapshotLayer and router.collectDotPositions
// use in the absence of an "all primitives" enumerator on layout.Graph.
var hugeRect = geom.Rect{MinX: -1e12, MinY: -1e12, MaxX: 1e12, MaxY: 1e12}

type bandEdge struct {
	other layout.DotID
	ref   layout.Ref
}

// bandChain is one traced band: the ordered refs to remove (segs and
// bends, skipping straight through a bend's core since the core belongs
// to whatever it was wrapping, not to this band) and the intermediate
// loose dots to remove once those refs are gone.
type bandChain struct {
	refs      []layout.Ref
	looseDots []layout.DotID
}

// traceBand walks the band starting at start (expected to be a fixed
// dot) until it reaches the opposite fixed terminal, following seg
// From/To edges and bend Inner/Outer edges (a bend's Core is never
// traversed into; it is an external obstacle, not part of the band).
func traceBand(g *layout.Graph, start layout.DotID) (bandChain, error) {
	adj := buildBandAdjacency(g)

	var chain bandChain
	visited := map[layout.DotID]bool{start: true}
	cur := start

	for {
		var next *bandEdge
		for _, e := range adj[cur] {
			if !visited[e.other] {
				next = &e
				break
			}
		}
		if next == nil {
			break
		}
		visited[next.other] = true
		chain.refs = append(chain.refs, next.ref)

		d, err := g.Dot(next.other)
		if err != nil {
			return bandChain{}, err
		}
		if d.Fixed {
			break
		}
		chain.looseDots = append(chain.looseDots, next.other)
		cur = next.other
	}
	return chain, nil
}

func buildBandAdjacency(g *layout.Graph) map[layout.DotID][]bandEdge {
	adj := make(map[layout.DotID][]bandEdge)
	add := func(a, b layout.DotID, ref layout.Ref) {
		adj[a] = append(adj[a], bandEdge{other: b, ref: ref})
		adj[b] = append(adj[b], bandEdge{other: a, ref: ref})
	}
	for _, ref := range g.QueryBox(hugeRect) {
		switch ref.Kind {
		case layout.KindSeg:
			s, err := g.Seg(ref.Seg)
			if err != nil {
				continue
			}
			add(s.From, s.To, ref)
		case layout.KindBend:
			b, err := g.Bend(ref.Bend)
			if err != nil {
				continue
			}
			add(b.Inner, b.Outer, ref)
		}
	}
	return adj
}

type segSnapshot struct {
	from, to layout.DotID
	width    float64
	netID    int32
}

type bendSnapshot struct {
	core, inner, outer layout.DotID
	dir                geom.Winding
	netID              int32
}

type dotSnapshot struct {
	id     layout.DotID
	center geom.Point
	radius float64
	layer  layout.Layer
	netID  int32
}

// removeChainWithJournal removes every ref and loose dot in chain, in a
// dependency-safe order (segs/bends first, then the dots they
// referenced), recording an inverse in j that recreates them on rollback.
// The recreated loose dots get fresh ids (layout.DotID is never reused),
// so seg/bend recreation resolves endpoints through idMap, falling back
// to the original id when it names a dot that was never removed (a fixed
// terminal, or a bend's external core).
func removeChainWithJournal(g *layout.Graph, chain bandChain, j *journal) error {
	idMap := make(map[layout.DotID]layout.DotID)

	var segSnaps []segSnapshot
	var bendSnaps []bendSnapshot
	for _, ref := range chain.refs {
		switch ref.Kind {
		case layout.KindSeg:
			s, err := g.Seg(ref.Seg)
			if err != nil {
				return err
			}
			segSnaps = append(segSnaps, segSnapshot{from: s.From, to: s.To, width: s.Width, netID: s.NetID})
		case layout.KindBend:
			b, err := g.Bend(ref.Bend)
			if err != nil {
				return err
			}
			bendSnaps = append(bendSnaps, bendSnapshot{core: b.Core, inner: b.Inner, outer: b.Outer, dir: b.Dir, netID: b.NetID})
		}
	}

	var dotSnaps []dotSnapshot
	for _, id := range chain.looseDots {
		d, err := g.Dot(id)
		if err != nil {
			return err
		}
		dotSnaps = append(dotSnaps, dotSnapshot{id: id, center: d.Center, radius: d.Radius, layer: d.Layer, netID: d.NetID})
	}

	for _, ref := range chain.refs {
		if err := g.Remove(ref); err != nil {
			return err
		}
	}
	for _, id := range chain.looseDots {
		if err := g.Remove(layout.RefDot(id)); err != nil {
			return err
		}
	}

	// The dot entries are recorded last so that reverse-order rollback
	// recreates the dots before the segs and bends that reference them.
	var dotUndos []func() error
	for _, ds := range dotSnaps {
		ds := ds
		dotUndos = append(dotUndos, func() error {
			newID, err := g.AddLooseDot(ds.center, ds.radius, ds.layer, ds.netID)
			if err != nil {
				return err
			}
			idMap[ds.id] = newID
			return nil
		})
	}
	for _, ss := range segSnaps {
		ss := ss
		j.record(func() error {
			from := resolve(idMap, ss.from)
			to := resolve(idMap, ss.to)
			_, err := g.AddSeg(from, to, ss.width, ss.netID)
			return err
		})
	}
	for _, bs := range bendSnaps {
		bs := bs
		j.record(func() error {
			core := resolve(idMap, bs.core)
			inner := resolve(idMap, bs.inner)
			outer := resolve(idMap, bs.outer)
			_, err := g.AddBend(core, inner, outer, bs.dir, bs.netID)
			return err
		})
	}
	for _, u := range dotUndos {
		j.record(u)
	}
	return nil
}

func resolve(idMap map[layout.DotID]layout.DotID, id layout.DotID) layout.DotID {
	if mapped, ok := idMap[id]; ok {
		return mapped
	}
	return id
}
