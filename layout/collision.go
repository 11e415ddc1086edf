package layout

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/spatialindex"
)

// refInfo returns the layer, net, and geometric shape of a Ref.
func (g *Graph) refInfo(r Ref) (Layer, int32, interface{}, bool) {
	switch r.Kind {
	case KindDot:
		d, ok := g.dots[r.Dot]
		if !ok {
			return 0, 0, nil, false
		}
		return d.Layer, d.NetID, d.shape(), true
	case KindSeg:
		s, ok := g.segs[r.Seg]
		if !ok {
			return 0, 0, nil, false
		}
		return s.Layer, s.NetID, segShape(g, s), true
	case KindBend:
		b, ok := g.bends[r.Bend]
		if !ok {
			return 0, 0, nil, false
		}
		return b.Layer, b.NetID, bendShape(g, b), true
	}
	return 0, 0, nil, false
}

func decodeShapeID(id spatialindex.ID) Ref {
	kind := id & 3
	raw := id >> 2
	switch kind {
	case 0:
		return RefDot(DotID(raw))
	case 1:
		return RefSeg(SegID(raw))
	default:
		return RefBend(BendID(raw))
	}
}

// findCollision is findCollisionExcluding with no exclusions besides self.
func (g *Graph) findCollision(shape interface{}, layer Layer, netID int32, self Ref) error {
	exclude := map[Ref]bool{self: true}
	return g.findCollisionExcluding(shape, layer, netID, exclude)
}

// findCollisionExcluding returns a *WouldCollideError naming the first
// other-net primitive (not in exclude) whose distance to shape is less
// than the layer's clearance, or nil if none. Queries the spatial index
// restricted to shape's inflated bounding box, then re-checks exact
// geometric distance (the index only narrows candidates by AABB).
func (g *Graph) findCollisionExcluding(shape interface{}, layer Layer, netID int32, exclude map[Ref]bool) error {
	clr := g.clearance(layer)
	box, err := geom.Inflate(shape, clr)
	if err != nil {
		return err
	}
	for _, sid := range g.index.Query(box) {
		ref := decodeShapeID(sid)
		if exclude[ref] {
			continue
		}
		otherLayer, otherNet, otherShape, ok := g.refInfo(ref)
		if !ok || otherLayer != layer || otherNet == netID {
			continue
		}
		d, err := geom.MinDistance(shape, otherShape)
		if err != nil {
			continue
		}
		if d < clr {
			return &WouldCollideError{Other: ref}
		}
	}
	return nil
}
