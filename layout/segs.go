package layout

import "github.com/katalvlaran/topola/geom"

// AddSeg adds a straight seg from one dot to another. Both dots must
// already exist, lie on the same layer, and belong to netID.
// Fails with ErrSameDot if from==to, ErrLayerMismatch if the dots are on
// different layers, ErrInvariantViolation if either dot belongs to a
// different net, or *WouldCollideError if the new seg's inflated line
// intersects a different-net primitive.
func (g *Graph) AddSeg(from, to DotID, width float64, netID int32) (SegID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	fd, ok := g.dots[from]
	if !ok {
		return 0, ErrDotNotFound
	}
	td, ok := g.dots[to]
	if !ok {
		return 0, ErrDotNotFound
	}
	if from == to {
		return 0, ErrSameDot
	}
	if fd.Layer != td.Layer {
		return 0, ErrLayerMismatch
	}
	if fd.NetID != netID || td.NetID != netID {
		return 0, ErrInvariantViolation
	}

	shape := geom.Segment{A: fd.Center, B: td.Center}
	exclude := map[Ref]bool{RefDot(from): true, RefDot(to): true}
	if collided := g.findCollisionExcluding(shape, fd.Layer, netID, exclude); collided != nil {
		return 0, collided
	}

	id := SegID(g.allocID())
	s := &Seg{ID: id, From: from, To: to, Width: width, Layer: fd.Layer, NetID: netID}
	g.segs[id] = s
	g.segsByDot[from][id] = struct{}{}
	g.segsByDot[to][id] = struct{}{}

	box, _ := geom.Inflate(shape, g.clearance(fd.Layer))
	g.index.Insert(segShapeID(id), box)

	g.checkInvariantsIfDebug()
	return id, nil
}

// Seg returns a copy of the seg with the given id.
func (g *Graph) Seg(id SegID) (Seg, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s, ok := g.segs[id]
	if !ok {
		return Seg{}, ErrSegNotFound
	}
	return *s, nil
}
