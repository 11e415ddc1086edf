package layout

import (
	"github.com/katalvlaran/topola/geom"
)

// AddFixedDot adds a fixed dot (pin/pad/via terminal) at center with the
// given radius, layer, and net. netID may be NoNet. Fails with
// *WouldCollideError if the new dot's inflated shape intersects an
// existing primitive of a different net on the same layer.
func (g *Graph) AddFixedDot(center geom.Point, radius float64, layer Layer, netID int32) (DotID, error) {
	return g.addDot(center, radius, layer, netID, true)
}

// AddLooseDot adds a loose dot (an internal bend-end created by the
// router). Same collision semantics as AddFixedDot.
func (g *Graph) AddLooseDot(center geom.Point, radius float64, layer Layer, netID int32) (DotID, error) {
	return g.addDot(center, radius, layer, netID, false)
}

func (g *Graph) addDot(center geom.Point, radius float64, layer Layer, netID int32, fixed bool) (DotID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	shape := geom.Circle{Center: center, Radius: radius}
	if collided := g.findCollision(shape, layer, netID, Ref{}); collided != nil {
		return 0, collided
	}

	id := DotID(g.allocID())
	d := &Dot{ID: id, Center: center, Radius: radius, Layer: layer, NetID: netID, Fixed: fixed}
	g.dots[id] = d
	g.segsByDot[id] = make(map[SegID]struct{})

	box, _ := geom.Inflate(shape, g.clearance(layer))
	g.index.Insert(dotShapeID(id), box)

	g.checkInvariantsIfDebug()
	return id, nil
}

// MoveLooseDot moves a loose dot to newCenter, updating the spatial index
// and every seg/bend shape that depends on it. Only permitted on loose
// dots; returns ErrNotLoose for fixed dots, ErrDotNotFound if dot does not
// exist. On collision, the dot is left at its original position.
func (g *Graph) MoveLooseDot(dot DotID, newCenter geom.Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, ok := g.dots[dot]
	if !ok {
		return ErrDotNotFound
	}
	if d.Fixed {
		return ErrNotLoose
	}

	oldCenter := d.Center
	d.Center = newCenter

	// Collision check against the moved dot itself plus every seg/bend
	// whose geometry depends on it; treat the whole bundle as excluded
	// from self-collision.
	exclude := map[Ref]bool{RefDot(dot): true}
	for segID := range g.segsByDot[dot] {
		exclude[RefSeg(segID)] = true
	}
	if bid, ok := g.bendOf[dot]; ok {
		exclude[RefBend(bid)] = true
	}

	if err := g.checkMovedShapes(dot, exclude); err != nil {
		d.Center = oldCenter // restore: failure-atomic
		return err
	}

	// Commit: reinsert the dot's own shape, then every dependent seg/bend.
	g.reindexDot(dot)

	g.checkInvariantsIfDebug()
	return nil
}

// checkMovedShapes verifies that the dot's new position, plus every seg
// and bend that depends on it, would not collide with anything outside
// exclude. It does not mutate the index; callers commit via reindexDot
// only after this succeeds.
func (g *Graph) checkMovedShapes(dot DotID, exclude map[Ref]bool) error {
	d := g.dots[dot]
	if collided := g.findCollisionExcluding(d.shape(), d.Layer, d.NetID, exclude); collided != nil {
		return collided
	}
	for segID := range g.segsByDot[dot] {
		s := g.segs[segID]
		if collided := g.findCollisionExcluding(segShape(g, s), s.Layer, s.NetID, exclude); collided != nil {
			return collided
		}
	}
	if bid, ok := g.bendOf[dot]; ok {
		b := g.bends[bid]
		if collided := g.findCollisionExcluding(bendShape(g, b), b.Layer, b.NetID, exclude); collided != nil {
			return collided
		}
	}
	return nil
}

// reindexDot updates the spatial index entries for dot and everything
// that depends on it, after the dot's Center has already been mutated.
func (g *Graph) reindexDot(dot DotID) {
	d := g.dots[dot]
	box, _ := geom.Inflate(d.shape(), g.clearance(d.Layer))
	g.index.Insert(dotShapeID(dot), box)

	for segID := range g.segsByDot[dot] {
		s := g.segs[segID]
		box, _ := geom.Inflate(segShape(g, s), g.clearance(s.Layer))
		g.index.Insert(segShapeID(segID), box)
	}
	if bid, ok := g.bendOf[dot]; ok {
		b := g.bends[bid]
		box, _ := geom.Inflate(bendShape(g, b), g.clearance(b.Layer))
		g.index.Insert(bendShapeID(bid), box)
	}
}

// Dot returns a copy of the dot with the given id.
func (g *Graph) Dot(id DotID) (Dot, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	d, ok := g.dots[id]
	if !ok {
		return Dot{}, ErrDotNotFound
	}
	return *d, nil
}
