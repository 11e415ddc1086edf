package layout

import "github.com/katalvlaran/topola/geom"

// AddBend adds a circular arc wrapping core, tangentially connecting
// inner and outer (both must already be loose dots positioned at the
// tangent points drawing.ExtendToBend computed). Its radius is derived
// from the stacking rule in spec.md §4.4: core.Radius plus (k+1) times
// the layer's bend offset, where k is the number of bends already
// wrapping core on the same layer.
//
// inner and outer must not already belong to another bend (a loose dot is
// the endpoint of at most one bend), must be distinct, and must share
// core's layer. core's net need not match netID: a bend legitimately
// wraps another net's pad as an obstacle, and its radius already accounts
// for the clearance that keeps the arc off that pad regardless of net.
func (g *Graph) AddBend(core, inner, outer DotID, dir geom.Winding, netID int32) (BendID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cd, ok := g.dots[core]
	if !ok {
		return 0, ErrDotNotFound
	}
	id1, ok := g.dots[inner]
	if !ok {
		return 0, ErrDotNotFound
	}
	od, ok := g.dots[outer]
	if !ok {
		return 0, ErrDotNotFound
	}
	if inner == outer {
		return 0, ErrSameDot
	}
	if id1.Fixed || od.Fixed {
		return 0, ErrNotLoose
	}
	if cd.Layer != id1.Layer || cd.Layer != od.Layer {
		return 0, ErrLayerMismatch
	}
	if id1.NetID != netID || od.NetID != netID {
		return 0, ErrInvariantViolation
	}
	if _, taken := g.bendOf[inner]; taken {
		return 0, ErrInvariantViolation
	}
	if _, taken := g.bendOf[outer]; taken {
		return 0, ErrInvariantViolation
	}

	k := g.wrapCountOnLayer(core, cd.Layer)
	radius := cd.Radius + float64(k+1)*g.bendOffset(cd.Layer)

	arc, err := geom.BuildArc(cd.Center, radius, id1.Center, od.Center, dir)
	if err != nil {
		return 0, err
	}
	if err := g.checkAngularNonOverlap(core, cd.Layer, arc, radius); err != nil {
		return 0, err
	}

	shape := geom.Circle{Center: cd.Center, Radius: radius}
	exclude := map[Ref]bool{RefDot(core): true, RefDot(inner): true, RefDot(outer): true}
	if collided := g.findCollisionExcluding(shape, cd.Layer, netID, exclude); collided != nil {
		return 0, collided
	}

	bid := BendID(g.allocID())
	b := &Bend{ID: bid, Core: core, Inner: inner, Outer: outer, Dir: dir, Layer: cd.Layer, NetID: netID, Radius: radius}
	g.bends[bid] = b
	if g.bendsByCore[core] == nil {
		g.bendsByCore[core] = make(map[BendID]struct{})
	}
	g.bendsByCore[core][bid] = struct{}{}
	g.bendOf[inner] = bid
	g.bendOf[outer] = bid

	box, _ := geom.Inflate(shape, g.clearance(cd.Layer))
	g.index.Insert(bendShapeID(bid), box)

	g.checkInvariantsIfDebug()
	return bid, nil
}

// NextBendRadius returns the radius AddBend would assign to the next bend
// wrapping core on layer, following the same stacking rule AddBend uses
// internally. drawing calls this before computing tangent points so the
// tangent geometry it builds matches the arc AddBend will actually create.
func (g *Graph) NextBendRadius(core DotID, layer Layer) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cd, ok := g.dots[core]
	if !ok {
		return 0, ErrDotNotFound
	}
	k := g.wrapCountOnLayer(core, layer)
	return cd.Radius + float64(k+1)*g.bendOffset(layer), nil
}

// RewrapOutermost re-radiuses an existing bend to sit outside every other
// bend sharing its core on its layer, moving its inner and outer dots
// radially outward to match. This is the Shover's bend-displacement
// primitive from spec.md §4.5 step 3: "the shove manifests as a change of
// the bend's ordinal among its core dot's bends (wrapping the bend
// further out)". Fails with ErrInvariantViolation if the bend is already
// outermost, or *WouldCollideError if the new radius collides with
// another-net primitive; on either failure the bend and its dots are left
// unchanged.
func (g *Graph) RewrapOutermost(id BendID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.bends[id]
	if !ok {
		return ErrBendNotFound
	}
	core := g.dots[b.Core]
	inner := g.dots[b.Inner]
	outer := g.dots[b.Outer]

	k := 0
	for bid := range g.bendsByCore[b.Core] {
		if bid == id {
			continue
		}
		if g.bends[bid].Layer == b.Layer {
			k++
		}
	}
	newRadius := core.Radius + float64(k+1)*g.bendOffset(b.Layer)
	if newRadius <= b.Radius+geom.Epsilon {
		return ErrInvariantViolation
	}

	oldInner, oldOuter, oldRadius := inner.Center, outer.Center, b.Radius

	inner.Center = core.Center.Add(inner.Center.Sub(core.Center).Unit().Scale(newRadius))
	outer.Center = core.Center.Add(outer.Center.Sub(core.Center).Unit().Scale(newRadius))
	b.Radius = newRadius

	rollback := func() {
		inner.Center, outer.Center, b.Radius = oldInner, oldOuter, oldRadius
	}

	newArc, err := geom.BuildArc(core.Center, newRadius, inner.Center, outer.Center, b.Dir)
	if err != nil {
		rollback()
		return err
	}
	if err := g.checkAngularNonOverlap(b.Core, b.Layer, newArc, newRadius); err != nil {
		rollback()
		return err
	}

	exclude := map[Ref]bool{RefDot(b.Core): true, RefDot(b.Inner): true, RefDot(b.Outer): true, RefBend(id): true}
	if err := g.checkMovedShapes(b.Inner, exclude); err != nil {
		rollback()
		return err
	}
	if err := g.checkMovedShapes(b.Outer, exclude); err != nil {
		rollback()
		return err
	}
	shape := geom.Circle{Center: core.Center, Radius: newRadius}
	if collided := g.findCollisionExcluding(shape, b.Layer, b.NetID, exclude); collided != nil {
		rollback()
		return collided
	}

	g.reindexDot(b.Inner)
	g.reindexDot(b.Outer)
	box, _ := geom.Inflate(shape, g.clearance(b.Layer))
	g.index.Insert(bendShapeID(id), box)

	g.checkInvariantsIfDebug()
	return nil
}

// RewrapUnder re-radiuses an existing bend to sit innermost among every
// other bend sharing its core on its layer (the stacking rule's k=0
// position), moving its inner and outer dots radially inward to match.
// This is the Shover's alternate bend-displacement primitive from
// spec.md §4.5 step 3's "or under another bend if squeeze_under_bands is
// enabled": rather than growing past every other bend sharing the core
// (RewrapOutermost), it shrinks the bend to tuck beneath them, freeing
// the outer radius band for the obstructing line to pass through. Fails
// with ErrInvariantViolation if the bend is already innermost, or
// *WouldCollideError if the new radius collides with another-net
// primitive; on either failure the bend and its dots are left unchanged.
func (g *Graph) RewrapUnder(id BendID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.bends[id]
	if !ok {
		return ErrBendNotFound
	}
	core := g.dots[b.Core]
	inner := g.dots[b.Inner]
	outer := g.dots[b.Outer]

	newRadius := core.Radius + g.bendOffset(b.Layer)
	if newRadius >= b.Radius-geom.Epsilon {
		return ErrInvariantViolation
	}

	oldInner, oldOuter, oldRadius := inner.Center, outer.Center, b.Radius

	inner.Center = core.Center.Add(inner.Center.Sub(core.Center).Unit().Scale(newRadius))
	outer.Center = core.Center.Add(outer.Center.Sub(core.Center).Unit().Scale(newRadius))
	b.Radius = newRadius

	rollback := func() {
		inner.Center, outer.Center, b.Radius = oldInner, oldOuter, oldRadius
	}

	newArc, err := geom.BuildArc(core.Center, newRadius, inner.Center, outer.Center, b.Dir)
	if err != nil {
		rollback()
		return err
	}
	if err := g.checkAngularNonOverlap(b.Core, b.Layer, newArc, newRadius); err != nil {
		rollback()
		return err
	}

	exclude := map[Ref]bool{RefDot(b.Core): true, RefDot(b.Inner): true, RefDot(b.Outer): true, RefBend(id): true}
	if err := g.checkMovedShapes(b.Inner, exclude); err != nil {
		rollback()
		return err
	}
	if err := g.checkMovedShapes(b.Outer, exclude); err != nil {
		rollback()
		return err
	}
	shape := geom.Circle{Center: core.Center, Radius: newRadius}
	if collided := g.findCollisionExcluding(shape, b.Layer, b.NetID, exclude); collided != nil {
		rollback()
		return collided
	}

	g.reindexDot(b.Inner)
	g.reindexDot(b.Outer)
	box, _ := geom.Inflate(shape, g.clearance(b.Layer))
	g.index.Insert(bendShapeID(id), box)

	g.checkInvariantsIfDebug()
	return nil
}

func (g *Graph) wrapCountOnLayer(core DotID, layer Layer) int {
	n := 0
	for bid := range g.bendsByCore[core] {
		if g.bends[bid].Layer == layer {
			n++
		}
	}
	return n
}

// checkAngularNonOverlap enforces spec.md §3/§8's invariant that for a
// given core dot, bends sharing it are pairwise non-overlapping in
// angle x radius space, and that cumulative wrap never exceeds 2*pi. The
// stacking formula already guarantees distinct radii per bend added in
// sequence, so the only remaining check is the cumulative-angle bound.
func (g *Graph) checkAngularNonOverlap(core DotID, layer Layer, newArc geom.Arc, newRadius float64) error {
	total := newArc.Length() / newRadius
	for bid := range g.bendsByCore[core] {
		b := g.bends[bid]
		if b.Layer != layer {
			continue
		}
		existing, err := geom.BuildArc(g.dots[core].Center, b.Radius, g.dots[b.Inner].Center, g.dots[b.Outer].Center, b.Dir)
		if err != nil {
			continue
		}
		total += existing.Length() / existing.Radius
	}
	if total > 2*3.141592653589793+geom.Epsilon {
		return ErrInvariantViolation
	}
	return nil
}

// Bend returns a copy of the bend with the given id.
func (g *Graph) Bend(id BendID) (Bend, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	b, ok := g.bends[id]
	if !ok {
		return Bend{}, ErrBendNotFound
	}
	return *b, nil
}
