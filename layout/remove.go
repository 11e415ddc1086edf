package layout

// Remove deletes the primitive named by ref. Permitted only when removal
// preserves the invariants of the remaining primitives: a dot cannot be
// removed while any seg or bend still references it (ErrDependents).
// Segs and bends have no such dependents and can always be removed
// (removing a bend simply frees its inner/outer dots to be removed next,
// or reused by a later AddBend).
func (g *Graph) Remove(ref Ref) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch ref.Kind {
	case KindDot:
		return g.removeDot(ref.Dot)
	case KindSeg:
		return g.removeSeg(ref.Seg)
	case KindBend:
		return g.removeBend(ref.Bend)
	default:
		return ErrInvariantViolation
	}
}

func (g *Graph) removeDot(id DotID) error {
	if _, ok := g.dots[id]; !ok {
		return ErrDotNotFound
	}
	if len(g.segsByDot[id]) > 0 {
		return ErrDependents
	}
	if len(g.bendsByCore[id]) > 0 {
		return ErrDependents
	}
	if _, isBendEnd := g.bendOf[id]; isBendEnd {
		return ErrDependents
	}
	delete(g.dots, id)
	delete(g.segsByDot, id)
	delete(g.bendsByCore, id)
	_ = g.index.Remove(dotShapeID(id))

	g.checkInvariantsIfDebug()
	return nil
}

func (g *Graph) removeSeg(id SegID) error {
	s, ok := g.segs[id]
	if !ok {
		return ErrSegNotFound
	}
	delete(g.segsByDot[s.From], id)
	delete(g.segsByDot[s.To], id)
	delete(g.segs, id)
	_ = g.index.Remove(segShapeID(id))

	g.checkInvariantsIfDebug()
	return nil
}

func (g *Graph) removeBend(id BendID) error {
	b, ok := g.bends[id]
	if !ok {
		return ErrBendNotFound
	}
	delete(g.bendsByCore[b.Core], id)
	if len(g.bendsByCore[b.Core]) == 0 {
		delete(g.bendsByCore, b.Core)
	}
	delete(g.bendOf, b.Inner)
	delete(g.bendOf, b.Outer)
	delete(g.bends, id)
	_ = g.index.Remove(bendShapeID(id))

	g.checkInvariantsIfDebug()
	return nil
}
