package layout

import "github.com/katalvlaran/topola/geom"

func (g *Graph) checkInvariantsIfDebug() {
	if !g.debug {
		return
	}
	if err := g.checkInvariantsLocked(); err != nil {
		panic(err)
	}
}

// CheckInvariants walks the whole graph and verifies seg and bend
// structure (endpoints exist, share a layer and net; bend ends are loose),
// that the bends sharing a core dot wrap it by at most 2*pi in total, and
// distinct-net clearance between dots. Clearance of segs and bends is not
// checked here, nor whether a band is a simple polyline. It is the sweep
// that WithDebugChecks runs after every mutation; callers may also invoke
// it directly (e.g. in tests, or from invoker at a suspension point) when
// debug mode is off.
func (g *Graph) CheckInvariants() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.checkInvariantsLocked()
}

func (g *Graph) checkInvariantsLocked() error {
	for _, s := range g.segs {
		if s.From == s.To {
			return ErrInvariantViolation
		}
		fd, ok1 := g.dots[s.From]
		td, ok2 := g.dots[s.To]
		if !ok1 || !ok2 || fd.Layer != td.Layer {
			return ErrInvariantViolation
		}
		if fd.NetID != s.NetID || td.NetID != s.NetID {
			return ErrInvariantViolation
		}
	}

	for _, b := range g.bends {
		inner, ok1 := g.dots[b.Inner]
		outer, ok2 := g.dots[b.Outer]
		core, ok3 := g.dots[b.Core]
		if !ok1 || !ok2 || !ok3 {
			return ErrInvariantViolation
		}
		if inner.Fixed || outer.Fixed {
			return ErrInvariantViolation
		}
		if inner.Layer != core.Layer || outer.Layer != core.Layer {
			return ErrInvariantViolation
		}
		if inner.NetID != b.NetID || outer.NetID != b.NetID {
			return ErrInvariantViolation
		}
		// A loose bend-end with fewer than two attached segs is only
		// valid mid-draw (drawing.Head has not finished yet); that
		// invariant is enforced at transaction boundaries by drawing and
		// router, not here, since layout has no notion of "transaction
		// complete" on its own.
	}

	for core, bends := range g.bendsByCore {
		total := 0.0
		for bid := range bends {
			b := g.bends[bid]
			arc, err := geom.BuildArc(g.dots[core].Center, b.Radius, g.dots[b.Inner].Center, g.dots[b.Outer].Center, b.Dir)
			if err != nil {
				return ErrInvariantViolation
			}
			total += arc.Length() / arc.Radius
		}
		if total > 2*3.141592653589793+geom.Epsilon {
			return ErrInvariantViolation
		}
	}

	for id, d := range g.dots {
		for otherID, other := range g.dots {
			if id == otherID || d.NetID == other.NetID || d.Layer != other.Layer {
				continue
			}
			dist, err := geom.MinDistance(d.shape(), other.shape())
			if err != nil {
				continue
			}
			if dist < g.clearance(d.Layer)-geom.Epsilon {
				return ErrInvariantViolation
			}
		}
	}

	return nil
}
