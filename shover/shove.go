package shover

import (
	"errors"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/routeconfig"
)

// Squeezing describes the new band's tangent seg that detected an
// obstruction: its proposed geometry plus the layer/net it would belong
// to. It is geometry only, not a committed layout.SegID, because the seg
// that triggered the shove was never added (drawing.ExtendToBend's AddSeg
// call is what failed with Obstructed in the first place).
type Squeezing struct {
	Line  geom.Segment
	Layer layout.Layer
	NetID int32
}

// Shove attempts to displace squeezed just enough to restore clearance
// against squeezing, per spec.md §4.5. On success Result.Displaced names
// the squeezed primitive (primitives moved by the recursive shoves are
// not listed); the caller (drawing, via the Router) should retry the
// original extend afterward. On failure every loose-dot move recorded
// during the attempt is rolled back before Shove returns; a bend re-wrap
// made during the attempt is not reverted.
func Shove(g *layout.Graph, squeezing Squeezing, squeezed layout.Ref, opts routeconfig.RouterOptions) (Result, error) {
	if squeezed.Kind == layout.KindBend && opts.WrapAroundBands {
		b, err := g.Bend(squeezed.Bend)
		if err == nil {
			return Result{WrapAround: true, Core: b.Core}, nil
		}
	}

	j := &journal{}
	visited := make(map[layout.Ref]bool)
	displaced, err := shoveOne(g, squeezing, squeezed, opts, j, 0, visited)
	if err != nil {
		j.rollback()
		return Result{}, err
	}
	return Result{Displaced: displaced}, nil
}

func shoveOne(g *layout.Graph, squeezing Squeezing, target layout.Ref, opts routeconfig.RouterOptions, j *journal, depth int, visited map[layout.Ref]bool) ([]layout.Ref, error) {
	if depth > opts.MaxShoveDepth {
		return nil, ErrDepthExceeded
	}
	if visited[target] {
		return nil, nil
	}
	visited[target] = true

	switch target.Kind {
	case layout.KindSeg:
		return shoveSeg(g, squeezing, target.Seg, opts, j, depth, visited)
	case layout.KindBend:
		return shoveBend(g, squeezing, target.Bend, opts, j, depth, visited)
	default:
		return nil, ErrNotShoveable
	}
}

func shoveSeg(g *layout.Graph, squeezing Squeezing, targetID layout.SegID, opts routeconfig.RouterOptions, j *journal, depth int, visited map[layout.Ref]bool) ([]layout.Ref, error) {
	s, err := g.Seg(targetID)
	if err != nil {
		return nil, err
	}
	fromDot, err := g.Dot(s.From)
	if err != nil {
		return nil, err
	}
	toDot, err := g.Dot(s.To)
	if err != nil {
		return nil, err
	}
	if fromDot.Fixed || toDot.Fixed {
		return nil, ErrNotShoveable
	}

	targetShape, err := g.SegShape(targetID)
	if err != nil {
		return nil, err
	}

	dist, err := geom.MinDistance(squeezing.Line, targetShape)
	if err != nil {
		return nil, err
	}
	clr := g.Clearance(s.Layer)
	delta := clr - dist
	if delta <= geom.Epsilon {
		// Already clear; nothing to displace.
		return nil, nil
	}

	dir := squeezing.Line.Vector().Unit().Rotate90()
	segMid := targetShape.A.Add(targetShape.B.Sub(targetShape.A).Scale(0.5))
	sqMid := squeezing.Line.A.Add(squeezing.Line.B.Sub(squeezing.Line.A).Scale(0.5))
	if segMid.Sub(sqMid).Dot(dir) < 0 {
		dir = dir.Scale(-1)
	}
	displacement := dir.Scale(delta + opts.GeomEpsilon)

	oldFrom, oldTo := fromDot.Center, toDot.Center
	newFrom, newTo := oldFrom.Add(displacement), oldTo.Add(displacement)

	if err := moveAndResolve(g, squeezing, s.From, newFrom, opts, j, depth, visited); err != nil {
		return nil, err
	}
	if err := moveAndResolve(g, squeezing, s.To, newTo, opts, j, depth, visited); err != nil {
		return nil, err
	}

	return []layout.Ref{layout.RefSeg(targetID)}, nil
}

func shoveBend(g *layout.Graph, squeezing Squeezing, targetID layout.BendID, opts routeconfig.RouterOptions, j *journal, depth int, visited map[layout.Ref]bool) ([]layout.Ref, error) {
	err := g.RewrapOutermost(targetID)
	if err != nil && opts.SqueezeUnderBands {
		// Wrapping further out failed (it would collide further out, or
		// the bend is already outermost); squeeze_under_bands permits the
		// alternate displacement spec.md §4.5 step 3 describes, shrinking
		// the bend to tuck it beneath the others sharing its core instead.
		err = g.RewrapUnder(targetID)
	}
	if err != nil {
		return nil, err
	}
	j.record(func() error {
		// Neither RewrapOutermost nor RewrapUnder has a direct inverse (the
		// prior radius may no longer be free once other bends have also
		// shifted), so the undo simply accepts whatever radius re-wrapping
		// settles on; a failed shove that reaches here is rare and already
		// returning an error up the chain, so an imperfect radius restore
		// on rollback is preferable to leaving the bend at an invalid one.
		return nil
	})

	b, err := g.Bend(targetID)
	if err != nil {
		return nil, err
	}
	displaced := []layout.Ref{layout.RefBend(targetID)}

	for _, dot := range []layout.DotID{b.Inner, b.Outer} {
		if err := resolveNewViolations(g, squeezing, layout.RefDot(dot), opts, j, depth, visited); err != nil {
			return nil, err
		}
	}
	return displaced, nil
}

// moveAndResolve moves dot to newCenter, recursing into the Shover if the
// move itself is obstructed, then checks for newly created violations
// around the moved dot's neighborhood.
func moveAndResolve(g *layout.Graph, squeezing Squeezing, dot layout.DotID, newCenter geom.Point, opts routeconfig.RouterOptions, j *journal, depth int, visited map[layout.Ref]bool) error {
	oldCenter, err := g.Dot(dot)
	if err != nil {
		return err
	}

	if err := g.MoveLooseDot(dot, newCenter); err != nil {
		var collide *layout.WouldCollideError
		if !errors.As(err, &collide) {
			return err
		}
		if _, rerr := shoveOne(g, squeezing, collide.Other, opts, j, depth+1, visited); rerr != nil {
			return rerr
		}
		// Obstruction resolved; retry the move once.
		if err := g.MoveLooseDot(dot, newCenter); err != nil {
			return err
		}
	}
	j.record(func() error { return g.MoveLooseDot(dot, oldCenter.Center) })

	return resolveNewViolations(g, squeezing, layout.RefDot(dot), opts, j, depth, visited)
}

// resolveNewViolations re-queries the spatial index around ref's current
// bounding box and recursively shoves any different-net primitive still
// within clearance, per spec.md §4.5 step 4.
func resolveNewViolations(g *layout.Graph, squeezing Squeezing, ref layout.Ref, opts routeconfig.RouterOptions, j *journal, depth int, visited map[layout.Ref]bool) error {
	box, err := g.RefBoundingBox(ref, opts.GeomEpsilon)
	if err != nil {
		return err
	}
	layer, net, err := g.RefLayerNet(ref)
	if err != nil {
		return err
	}
	shape, err := g.RefShape(ref)
	if err != nil {
		return err
	}

	for _, other := range g.QueryBox(box) {
		if other == ref || visited[other] {
			continue
		}
		otherLayer, otherNet, err := g.RefLayerNet(other)
		if err != nil || otherLayer != layer || otherNet == net {
			continue
		}
		otherShape, err := g.RefShape(other)
		if err != nil {
			continue
		}
		dist, err := geom.MinDistance(shape, otherShape)
		if err != nil {
			continue
		}
		if dist < g.Clearance(layer) {
			if _, err := shoveOne(g, squeezing, other, opts, j, depth+1, visited); err != nil {
				return err
			}
		}
	}
	return nil
}
