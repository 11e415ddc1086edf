package drawing

import (
	"errors"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// StartFrom begins a band at a fixed dot. Returns layout.ErrDotNotFound
// if dot does not exist.
func StartFrom(g *layout.Graph, dot layout.DotID, width float64, netID int32) (*Head, error) {
	d, err := g.Dot(dot)
	if err != nil {
		return nil, err
	}
	return &Head{
		graph:   g,
		netID:   netID,
		layer:   d.Layer,
		width:   width,
		start:   dot,
		current: dot,
	}, nil
}

// ExtendToBend adds a seg from the head to a new loose dot at the tangent
// point, a second loose dot at the tangent point on core's side, and a
// bend around core joining the two, so the band tangentially wraps core
// with the requested winding, per spec.md §4.4. On success h.Current()
// is the new loose dot past the bend (the seg connecting it onward is
// added by the next ExtendToBend or by FinishAt).
func (h *Head) ExtendToBend(core layout.DotID, dir geom.Winding) error {
	if h.finished {
		return ErrHeadFinished
	}

	cur, err := h.graph.Dot(h.current)
	if err != nil {
		return err
	}
	coreDot, err := h.graph.Dot(core)
	if err != nil {
		return err
	}
	if coreDot.Layer != h.layer {
		return layout.ErrLayerMismatch
	}

	radius, err := h.graph.NextBendRadius(core, h.layer)
	if err != nil {
		return err
	}

	pa, pb, err := geom.TangentPoints(
		geom.Circle{Center: cur.Center, Radius: cur.Radius},
		geom.Circle{Center: coreDot.Center, Radius: radius},
		dir,
	)
	if err != nil {
		return ErrGeometric
	}

	innerID, err := h.graph.AddLooseDot(pa, h.width/2, h.layer, h.netID)
	if err != nil {
		return wrapObstruction(err)
	}

	segID, err := h.graph.AddSeg(h.current, innerID, h.width, h.netID)
	if err != nil {
		_ = h.graph.Remove(layout.RefDot(innerID))
		return wrapObstruction(err)
	}

	outerID, err := h.graph.AddLooseDot(pb, h.width/2, h.layer, h.netID)
	if err != nil {
		_ = h.graph.Remove(layout.RefSeg(segID))
		_ = h.graph.Remove(layout.RefDot(innerID))
		return wrapObstruction(err)
	}

	bendID, err := h.graph.AddBend(core, innerID, outerID, dir, h.netID)
	if err != nil {
		_ = h.graph.Remove(layout.RefDot(outerID))
		_ = h.graph.Remove(layout.RefSeg(segID))
		_ = h.graph.Remove(layout.RefDot(innerID))
		return wrapObstruction(err)
	}

	h.steps = append(h.steps, step{
		seg1:     segID,
		inner:    innerID,
		outer:    outerID,
		bend:     bendID,
		prevHead: h.current,
	})
	h.current = outerID
	return nil
}

// FinishAt closes the band with a final seg into target, which must share
// the band's net and layer. The Head may not be used again afterward.
func (h *Head) FinishAt(target layout.DotID) error {
	if h.finished {
		return ErrHeadFinished
	}
	_, err := h.graph.AddSeg(h.current, target, h.width, h.netID)
	if err != nil {
		return wrapObstruction(err)
	}
	h.finished = true
	return nil
}

// UndoLast rolls back the most recent ExtendToBend: removes its bend and
// both loose dots it introduced, restoring h.Current() to what it was
// before that step. Returns ErrNothingToUndo if no steps remain.
func (h *Head) UndoLast() error {
	if h.finished {
		return ErrHeadFinished
	}
	if len(h.steps) == 0 {
		return ErrNothingToUndo
	}
	last := h.steps[len(h.steps)-1]

	if err := h.graph.Remove(layout.RefBend(last.bend)); err != nil {
		return err
	}
	if err := h.graph.Remove(layout.RefSeg(last.seg1)); err != nil {
		return err
	}
	if err := h.graph.Remove(layout.RefDot(last.outer)); err != nil {
		return err
	}
	if err := h.graph.Remove(layout.RefDot(last.inner)); err != nil {
		return err
	}

	h.steps = h.steps[:len(h.steps)-1]
	h.current = last.prevHead
	return nil
}

// wrapObstruction classifies a *layout.WouldCollideError by the kind of
// primitive it names, or passes other errors through unchanged.
func wrapObstruction(err error) error {
	var collide *layout.WouldCollideError
	if !errors.As(err, &collide) {
		return err
	}
	kind := ObstructedDot
	switch collide.Other.Kind {
	case layout.KindSeg:
		kind = ObstructedSeg
	case layout.KindBend:
		kind = ObstructedBend
	}
	return &Obstructed{Kind: kind, err: err}
}
