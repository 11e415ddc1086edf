package layout

import (
	"iter"

	"github.com/katalvlaran/topola/geom"
)

// Neighbors returns a lazy, finite sequence of primitives within
// clearance range of ref, on ref's layer. If netID is non-nil, only
// primitives belonging to that net are yielded; otherwise all layer
// neighbors are yielded regardless of net. ref itself is never yielded.
//
// The sequence is a Go 1.23 range-over-func iterator rather than a
// pre-built slice: shove and router consult Neighbors inside tight
// per-step loops and rarely need more than the first few results, so
// building (and sorting) a full slice up front would do wasted work on
// the common path.
func (g *Graph) Neighbors(ref Ref, netID *int32) iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		g.mu.RLock()
		defer g.mu.RUnlock()

		layer, _, shape, ok := g.refInfo(ref)
		if !ok {
			return
		}
		clr := g.clearance(layer)
		box, err := geom.Inflate(shape, clr)
		if err != nil {
			return
		}
		for _, sid := range g.index.Query(box) {
			other := decodeShapeID(sid)
			if other == ref {
				continue
			}
			otherLayer, otherNet, otherShape, ok := g.refInfo(other)
			if !ok || otherLayer != layer {
				continue
			}
			if netID != nil && otherNet != *netID {
				continue
			}
			d, err := geom.MinDistance(shape, otherShape)
			if err != nil || d > clr {
				continue
			}
			if !yield(other) {
				return
			}
		}
	}
}
