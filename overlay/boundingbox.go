package overlay

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// BoundingBox returns the smallest Rect covering every dot, seg, and bend
// on layer. Dots and bends count by their circles; segs count by their
// centerline, so seg width is not included. Returns the zero Rect if
// layer is empty.
func BoundingBox(g *layout.Graph, layer layout.Layer) geom.Rect {
	var box geom.Rect
	var has bool
	for _, ref := range g.QueryBox(hugeRect) {
		l, _, err := g.RefLayerNet(ref)
		if err != nil || l != layer {
			continue
		}
		shape, err := g.RefShape(ref)
		if err != nil {
			continue
		}
		r, err := geom.Inflate(shape, 0)
		if err != nil {
			continue
		}
		if !has {
			box, has = r, true
			continue
		}
		box = box.Union(r)
	}
	return box
}
