package navmesh

import (
	"math"

	"github.com/fogleman/delaunay"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// arcSamples is how many Steiner points each bend arc contributes beyond
// its two tangent endpoints (spec.md §4.6: "sampled along each bend arc
// at the arc's midpoint and endpoints").
const arcSamples = 1

func (m *Mesh) build(layer layout.Layer, netID int32) ([]Triangle, error) {
	dots, segs, bends := m.snapshotLayer(layer)

	points := make([]delaunay.Point, 0, len(dots)+len(bends)*(2+arcSamples))
	for _, d := range dots {
		points = append(points, delaunay.Point{X: d.Center.X, Y: d.Center.Y})
	}
	for _, b := range bends {
		core, okc := dots[b.Core]
		inner, oki := dots[b.Inner]
		outer, oko := dots[b.Outer]
		if !okc || !oki || !oko {
			continue
		}
		arc, err := geom.BuildArc(core.Center, b.Radius, inner.Center, outer.Center, b.Dir)
		if err != nil {
			continue
		}
		mid := arc.Midpoint()
		points = append(points,
			delaunay.Point{X: inner.Center.X, Y: inner.Center.Y},
			delaunay.Point{X: outer.Center.X, Y: outer.Center.Y},
			delaunay.Point{X: mid.X, Y: mid.Y},
		)
	}

	if len(points) < 3 {
		return nil, ErrTooFewVertices
	}

	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, err
	}

	ntri := len(tri.Triangles) / 3
	triangles := make([]Triangle, ntri)
	idealWidth := m.idealWidth(layer)
	clr := m.graph.Clearance(layer)

	for t := 0; t < ntri; t++ {
		var verts [3]geom.Point
		for e := 0; e < 3; e++ {
			p := tri.Points[tri.Triangles[3*t+e]]
			verts[e] = geom.Point{X: p.X, Y: p.Y}
		}

		var neighbors [3]int
		for e := 0; e < 3; e++ {
			opp := tri.Halfedges[3*t+e]
			if opp == -1 {
				neighbors[e] = -1
			} else {
				neighbors[e] = opp / 3
			}
		}

		centroid := geom.Point{
			X: (verts[0].X + verts[1].X + verts[2].X) / 3,
			Y: (verts[0].Y + verts[1].Y + verts[2].Y) / 3,
		}

		localClearance := minEdgeLength(verts) / 2
		weight := math.Max(0, idealWidth-localClearance)

		triangles[t] = Triangle{
			ID:        t,
			Vertices:  verts,
			Neighbors: neighbors,
			Centroid:  centroid,
			Weight:    m.costFunc(weight),
			Blocked:   m.isBlocked(centroid, layer, netID, segs, bends, dots, clr),
		}
	}

	return triangles, nil
}

// snapshotLayer collects every dot, seg, and bend on layer via the
// graph's public accessors, keyed by id for the Steiner-point and
// constraint-edge lookups build needs.
func (m *Mesh) snapshotLayer(layer layout.Layer) (map[layout.DotID]layout.Dot, []layout.Seg, []layout.Bend) {
	dots := make(map[layout.DotID]layout.Dot)
	var segs []layout.Seg
	var bends []layout.Bend

	// layout.Graph exposes no "all ids on layer" enumerator (it is sized
	// for point/region queries, not full scans), so navmesh walks the
	// spatial index's full extent via a maximally large query box. This
	// mirrors how a real board adapter would seed the mesh: from the
	// board's own bounding box, not an unbounded scan.
	box := geom.Rect{MinX: -1e12, MinY: -1e12, MaxX: 1e12, MaxY: 1e12}
	for _, ref := range m.graph.QueryBox(box) {
		switch ref.Kind {
		case layout.KindDot:
			if d, err := m.graph.Dot(ref.Dot); err == nil && d.Layer == layer {
				dots[ref.Dot] = d
			}
		case layout.KindSeg:
			if s, err := m.graph.Seg(ref.Seg); err == nil && s.Layer == layer {
				segs = append(segs, s)
			}
		case layout.KindBend:
			if b, err := m.graph.Bend(ref.Bend); err == nil && b.Layer == layer {
				bends = append(bends, b)
				if _, ok := dots[b.Core]; !ok {
					if cd, err := m.graph.Dot(b.Core); err == nil {
						dots[b.Core] = cd
					}
				}
				if _, ok := dots[b.Inner]; !ok {
					if id, err := m.graph.Dot(b.Inner); err == nil {
						dots[b.Inner] = id
					}
				}
				if _, ok := dots[b.Outer]; !ok {
					if od, err := m.graph.Dot(b.Outer); err == nil {
						dots[b.Outer] = od
					}
				}
			}
		}
	}
	return dots, segs, bends
}

func minEdgeLength(v [3]geom.Point) float64 {
	a := v[0].DistanceTo(v[1])
	b := v[1].DistanceTo(v[2])
	c := v[2].DistanceTo(v[0])
	return math.Min(a, math.Min(b, c))
}

// isBlocked reports whether centroid falls within clearance of a
// different-net seg or bend on layer, per spec.md §4.6: "Triangles
// containing interior of an existing band of a different net are marked
// blocked."
func (m *Mesh) isBlocked(centroid geom.Point, layer layout.Layer, netID int32, segs []layout.Seg, bends []layout.Bend, dots map[layout.DotID]layout.Dot, clr float64) bool {
	point := geom.Circle{Center: centroid, Radius: 0}
	for _, s := range segs {
		if s.NetID == netID {
			continue
		}
		from, okf := dots[s.From]
		to, okt := dots[s.To]
		if !okf || !okt {
			continue
		}
		shape := geom.Segment{A: from.Center, B: to.Center}
		if d, err := geom.MinDistance(point, shape); err == nil && d < clr {
			return true
		}
	}
	for _, b := range bends {
		if b.NetID == netID {
			continue
		}
		core, ok := dots[b.Core]
		if !ok {
			continue
		}
		shape := geom.Circle{Center: core.Center, Radius: b.Radius}
		if d, err := geom.MinDistance(point, shape); err == nil && d < clr {
			return true
		}
	}
	return false
}
