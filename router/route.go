package router

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/topola/drawing"
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/navmesh"
	"github.com/katalvlaran/topola/pathfinder"
	"github.com/katalvlaran/topola/routeconfig"
	"github.com/katalvlaran/topola/shover"
)

// hugeRect bounds a query intended to return every primitive on a layer,
// mirroring navmesh.snapshotLayer's approach to the same problem: neither
// layout.Graph nor the spatial index exposes an "all primitives" walk.
var hugeRect = geom.Rect{MinX: -1e12, MinY: -1e12, MaxX: 1e12, MaxY: 1e12}

// Route turns one Ratline into a Band, per spec.md §4.8: it is a no-op if
// From and To are already connected on rl.NetID, otherwise it finds a
// triangle path through mesh, walks it with a drawing.Head, asks the
// Shover to clear any Obstructed funnel step, and replans from the
// current head position (up to opts.MaxReplans times) when a step cannot
// be shoved through. On exhaustion, or if no geometric path exists at
// all, Route rolls the Head back to rl.From and returns a *RouteFailed.
func Route(ctx context.Context, g *layout.Graph, mesh *navmesh.Mesh, rl Ratline, opts routeconfig.RouterOptions) error {
	if alreadyConnected(g, rl) {
		return nil
	}

	toDot, err := g.Dot(rl.To)
	if err != nil {
		return err
	}

	head, err := drawing.StartFrom(g, rl.From, rl.Width, rl.NetID)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			unwindHead(head)
			return ErrAborted
		}

		curDot, err := g.Dot(head.Current())
		if err != nil {
			unwindHead(head)
			return &RouteFailed{Ratline: rl, cause: err}
		}

		startTri, ok := mesh.TriangleAt(rl.Layer, rl.NetID, curDot.Center)
		if !ok {
			unwindHead(head)
			return &RouteFailed{Ratline: rl, cause: navmesh.ErrTriangleNotFound}
		}
		targetTri, ok := mesh.TriangleAt(rl.Layer, rl.NetID, toDot.Center)
		if !ok {
			unwindHead(head)
			return &RouteFailed{Ratline: rl, cause: navmesh.ErrTriangleNotFound}
		}

		tris, err := pathfinder.FindPath(mesh, rl.Layer, rl.NetID, startTri, targetTri)
		if err != nil {
			unwindHead(head)
			return &RouteFailed{Ratline: rl, cause: err}
		}

		dotAt := collectDotPositions(g, rl.Layer)

		ok, err = walkFunnel(ctx, g, head, tris, dotAt, opts)
		if ok {
			if ferr := head.FinishAt(rl.To); ferr != nil {
				err = ferr
			} else {
				mesh.MarkDirty(rl.Layer, rl.NetID)
				return nil
			}
		}

		if attempt >= opts.MaxReplans {
			unwindHead(head)
			return &RouteFailed{Ratline: rl, cause: err}
		}
		mesh.MarkDirty(rl.Layer, rl.NetID)
	}
}

// walkFunnel converts a triangle sequence into ExtendToBend calls, one per
// funnel apex found, asking the Shover to clear any obstruction. It
// returns true once the sequence is exhausted with the head still live;
// false (with a non-nil error on failure) means the caller should replan.
func walkFunnel(ctx context.Context, g *layout.Graph, head *drawing.Head, tris []navmesh.Triangle, dotAt map[roundedPoint]layout.DotID, opts routeconfig.RouterOptions) (bool, error) {
	for i := 0; i+1 < len(tris); i++ {
		if err := ctx.Err(); err != nil {
			return false, ErrAborted
		}

		apex, dir, ok := funnelApex(tris[i], tris[i+1])
		if !ok {
			// Collinear or no distinguishing apex: nothing to wrap here.
			continue
		}
		core, ok := dotAt[roundPoint(apex)]
		if !ok {
			// Apex is a bare Steiner point on a bend arc, not a real dot;
			// skip it rather than attempt to wrap a non-existent core.
			continue
		}
		if core == head.Current() {
			continue
		}

		if err := extendWithShove(g, head, core, dir, opts); err != nil {
			return false, err
		}
	}
	return true, nil
}

// extendWithShove tries head.ExtendToBend(core, dir); on *drawing.Obstructed
// it builds the Squeezing line the failed tangent seg would have drawn and
// asks the Shover to clear it, then retries once. A WrapAround result
// redirects the extend to the obstacle bend's core instead of retrying the
// original target.
func extendWithShove(g *layout.Graph, head *drawing.Head, core layout.DotID, dir geom.Winding, opts routeconfig.RouterOptions) error {
	target := core
	for depth := 0; depth < opts.MaxShoveDepth; depth++ {
		err := head.ExtendToBend(target, dir)
		if err == nil {
			return nil
		}

		var collide *layout.WouldCollideError
		if !errors.As(err, &collide) {
			return err
		}

		squeezing, squeezeErr := proposedSqueezing(g, head, target, dir, opts)
		if squeezeErr != nil {
			return err
		}

		result, serr := shover.Shove(g, squeezing, collide.Other, opts)
		if serr != nil {
			return err
		}
		if result.WrapAround {
			target = result.Core
			continue
		}
		// Shove cleared the obstruction in place; retry the same extend.
	}
	return ErrDepthExceededForExtend
}

func unwindHead(head *drawing.Head) {
	for head.UndoLast() == nil {
	}
}

// proposedSqueezing recomputes the tangent line ExtendToBend attempted, so
// the Shover has the same geometry the failed AddSeg call used, even
// though that seg was never committed to the graph.
func proposedSqueezing(g *layout.Graph, head *drawing.Head, core layout.DotID, dir geom.Winding, opts routeconfig.RouterOptions) (shover.Squeezing, error) {
	cur, err := g.Dot(head.Current())
	if err != nil {
		return shover.Squeezing{}, err
	}
	coreDot, err := g.Dot(core)
	if err != nil {
		return shover.Squeezing{}, err
	}
	radius, err := g.NextBendRadius(core, head.Layer())
	if err != nil {
		return shover.Squeezing{}, err
	}
	pa, _, err := geom.TangentPoints(
		geom.Circle{Center: cur.Center, Radius: cur.Radius},
		geom.Circle{Center: coreDot.Center, Radius: radius},
		dir,
	)
	if err != nil {
		return shover.Squeezing{}, err
	}
	return shover.Squeezing{
		Line:  geom.Segment{A: cur.Center, B: pa},
		Layer: head.Layer(),
		NetID: head.NetID(),
	}, nil
}

// roundedPoint is a coordinate key coarse enough to equate a mesh vertex
// with the layout.Dot center it came from, despite float round-trip noise
// through delaunay.Triangulate.
type roundedPoint struct{ x, y int64 }

const roundScale = 1e6

func roundPoint(p geom.Point) roundedPoint {
	return roundedPoint{
		x: int64(math.Round(p.X * roundScale)),
		y: int64(math.Round(p.Y * roundScale)),
	}
}

// collectDotPositions snapshots every dot on layer into a position-keyed
// lookup, for mapping a funnel apex back to the layout.DotID it came from.
func collectDotPositions(g *layout.Graph, layer layout.Layer) map[roundedPoint]layout.DotID {
	out := make(map[roundedPoint]layout.DotID)
	for _, ref := range g.QueryBox(hugeRect) {
		if ref.Kind != layout.KindDot {
			continue
		}
		d, err := g.Dot(ref.Dot)
		if err != nil || d.Layer != layer {
			continue
		}
		out[roundPoint(d.Center)] = ref.Dot
	}
	return out
}

// funnelApex compares cur and next's vertex sets and returns cur's one
// vertex not shared with next (the obstacle the path bends around), along
// with the winding direction the bend should take (the side of the
// cur->next centroid line the apex falls on).
func funnelApex(cur, next navmesh.Triangle) (geom.Point, geom.Winding, bool) {
	shared := func(p geom.Point, tri navmesh.Triangle) bool {
		for _, v := range tri.Vertices {
			if v.DistanceTo(p) < 1e-6 {
				return true
			}
		}
		return false
	}

	var apex geom.Point
	found := false
	for _, v := range cur.Vertices {
		if !shared(v, next) {
			apex = v
			found = true
			break
		}
	}
	if !found {
		return geom.Point{}, 0, false
	}

	travel := next.Centroid.Sub(cur.Centroid)
	toApex := apex.Sub(cur.Centroid)
	cross := travel.X*toApex.Y - travel.Y*toApex.X
	dir := geom.CW
	if cross > 0 {
		dir = geom.CCW
	}
	return apex, dir, true
}

// alreadyConnected reports whether rl.From and rl.To are joined by an
// existing chain of segs/bends on rl.NetID, per spec.md §4.8's no-op
// rule for a ratline whose endpoints are already routed together.
func alreadyConnected(g *layout.Graph, rl Ratline) bool {
	if rl.From == rl.To {
		return true
	}
	adj := buildNetAdjacency(g, rl.Layer, rl.NetID)
	visited := map[layout.DotID]bool{rl.From: true}
	queue := []layout.DotID{rl.From}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == rl.To {
			return true
		}
		for _, n := range adj[cur] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

func buildNetAdjacency(g *layout.Graph, layer layout.Layer, netID int32) map[layout.DotID][]layout.DotID {
	adj := make(map[layout.DotID][]layout.DotID)
	add := func(a, b layout.DotID) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for _, ref := range g.QueryBox(hugeRect) {
		switch ref.Kind {
		case layout.KindSeg:
			s, err := g.Seg(ref.Seg)
			if err != nil || s.Layer != layer || s.NetID != netID {
				continue
			}
			add(s.From, s.To)
		case layout.KindBend:
			b, err := g.Bend(ref.Bend)
			if err != nil || b.Layer != layer || b.NetID != netID {
				continue
			}
			add(b.Inner, b.Core)
			add(b.Core, b.Outer)
		}
	}
	return adj
}
