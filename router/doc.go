// Package router implements the Router (component C8 of the topola
// design): given an A* triangle sequence from the pathfinder, it walks
// the sequence, converts each triangle-to-triangle transition into a
// funnel step, and drives drawing.Head through the obstacles, asking the
// shover package to resolve any Obstructed along the way and re-invoking
// the pathfinder when a shove cannot clear a step.
//
// The funnel-step extraction here only recognizes obstacles that land
// exactly on a mesh vertex backed by a real layout.Dot (the common case,
// since board pads, vias, and bend tangent points are exactly the
// vertices navmesh triangulates). A transition whose apex is a bare
// Steiner point on a bend arc is treated as collinear and skipped rather
// than implementing the full geometric funnel algorithm's string-pulling
// across arcs; see DESIGN.md.
package router

import "errors"

// ErrAborted is returned when the context passed to Route is canceled at
// a suspension point (between funnel steps), per spec.md §5's
// cooperative cancellation model.
var ErrAborted = errors.New("router: aborted")

// ErrDepthExceededForExtend indicates extendWithShove made
// RouterOptions.MaxShoveDepth extend attempts (each following a shove or
// a wrap-around redirect) without clearing an obstruction, distinct from
// shover.ErrDepthExceeded (the
// Shover's own recursive displacement budget).
var ErrDepthExceededForExtend = errors.New("router: shove/wrap retries exhausted for this funnel step")

// RouteFailed is returned when a ratline exhausts its replan budget
// without reaching its target, or when no geometric path exists at all.
// The Autorouter (C9) catches this to record the ratline as undone and
// continue with the rest of the netlist.
type RouteFailed struct {
	Ratline Ratline
	cause   error
}

func (e *RouteFailed) Error() string {
	msg := "router: route failed for " + e.Ratline.String()
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *RouteFailed) Unwrap() error { return e.cause }
