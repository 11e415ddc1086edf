// Package layout implements the persistent, mutable graph of routing
// primitives that is the core's primary state (component C3 of the
// topola design): Dots (fixed pads/vias or loose bend-ends), Segs (straight
// copper between two dots), and Bends (circular arcs wrapping a core dot
// between two loose dots).
//
// Graph generalizes the teacher's core.Graph (a single vertex/edge arena
// behind one pair of RWMutex-guarded maps) to three arenas sharing one
// lock, because dots/segs/bends cross-reference each other constantly
// (a bend references three dots; a seg references two) and a single lock
// avoids the lock-ordering hazards a per-arena lock split would introduce.
//
// Every mutating method is failure-atomic: on any validation error the
// graph is left exactly as it was before the call (stash-and-restore),
// mirroring the "either succeeds fully or changes nothing" contract
// spec.md requires of C3.
package layout

import "errors"

// Sentinel errors returned by layout's mutating operations. All of these
// are recoverable by callers except ErrInvariantViolation, which per
// spec.md §7 is always a bug and is never expected to occur given inputs
// validated by this package's own preconditions; it exists so internal
// invariant checks (CheckInvariants) have a typed error to report.
var (
	// ErrDotNotFound indicates a referenced DotID does not exist.
	ErrDotNotFound = errors.New("layout: dot not found")
	// ErrSegNotFound indicates a referenced SegID does not exist.
	ErrSegNotFound = errors.New("layout: seg not found")
	// ErrBendNotFound indicates a referenced BendID does not exist.
	ErrBendNotFound = errors.New("layout: bend not found")
	// ErrNotLoose indicates an operation that requires a loose dot was
	// given a fixed dot (e.g. MoveLooseDot, or using a fixed dot as a
	// bend's inner/outer end).
	ErrNotLoose = errors.New("layout: dot is not loose")
	// ErrSameDot indicates a seg was asked to connect a dot to itself.
	ErrSameDot = errors.New("layout: seg endpoints must be distinct")
	// ErrLayerMismatch indicates primitives on different layers were
	// asked to connect or interact.
	ErrLayerMismatch = errors.New("layout: layer mismatch")
	// ErrDependents indicates a Remove was refused because other
	// primitives still depend on the target (e.g. removing a dot that is
	// still a seg endpoint).
	ErrDependents = errors.New("layout: primitive has dependents")
	// ErrInvariantViolation is always a bug: it means the attempted
	// mutation would have broken (or did break, if detected only by
	// CheckInvariants) one of the layout graph's structural invariants.
	ErrInvariantViolation = errors.New("layout: invariant violation")
)

// WouldCollideError is returned by Add* operations when the new
// primitive's inflated shape intersects an existing primitive of a
// different net. It names the offending primitive so callers (drawing,
// shover) can decide how to react.
type WouldCollideError struct {
	Other Ref
}

func (e *WouldCollideError) Error() string {
	return "layout: would collide with " + e.Other.String()
}
