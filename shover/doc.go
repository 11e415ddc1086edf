// Package shover implements the Shover (component C5 of the topola
// design): when drawing.ExtendToBend reports an Obstructed error against
// another net's band, Shover attempts to displace that band's offending
// primitive just enough to restore clearance, recursing into whatever new
// violations that displacement causes, bounded by a configured depth.
//
// Every displacement is recorded on an in-memory journal of undo
// closures (the same stash-and-restore discipline layout.MoveLooseDot
// uses for a single dot, generalized here across however many primitives
// one shove ends up touching); if any step fails, the whole journal is
// unwound in reverse before Shove returns, which moves every displaced
// loose dot back. A bend re-wrap (RewrapOutermost or RewrapUnder) is not
// reverted by that rollback, so a failed shove can leave a bend at its
// new radius.
package shover

import "errors"

// Sentinel errors returned by Shove.
var (
	// ErrNotShoveable indicates the targeted primitive is not eligible for
	// displacement: a seg with a fixed endpoint, or a primitive that is
	// neither a seg nor a bend. A bend that cannot be re-wrapped yields
	// the error of the failed re-wrap instead.
	ErrNotShoveable = errors.New("shover: primitive is not shoveable")
	// ErrDepthExceeded indicates the recursive shove chain exceeded
	// RouterOptions.MaxShoveDepth without resolving every violation.
	ErrDepthExceeded = errors.New("shover: max shove depth exceeded")
)
