// Package boardadapter implements the Board adapter (component C11 of
// the topola design): it consumes an externally-parsed Specctra DSN-like
// board description (layers, pads, vias, keepouts, nets) and seeds a
// fresh layout.Graph from it, returning a NetTable the caller uses to
// resolve pin references into DotIDs when building ratlines.
//
// This is the wiring the teacher's converterts package only documented
// intent for (two-way adapters between core.Graph and an external graph
// representation) but never implemented; boardadapter plays that role
// for one concrete external representation, a parsed DSN board, instead
// of a generic graph library.
package boardadapter

import "errors"

var (
	// ErrUnknownPin indicates a net referenced a pin string no pad in the
	// board description defines.
	ErrUnknownPin = errors.New("boardadapter: unknown pin reference")
	// ErrUnknownLayer indicates a pad, via, or keepout named a layer not
	// present in the board description's layer list.
	ErrUnknownLayer = errors.New("boardadapter: unknown layer")
	// ErrDuplicatePin indicates two pads share the same pin reference.
	ErrDuplicatePin = errors.New("boardadapter: duplicate pin reference")
)
