// Package cmdstream (de)serializes the JSON command-stream history file
// format: a top-level {done:[Cmd], undone:[Cmd]} object where each Cmd is
// a single-key tagged object naming one of Autoroute, PlaceVia,
// RemoveBands, Abort. This is the one package built on stdlib
// encoding/json rather than a third-party library: the teacher and the
// rest of the retrieval pack carry no JSON/serialization dependency
// anywhere, so there is nothing in the pack's own stack to reach for
// instead.
//
// cmdstream only decodes the wire shape; Translate turns a decoded
// Command into the invoker.Command the core actually executes, resolving
// pin references through a boardadapter.NetTable.
package cmdstream

import "errors"

var (
	// ErrUnknownCommand indicates a Cmd object had zero or more than one
	// top-level key, or a key not among the four recognized commands.
	ErrUnknownCommand = errors.New("cmdstream: unrecognized command")
	// ErrMalformedAutoroute indicates an Autoroute payload was not the
	// two-element [selectors, options] array spec.md §6 defines.
	ErrMalformedAutoroute = errors.New("cmdstream: malformed Autoroute payload")
	// ErrLayerMismatch indicates a selector pair named two different
	// layers; the router routes one ratline on one layer.
	ErrLayerMismatch = errors.New("cmdstream: selector pair spans two different layers")
	// ErrOddSelectorCount indicates an Autoroute payload listed an odd
	// number of selectors, which cannot be paired into ratlines.
	ErrOddSelectorCount = errors.New("cmdstream: odd number of selectors")
)
