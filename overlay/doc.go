// Package overlay implements the Overlay/inspection component (C12 of
// the topola design): read-only views over a layout.Graph snapshot for a
// driver to render or report on, without holding the live graph's lock
// for the duration of a traversal. Every entry point here takes a
// *layout.Graph obtained via Clone, mirroring the teacher's pattern of
// handing read-only callers an isolated copy rather than exposing the
// live mutable structure.
package overlay

import "errors"

// ErrBandNotFound indicates CompareDetour or Length was asked about a
// ratline whose endpoints are not connected by any band in the graph.
var ErrBandNotFound = errors.New("overlay: no band connects the given endpoints")
