// Package invoker implements the Invoker / history (component C10 of the
// topola design): a linear command history with a cursor, supporting
// execute/undo/redo/abort. Every mutation of the layout graph is meant to
// pass through a Command so its inverse journal can be recorded; callers
// should not mutate graph directly once an Invoker owns it.
//
// Commands are grounded on the teacher's cooperative, step-checked long
// operations (flow.Dinic's per-phase ctx.Err() checks): Autoroute runs
// autorouter.Run under a cancelable context the Invoker owns, so Abort
// can stop it at the next ratline boundary.
package invoker

import "errors"

var (
	// ErrNothingToUndo indicates Undo was called with the cursor already
	// at the start of history.
	ErrNothingToUndo = errors.New("invoker: nothing to undo")
	// ErrNothingToRedo indicates Redo was called with the cursor already
	// at the end of history.
	ErrNothingToRedo = errors.New("invoker: nothing to redo")
	// ErrNoCommandRunning indicates Abort was called with no Execute in
	// flight.
	ErrNoCommandRunning = errors.New("invoker: no command is currently executing")
)
