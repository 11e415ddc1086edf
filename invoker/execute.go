package invoker

import "context"

// Execute applies cmd, appends it to the history, and truncates any redo
// tail, per spec.md §4.10. If cmd's apply returns an error, its partial
// journal (if any) is rolled back immediately and history is left
// unchanged — cmd is never recorded half-applied.
func (inv *Invoker) Execute(ctx context.Context, cmd Command) error {
	inv.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	inv.runningCancel = cancel
	before := inv.graph.Clone()
	inv.mu.Unlock()

	defer func() {
		inv.mu.Lock()
		inv.runningCancel = nil
		inv.mu.Unlock()
		cancel()
	}()

	j, err := cmd.apply(runCtx, inv)
	if err != nil {
		j.rollback()
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	after := inv.graph.Clone()
	inv.history = inv.history[:inv.cursor]
	inv.history = append(inv.history, historyEntry{cmd: cmd, before: before, after: after})
	inv.cursor++
	return nil
}

// Undo moves the cursor back one command and restores the graph to its
// pre-command snapshot in place (layout.Graph.RestoreFrom), preserving
// every primitive id exactly as it was before the command ran.
func (inv *Invoker) Undo() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.cursor == 0 {
		return ErrNothingToUndo
	}
	inv.cursor--
	inv.graph.RestoreFrom(inv.history[inv.cursor].before)
	inv.mesh.MarkAllDirty()
	return nil
}

// Redo moves the cursor forward one command by restoring the graph to its
// post-command snapshot in place, rather than re-invoking apply: apply
// would allocate fresh ids from the graph's monotonic counter, which
// would violate spec.md §8's round-trip law that undo followed by redo
// reproduces the same state with the same primitive ids.
func (inv *Invoker) Redo() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.cursor >= len(inv.history) {
		return ErrNothingToRedo
	}
	inv.graph.RestoreFrom(inv.history[inv.cursor].after)
	inv.cursor++
	inv.mesh.MarkAllDirty()
	return nil
}

// Abort cancels the context passed to the currently executing command's
// apply, per spec.md §5's cooperative cancellation: the command's own
// suspension-point checks (e.g. autorouter.Run's between-ratlines check)
// observe ctx.Err() and return promptly with whatever partial journal
// they had already recorded.
func (inv *Invoker) Abort() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.runningCancel == nil {
		return ErrNoCommandRunning
	}
	inv.runningCancel()
	return nil
}
