package shover

import "github.com/katalvlaran/topola/layout"

// Result reports what a successful Shove did.
type Result struct {
	// Displaced names the squeezed primitive once Shove has moved or
	// re-wrapped it. Primitives moved by the recursive shoves that follow
	// are not listed.
	Displaced []layout.Ref

	// WrapAround is set when RouterOptions.WrapAroundBands is enabled and
	// Shove chose to recommend routing around the obstacle bend's core
	// instead of displacing anything (spec.md §4.5 step 5). Core names
	// that bend's core dot; the caller (drawing, via the Router) is
	// expected to issue its own ExtendToBend(Core, ...) rather than retry
	// the original extend.
	WrapAround bool
	Core       layout.DotID
}

// journalEntry is one undoable mutation recorded during a shove attempt.
type journalEntry struct {
	undo func() error
}

type journal struct {
	entries []journalEntry
}

func (j *journal) record(undo func() error) {
	j.entries = append(j.entries, journalEntry{undo: undo})
}

// rollback undoes every recorded mutation in reverse order. Undo closures
// are expected to always succeed (they reverse operations the journal
// itself just performed against state it controls); an error here would
// indicate a bug and is best surfaced rather than swallowed, but rollback
// still proceeds through the remaining entries to leave the graph as
// close to its original state as possible.
func (j *journal) rollback() []error {
	var errs []error
	for i := len(j.entries) - 1; i >= 0; i-- {
		if err := j.entries[i].undo(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
