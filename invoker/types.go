package invoker

import (
	"context"
	"sync"

	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/navmesh"
)

// Command is one user- or autorouter-originated intent. apply performs
// the command's forward effect against inv's graph/mesh and returns a
// journal capable of unwinding a partially-applied attempt (several
// sub-steps in, one fails) back to apply's own starting point. It is not
// the mechanism behind the Invoker's own Undo/Redo, which works from
// whole-graph snapshots instead (see execute.go).
type Command interface {
	Name() string
	apply(ctx context.Context, inv *Invoker) (journal, error)
}

// journalEntry is one undoable mutation recorded while a command applies.
type journalEntry struct {
	undo func() error
}

// journal collects a command's inverse operations in application order;
// rollback replays them in reverse, mirroring the shover package's
// stash-and-restore discipline generalized to whole commands. Used for
// intra-apply atomicity only; see Command's doc comment.
type journal struct {
	entries []journalEntry
}

func (j *journal) record(undo func() error) {
	j.entries = append(j.entries, journalEntry{undo: undo})
}

func (j *journal) rollback() {
	for i := len(j.entries) - 1; i >= 0; i-- {
		_ = j.entries[i].undo()
	}
}

// historyEntry pairs one executed command with full before/after graph
// snapshots (layout.Graph.Clone), so Undo/Redo restore the graph exactly
// as it was rather than recomputing it — the only way to honor spec.md
// §8's undo/redo law that primitive ids survive a round trip, since
// re-running apply would allocate fresh ids from the graph's monotonic
// counter instead of reproducing the originals.
type historyEntry struct {
	cmd    Command
	before *layout.Graph
	after  *layout.Graph
}

// Invoker owns the live layout graph and its navmesh cache, and is the
// only path through which either may be mutated once constructed, per
// spec.md §5's single-writer model.
type Invoker struct {
	mu     sync.Mutex
	graph  *layout.Graph
	mesh   *navmesh.Mesh
	history []historyEntry
	cursor  int // number of entries currently applied (redo tail is history[cursor:])

	runningCancel context.CancelFunc
}

// New returns an Invoker owning graph, with a fresh navmesh.Mesh cache
// over it.
func New(graph *layout.Graph) *Invoker {
	return &Invoker{
		graph: graph,
		mesh:  navmesh.New(graph),
	}
}

// Graph returns the invoker-owned graph, for read-only inspection (e.g.
// by overlay) while no command is executing.
func (inv *Invoker) Graph() *layout.Graph { return inv.graph }

// Mesh returns the invoker-owned navmesh cache.
func (inv *Invoker) Mesh() *navmesh.Mesh { return inv.mesh }
