package invoker

import (
	"context"

	"github.com/katalvlaran/topola/autorouter"
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/routeconfig"
	"github.com/katalvlaran/topola/router"
)

// PlaceVia adds a fixed dot of Radius/NetID at At on every layer named,
// per spec.md §6's PlaceVia payload ({at, layers}). A real via also
// shorts those dots together electrically; linking them is a board
// concern the layout graph itself does not model, so PlaceVia only seeds
// the per-layer terminal dots a band can later connect to.
type PlaceVia struct {
	At     geom.Point
	Layers []layout.Layer
	Radius float64
	NetID  int32
}

func (PlaceVia) Name() string { return "PlaceVia" }

func (c PlaceVia) apply(ctx context.Context, inv *Invoker) (journal, error) {
	var j journal
	var added []layout.DotID
	for _, layer := range c.Layers {
		id, err := inv.graph.AddFixedDot(c.At, c.Radius, layer, c.NetID)
		if err != nil {
			for i := len(added) - 1; i >= 0; i-- {
				_ = inv.graph.Remove(layout.RefDot(added[i]))
			}
			return journal{}, err
		}
		added = append(added, id)
	}
	for _, id := range added {
		id := id
		j.record(func() error { return inv.graph.Remove(layout.RefDot(id)) })
	}
	return j, nil
}

// Autoroute runs autorouter.Run over Ratlines under ctx, per spec.md
// §6's Autoroute payload (selectors plus router_options). autorouter.Run's
// sub-operations (per-ratline routing, funnel steps, shoves) are opaque
// to the Invoker, so rather than threading incremental-inverse logging
// through three more packages, Autoroute leaves Undo/Redo to Execute's
// own before/after graph snapshots (see execute.go) instead of building
// a per-command inverse itself.
type Autoroute struct {
	Ratlines []router.Ratline
	Opts     routeconfig.RouterOptions

	// Report, if non-nil, receives the autorouter.Report produced by this
	// run once apply completes (or partially completes) — the only way a
	// caller can see which ratlines went Undone, since Execute returns an
	// error only when the run fails before any ratline is recorded (an
	// empty ratline list, or an abort before the first ratline); a run
	// with Undone ratlines, or one aborted part way, returns nil.
	Report *autorouter.Report
}

func (Autoroute) Name() string { return "Autoroute" }

func (c Autoroute) apply(ctx context.Context, inv *Invoker) (journal, error) {
	report, err := autorouter.Run(ctx, inv.graph, c.Ratlines, c.Opts)
	if c.Report != nil {
		*c.Report = report
	}
	if err != nil && report.Done == nil && report.Undone == nil {
		return journal{}, err
	}

	inv.mesh.MarkAllDirty()
	return journal{}, nil
}

// RemoveBands deletes the bands starting at each of Starts (one endpoint
// dot per band), per spec.md §6's RemoveBands payload. If one Starts
// entry fails to trace or remove after an earlier one already succeeded,
// its journal recreates whatever the earlier entries removed so apply
// never leaves the graph with only some of Starts removed; the
// Invoker's own Undo (see execute.go) handles the normal one-command
// rollback case via a full graph snapshot instead.
type RemoveBands struct {
	Starts []layout.DotID
}

func (RemoveBands) Name() string { return "RemoveBands" }

func (c RemoveBands) apply(ctx context.Context, inv *Invoker) (journal, error) {
	var j journal
	for _, start := range c.Starts {
		chain, err := traceBand(inv.graph, start)
		if err != nil {
			j.rollback()
			return journal{}, err
		}
		if err := removeChainWithJournal(inv.graph, chain, &j); err != nil {
			j.rollback()
			return journal{}, err
		}
	}
	inv.mesh.MarkAllDirty()
	return j, nil
}
