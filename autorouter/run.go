package autorouter

import (
	"context"
	"errors"

	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/navmesh"
	"github.com/katalvlaran/topola/routeconfig"
	"github.com/katalvlaran/topola/router"
)

// Run routes ratlines against graph in visiting order (optionally
// presorted per opts.PresortByPairwiseDetours), sharing one navmesh.Mesh
// across the whole batch so each successful route's MarkDirty only
// invalidates the (layer, net_id) pair it touched. Each ratline is its
// own transaction: router.Route already rolls back exactly the band it
// was drawing on failure, so a failed ratline neither disturbs earlier
// successes nor aborts the rest of the batch. Only ctx cancellation
// (router.ErrAborted) stops the batch early.
func Run(ctx context.Context, g *layout.Graph, ratlines []router.Ratline, opts routeconfig.RouterOptions) (Report, error) {
	if len(ratlines) == 0 {
		return Report{}, ErrEmptyRatlines
	}

	order := make([]int, len(ratlines))
	for i := range order {
		order[i] = i
	}
	if opts.PresortByPairwiseDetours {
		order = presortByPairwiseDetours(g, ratlines)
	}

	mesh := navmesh.New(g)
	var report Report

	for _, idx := range order {
		if err := ctx.Err(); err != nil {
			return report, router.ErrAborted
		}

		err := router.Route(ctx, g, mesh, ratlines[idx], opts)
		if err == nil {
			report.Done = append(report.Done, RatlineID(idx))
			continue
		}
		if errors.Is(err, router.ErrAborted) {
			report.Undone = append(report.Undone, RatlineID(idx))
			return report, err
		}
		report.Undone = append(report.Undone, RatlineID(idx))
	}

	return report, nil
}
