package autorouter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/routeconfig"
	"github.com/katalvlaran/topola/router"
)

func testGraph() *layout.Graph {
	return layout.NewGraph(
		layout.WithClearance(func(layout.Layer) float64 { return 0.1 }),
		layout.WithBendOffset(func(layout.Layer) float64 { return 0.1 }),
	)
}

func TestRun_RoutesAllReachableRatlines(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	c, _ := g.AddFixedDot(geom.Point{X: 10, Y: 10}, 0.2, 0, 2)
	d, _ := g.AddFixedDot(geom.Point{X: 0, Y: 10}, 0.2, 0, 2)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 5}, 0.2, 0, 3)

	ratlines := []router.Ratline{
		{From: a, To: b, NetID: 1, Layer: 0, Width: 0.2},
		{From: c, To: d, NetID: 2, Layer: 0, Width: 0.2},
	}

	report, err := Run(context.Background(), g, ratlines, routeconfig.Default())
	require.NoError(t, err)
	require.Len(t, report.Done, 2)
	require.Empty(t, report.Undone)
}

func TestRun_RecordsUndoneWithoutAbortingBatch(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 5}, 0.2, 0, 1)

	// Layer 1 carries only these two dots, too few to triangulate, so
	// this ratline is guaranteed to fail without any wrapping or shoving
	// able to rescue it.
	c, _ := g.AddFixedDot(geom.Point{X: 20, Y: 0}, 0.2, 1, 2)
	d, _ := g.AddFixedDot(geom.Point{X: 30, Y: 0}, 0.2, 1, 2)

	ratlines := []router.Ratline{
		{From: a, To: b, NetID: 1, Layer: 0, Width: 0.2},
		{From: c, To: d, NetID: 2, Layer: 1, Width: 0.2},
	}

	report, err := Run(context.Background(), g, ratlines, routeconfig.Default())
	require.NoError(t, err)
	require.Len(t, report.Done, 1)
	require.Len(t, report.Undone, 1)
}

func TestRun_EmptyRatlinesErrors(t *testing.T) {
	g := testGraph()
	_, err := Run(context.Background(), g, nil, routeconfig.Default())
	require.ErrorIs(t, err, ErrEmptyRatlines)
}

func TestRun_PresortDoesNotChangeCorrectness(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	c, _ := g.AddFixedDot(geom.Point{X: 10, Y: 10}, 0.2, 0, 2)
	d, _ := g.AddFixedDot(geom.Point{X: 0, Y: 10}, 0.2, 0, 2)
	e, _ := g.AddFixedDot(geom.Point{X: 20, Y: 20}, 0.2, 0, 3)
	f, _ := g.AddFixedDot(geom.Point{X: 30, Y: 20}, 0.2, 0, 3)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 5}, 0.2, 0, 4)

	ratlines := []router.Ratline{
		{From: a, To: b, NetID: 1, Layer: 0, Width: 0.2},
		{From: c, To: d, NetID: 2, Layer: 0, Width: 0.2},
		{From: e, To: f, NetID: 3, Layer: 0, Width: 0.2},
	}

	opts := routeconfig.New(routeconfig.WithPresortByPairwiseDetours())
	report, err := Run(context.Background(), g, ratlines, opts)
	require.NoError(t, err)
	require.Len(t, report.Done, 3)
}
