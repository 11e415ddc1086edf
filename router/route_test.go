package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/navmesh"
	"github.com/katalvlaran/topola/routeconfig"
)

func testGraph() *layout.Graph {
	return layout.NewGraph(
		layout.WithClearance(func(layout.Layer) float64 { return 0.1 }),
		layout.WithBendOffset(func(layout.Layer) float64 { return 0.1 }),
	)
}

func TestRoute_StraightLineNoObstacles(t *testing.T) {
	g := testGraph()
	from, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	to, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.2, 0, 1)

	mesh := navmesh.New(g)
	opts := routeconfig.Default()

	rl := Ratline{From: from, To: to, NetID: 1, Layer: 0, Width: 0.2}
	err := Route(context.Background(), g, mesh, rl, opts)
	require.NoError(t, err)
}

func TestRoute_AlreadyConnectedIsNoOp(t *testing.T) {
	g := testGraph()
	from, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	to, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, err := g.AddSeg(from, to, 0.2, 1)
	require.NoError(t, err)

	mesh := navmesh.New(g)
	opts := routeconfig.Default()

	rl := Ratline{From: from, To: to, NetID: 1, Layer: 0, Width: 0.2}
	err = Route(context.Background(), g, mesh, rl, opts)
	require.NoError(t, err)
}

func TestRoute_WrapsObstacleBetweenEndpoints(t *testing.T) {
	g := testGraph()
	from, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	to, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 0}, 0.5, 0, 2)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 8}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: -8}, 0.2, 0, 1)

	mesh := navmesh.New(g)
	opts := routeconfig.Default()

	rl := Ratline{From: from, To: to, NetID: 1, Layer: 0, Width: 0.2}
	err := Route(context.Background(), g, mesh, rl, opts)
	require.NoError(t, err)
}

func TestRoute_NoGeometricPathFails(t *testing.T) {
	g := testGraph()
	from, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	to, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)

	mesh := navmesh.New(g)
	opts := routeconfig.Default()

	rl := Ratline{From: from, To: to, NetID: 1, Layer: 0, Width: 0.2}
	err := Route(context.Background(), g, mesh, rl, opts)
	require.Error(t, err)
}

func TestRoute_CanceledContextAborts(t *testing.T) {
	g := testGraph()
	from, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	to, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.2, 0, 1)

	mesh := navmesh.New(g)
	opts := routeconfig.Default()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rl := Ratline{From: from, To: to, NetID: 1, Layer: 0, Width: 0.2}
	err := Route(ctx, g, mesh, rl, opts)
	require.ErrorIs(t, err, ErrAborted)
}
