package invoker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/autorouter"
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

func TestExecute_PlaceViaThenUndo(t *testing.T) {
	g := testGraph()
	inv := New(g)

	cmd := PlaceVia{At: geom.Point{X: 1, Y: 1}, Layers: []layout.Layer{0, 1}, Radius: 0.2, NetID: 1}
	require.NoError(t, inv.Execute(context.Background(), cmd))

	require.NoError(t, inv.Undo())
	require.ErrorIs(t, inv.Undo(), ErrNothingToUndo)
}

func TestExecute_RedoReappliesCommand(t *testing.T) {
	g := testGraph()
	inv := New(g)

	cmd := PlaceVia{At: geom.Point{X: 1, Y: 1}, Layers: []layout.Layer{0}, Radius: 0.2, NetID: 1}
	require.NoError(t, inv.Execute(context.Background(), cmd))
	require.NoError(t, inv.Undo())
	require.NoError(t, inv.Redo())
	require.ErrorIs(t, inv.Redo(), ErrNothingToRedo)
}

func TestExecute_UndoRedoPreservesPrimitiveIDs(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.2, 0, 1)

	inv := New(g)
	cmd := Autoroute{
		Ratlines: []router.Ratline{{From: a, To: b, NetID: 1, Layer: 0, Width: 0.2}},
		Opts:     routeconfig.Default(),
	}
	require.NoError(t, inv.Execute(context.Background(), cmd))

	before := g.QueryBox(hugeRect)

	require.NoError(t, inv.Undo())
	require.NoError(t, inv.Redo())

	after := g.QueryBox(hugeRect)

	beforeSet := make(map[layout.Ref]bool, len(before))
	for _, ref := range before {
		beforeSet[ref] = true
	}
	require.Len(t, after, len(before))
	for _, ref := range after {
		require.True(t, beforeSet[ref], "ref %+v missing after undo+redo: ids were not preserved", ref)
	}
}

func TestExecute_AutorouteThenUndoRestoresGraph(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.2, 0, 1)

	inv := New(g)
	cmd := Autoroute{
		Ratlines: []router.Ratline{{From: a, To: b, NetID: 1, Layer: 0, Width: 0.2}},
		Opts:     routeconfig.Default(),
	}
	require.NoError(t, inv.Execute(context.Background(), cmd))

	before := len(g.QueryBox(hugeRect))
	require.Greater(t, before, 3)

	require.NoError(t, inv.Undo())
	after := len(g.QueryBox(hugeRect))
	require.Equal(t, 3, after)
}

func TestExecute_AutorouteFillsCallerSuppliedReport(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.2, 0, 1)

	inv := New(g)
	var report autorouter.Report
	cmd := Autoroute{
		Ratlines: []router.Ratline{{From: a, To: b, NetID: 1, Layer: 0, Width: 0.2}},
		Opts:     routeconfig.Default(),
		Report:   &report,
	}
	require.NoError(t, inv.Execute(context.Background(), cmd))
	require.Len(t, report.Done, 1)
	require.Empty(t, report.Undone)
}

func TestAbort_WithNoCommandRunningErrors(t *testing.T) {
	g := testGraph()
	inv := New(g)
	require.ErrorIs(t, inv.Abort(), ErrNoCommandRunning)
}

func TestExecute_RemoveBandsThenUndo(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	_, err := g.AddSeg(a, b, 0.2, 1)
	require.NoError(t, err)

	inv := New(g)
	before := len(g.QueryBox(hugeRect))

	cmd := RemoveBands{Starts: []layout.DotID{a}}
	require.NoError(t, inv.Execute(context.Background(), cmd))

	afterRemove := len(g.QueryBox(hugeRect))
	require.Less(t, afterRemove, before)

	require.NoError(t, inv.Undo())
	afterUndo := len(g.QueryBox(hugeRect))
	require.Equal(t, before, afterUndo)
}
