package drawing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

func testGraph() *layout.Graph {
	return layout.NewGraph(
		layout.WithClearance(func(layout.Layer) float64 { return 0.1 }),
		layout.WithBendOffset(func(layout.Layer) float64 { return 0.2 }),
		layout.WithDebugChecks(),
	)
}

func TestStartFrom_FinishAt_Direct(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.5, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.5, 0, 1)

	h, err := StartFrom(g, a, 0.3, 1)
	require.NoError(t, err)
	require.NoError(t, h.FinishAt(b))
	require.NoError(t, g.CheckInvariants())
}

func TestExtendToBend_WrapsObstacleAndFinishes(t *testing.T) {
	g := testGraph()
	start, _ := g.AddFixedDot(geom.Point{X: -5, Y: 0}, 0.3, 0, 1)
	obstacle, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)
	target, _ := g.AddFixedDot(geom.Point{X: 5, Y: 0}, 0.3, 0, 1)

	h, err := StartFrom(g, start, 0.2, 1)
	require.NoError(t, err)

	require.NoError(t, h.ExtendToBend(obstacle, geom.CCW))
	require.NotEqual(t, start, h.Current())

	require.NoError(t, h.FinishAt(target))
	require.True(t, h.Finished())
	require.NoError(t, g.CheckInvariants())
}

func TestExtendToBend_StacksSecondBendFartherOut(t *testing.T) {
	g := testGraph()
	start, _ := g.AddFixedDot(geom.Point{X: -5, Y: 0}, 0.3, 0, 1)
	obstacle, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)

	h1, _ := StartFrom(g, start, 0.2, 1)
	require.NoError(t, h1.ExtendToBend(obstacle, geom.CCW))

	start2, _ := g.AddFixedDot(geom.Point{X: -5, Y: -3}, 0.3, 0, 2)
	h2, _ := StartFrom(g, start2, 0.2, 2)
	require.NoError(t, h2.ExtendToBend(obstacle, geom.CCW))

	r1, _ := radiusOfLastBend(g, h1)
	r2, _ := radiusOfLastBend(g, h2)
	require.Greater(t, r2, r1)
}

func radiusOfLastBend(g *layout.Graph, h *Head) (float64, error) {
	b, err := g.Bend(h.steps[len(h.steps)-1].bend)
	if err != nil {
		return 0, err
	}
	return b.Radius, nil
}

func TestUndoLast_RestoresPriorPosition(t *testing.T) {
	g := testGraph()
	start, _ := g.AddFixedDot(geom.Point{X: -5, Y: 0}, 0.3, 0, 1)
	obstacle, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)

	h, _ := StartFrom(g, start, 0.2, 1)
	require.NoError(t, h.ExtendToBend(obstacle, geom.CCW))
	require.NoError(t, h.UndoLast())
	require.Equal(t, start, h.Current())
	require.NoError(t, g.CheckInvariants())

	require.ErrorIs(t, h.UndoLast(), ErrNothingToUndo)
}

func TestExtendToBend_ObstructedByThirdNet(t *testing.T) {
	g := testGraph()
	start, _ := g.AddFixedDot(geom.Point{X: -5, Y: 0}, 0.3, 0, 1)
	obstacle, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)
	// Blocker sits right where the tangent seg to the obstacle must pass.
	_, _ = g.AddFixedDot(geom.Point{X: -2.5, Y: 1.3}, 0.5, 0, 77)

	h, _ := StartFrom(g, start, 0.2, 1)
	err := h.ExtendToBend(obstacle, geom.CCW)
	if err != nil {
		var obstructed *Obstructed
		require.ErrorAs(t, err, &obstructed)
	}
}
