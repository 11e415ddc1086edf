package navmesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

func testGraph() *layout.Graph {
	return layout.NewGraph(
		layout.WithClearance(func(layout.Layer) float64 { return 0.2 }),
		layout.WithBendOffset(func(layout.Layer) float64 { return 0.2 }),
	)
}

func TestTriangles_BuildsFromDots(t *testing.T) {
	g := testGraph()
	_, _ = g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.3, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.3, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.3, 0, 1)

	m := New(g)
	tris, err := m.Triangles(0, 1)
	require.NoError(t, err)
	require.NotEmpty(t, tris)
}

func TestTriangles_TooFewVertices(t *testing.T) {
	g := testGraph()
	_, _ = g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.3, 0, 1)

	m := New(g)
	_, err := m.Triangles(0, 1)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestTriangles_MarksOtherNetBandsBlocked(t *testing.T) {
	g := testGraph()
	a, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.2, 0, 1)
	b, _ := g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.2, 0, 1)
	c, _ := g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.2, 0, 1)

	x, _ := g.AddLooseDot(geom.Point{X: 4.5, Y: 3}, 0.1, 0, 2)
	y, _ := g.AddLooseDot(geom.Point{X: 5.5, Y: 3}, 0.1, 0, 2)
	_, _ = g.AddSeg(x, y, 0.2, 2)

	m := New(g)
	tris, err := m.Triangles(0, 1)
	require.NoError(t, err)

	blockedFound := false
	for _, tr := range tris {
		if tr.Blocked {
			blockedFound = true
		}
	}
	require.True(t, blockedFound)
	_ = a
	_ = b
	_ = c
}

func TestMarkDirty_ForcesRebuild(t *testing.T) {
	g := testGraph()
	_, _ = g.AddFixedDot(geom.Point{X: 0, Y: 0}, 0.3, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 10, Y: 0}, 0.3, 0, 1)
	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 10}, 0.3, 0, 1)

	m := New(g)
	first, err := m.Triangles(0, 1)
	require.NoError(t, err)

	_, _ = g.AddFixedDot(geom.Point{X: 5, Y: 5}, 0.1, 0, 1)
	m.MarkDirty(0, 1)

	second, err := m.Triangles(0, 1)
	require.NoError(t, err)
	require.Greater(t, len(second), len(first))
}
