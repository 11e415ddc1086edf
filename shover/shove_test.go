package shover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/routeconfig"
)

func testGraph() *layout.Graph {
	return layout.NewGraph(
		layout.WithClearance(func(layout.Layer) float64 { return 0.2 }),
		layout.WithBendOffset(func(layout.Layer) float64 { return 0.2 }),
		layout.WithDebugChecks(),
	)
}

func TestShove_DisplacesLooseSegOutOfTheWay(t *testing.T) {
	g := testGraph()
	opts := routeconfig.Default()

	a1, _ := g.AddLooseDot(geom.Point{X: 0, Y: 1.0}, 0.1, 0, 1)
	a2, _ := g.AddLooseDot(geom.Point{X: 10, Y: 1.0}, 0.1, 0, 1)
	otherSeg, err := g.AddSeg(a1, a2, 0.2, 1)
	require.NoError(t, err)

	squeezing := Squeezing{
		Line:  geom.Segment{A: geom.Point{X: 0, Y: 1.05}, B: geom.Point{X: 10, Y: 1.05}},
		Layer: 0,
		NetID: 2,
	}

	result, err := Shove(g, squeezing, layout.RefSeg(otherSeg), opts)
	require.NoError(t, err)
	require.Contains(t, result.Displaced, layout.RefSeg(otherSeg))

	shape, err := g.SegShape(otherSeg)
	require.NoError(t, err)
	dist, err := geom.MinDistance(squeezing.Line, shape)
	require.NoError(t, err)
	require.GreaterOrEqual(t, dist, g.Clearance(0)-1e-6)
	require.NoError(t, g.CheckInvariants())
}

func TestShove_NoOpWhenAlreadyClear(t *testing.T) {
	g := testGraph()
	opts := routeconfig.Default()

	a1, _ := g.AddLooseDot(geom.Point{X: 0, Y: 1.0}, 0.1, 0, 1)
	a2, _ := g.AddLooseDot(geom.Point{X: 10, Y: 1.0}, 0.1, 0, 1)
	otherSeg, err := g.AddSeg(a1, a2, 0.2, 1)
	require.NoError(t, err)

	squeezing := Squeezing{
		Line:  geom.Segment{A: geom.Point{X: 0, Y: 10}, B: geom.Point{X: 10, Y: 10}},
		Layer: 0,
		NetID: 2,
	}

	result, err := Shove(g, squeezing, layout.RefSeg(otherSeg), opts)
	require.NoError(t, err)
	require.Empty(t, result.Displaced)
}

func TestShove_RewrapsBendOutermostOnCollision(t *testing.T) {
	g := testGraph()
	opts := routeconfig.Default()

	core, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)
	in1, _ := g.AddLooseDot(geom.Point{X: 1.2, Y: -5}, 0.1, 0, 1)
	out1, _ := g.AddLooseDot(geom.Point{X: -1.2, Y: -5}, 0.1, 0, 1)
	bid, err := g.AddBend(core, in1, out1, geom.CCW, 1)
	require.NoError(t, err)

	squeezing := Squeezing{
		Line:  geom.Segment{A: geom.Point{X: 5, Y: 5}, B: geom.Point{X: 6, Y: 5}},
		Layer: 0,
		NetID: 2,
	}

	result, err := Shove(g, squeezing, layout.RefBend(bid), opts)
	require.NoError(t, err)
	require.Contains(t, result.Displaced, layout.RefBend(bid))

	b, err := g.Bend(bid)
	require.NoError(t, err)
	require.Greater(t, b.Radius, 1.2)
	require.NoError(t, g.CheckInvariants())
}

func TestShove_SqueezeUnderBandsFallsBackWhenAlreadyOutermost(t *testing.T) {
	g := testGraph()
	opts := routeconfig.New(routeconfig.WithSqueezeUnderBands())

	core, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)

	in1, _ := g.AddLooseDot(geom.Point{X: 1.2, Y: -5}, 0.1, 0, 1)
	out1, _ := g.AddLooseDot(geom.Point{X: -1.2, Y: -5}, 0.1, 0, 1)
	innerBend, err := g.AddBend(core, in1, out1, geom.CCW, 1)
	require.NoError(t, err)

	in2, _ := g.AddLooseDot(geom.Point{X: 1.4, Y: -5}, 0.1, 0, 1)
	out2, _ := g.AddLooseDot(geom.Point{X: -1.4, Y: -5}, 0.1, 0, 1)
	outerBend, err := g.AddBend(core, in2, out2, geom.CCW, 1)
	require.NoError(t, err)

	before, err := g.Bend(outerBend)
	require.NoError(t, err)

	// Free the innermost radius slot so RewrapUnder has somewhere to go,
	// and leave outerBend the only bend on core: RewrapOutermost then
	// refuses it (it would have to shrink, not grow, to be "outermost"
	// among zero other bends), forcing the SqueezeUnderBands fallback.
	require.NoError(t, g.Remove(layout.RefBend(innerBend)))

	squeezing := Squeezing{
		Line:  geom.Segment{A: geom.Point{X: 5, Y: 5}, B: geom.Point{X: 6, Y: 5}},
		Layer: 0,
		NetID: 2,
	}

	result, err := Shove(g, squeezing, layout.RefBend(outerBend), opts)
	require.NoError(t, err)
	require.Contains(t, result.Displaced, layout.RefBend(outerBend))

	after, err := g.Bend(outerBend)
	require.NoError(t, err)
	require.Less(t, after.Radius, before.Radius)
	require.NoError(t, g.CheckInvariants())
}

func TestShove_WithoutSqueezeUnderBandsFailsWhenAlreadyOutermost(t *testing.T) {
	g := testGraph()
	opts := routeconfig.Default()

	core, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)
	in1, _ := g.AddLooseDot(geom.Point{X: 1.2, Y: -5}, 0.1, 0, 1)
	out1, _ := g.AddLooseDot(geom.Point{X: -1.2, Y: -5}, 0.1, 0, 1)
	bid, err := g.AddBend(core, in1, out1, geom.CCW, 1)
	require.NoError(t, err)

	in2, _ := g.AddLooseDot(geom.Point{X: 1.4, Y: -5}, 0.1, 0, 1)
	out2, _ := g.AddLooseDot(geom.Point{X: -1.4, Y: -5}, 0.1, 0, 1)
	outerBend, err := g.AddBend(core, in2, out2, geom.CCW, 1)
	require.NoError(t, err)
	require.NoError(t, g.Remove(layout.RefBend(bid)))

	squeezing := Squeezing{
		Line:  geom.Segment{A: geom.Point{X: 5, Y: 5}, B: geom.Point{X: 6, Y: 5}},
		Layer: 0,
		NetID: 2,
	}

	_, err = Shove(g, squeezing, layout.RefBend(outerBend), opts)
	require.Error(t, err)
}

func TestShove_WrapAroundBandsReturnsRecommendationWithoutMutating(t *testing.T) {
	g := testGraph()
	opts := routeconfig.New(routeconfig.WithWrapAroundBands())

	core, _ := g.AddFixedDot(geom.Point{X: 0, Y: 0}, 1, 0, 99)
	in1, _ := g.AddLooseDot(geom.Point{X: 1.2, Y: -5}, 0.1, 0, 1)
	out1, _ := g.AddLooseDot(geom.Point{X: -1.2, Y: -5}, 0.1, 0, 1)
	bid, err := g.AddBend(core, in1, out1, geom.CCW, 1)
	require.NoError(t, err)

	before, _ := g.Bend(bid)

	squeezing := Squeezing{
		Line:  geom.Segment{A: geom.Point{X: 5, Y: 5}, B: geom.Point{X: 6, Y: 5}},
		Layer: 0,
		NetID: 2,
	}

	result, err := Shove(g, squeezing, layout.RefBend(bid), opts)
	require.NoError(t, err)
	require.True(t, result.WrapAround)
	require.Equal(t, core, result.Core)

	after, _ := g.Bend(bid)
	require.Equal(t, before.Radius, after.Radius)
}
