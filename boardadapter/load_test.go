package boardadapter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

func TestLoad_SeedsPadsAndAssignsNets(t *testing.T) {
	desc := BoardDescription{
		Layers: []layout.Layer{0},
		Pads: []Pad{
			{Pin: "U1-1", Layer: 0, At: geom.Point{X: 0, Y: 0}, Radius: 0.3},
			{Pin: "U2-1", Layer: 0, At: geom.Point{X: 10, Y: 0}, Radius: 0.3},
		},
		Nets: []Net{
			{Name: "NET1", Pins: []string{"U1-1", "U2-1"}, Width: 0.2, Clearance: 0.2},
		},
		DefaultClearance:  0.1,
		DefaultBendOffset: 0.1,
	}

	g, table, err := Load(desc)
	require.NoError(t, err)
	require.NotNil(t, g)
	require.Equal(t, int32(1), table.NetIDs["NET1"])

	u1, ok := table.Pins["U1-1"]
	require.True(t, ok)
	d, err := g.Dot(u1)
	require.NoError(t, err)
	require.Equal(t, int32(1), d.NetID)
	require.True(t, d.Fixed)
}

func TestLoad_UnknownPinInNetErrors(t *testing.T) {
	desc := BoardDescription{
		Layers: []layout.Layer{0},
		Pads: []Pad{
			{Pin: "U1-1", Layer: 0, At: geom.Point{X: 0, Y: 0}, Radius: 0.3},
		},
		Nets: []Net{
			{Name: "NET1", Pins: []string{"U1-1", "U2-1"}},
		},
		DefaultClearance: 0.1,
	}

	_, _, err := Load(desc)
	require.ErrorIs(t, err, ErrUnknownPin)
}

func TestLoad_KeepoutSeedsNoNetDot(t *testing.T) {
	desc := BoardDescription{
		Layers:           []layout.Layer{0},
		Keepouts:         []Keepout{{At: geom.Point{X: 5, Y: 5}, Radius: 1, Layer: 0}},
		DefaultClearance: 0.1,
	}
	g, _, err := Load(desc)
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestLoad_UnknownLayerOnPadErrors(t *testing.T) {
	desc := BoardDescription{
		Layers: []layout.Layer{0},
		Pads:   []Pad{{Pin: "U1-1", Layer: 5, At: geom.Point{X: 0, Y: 0}, Radius: 0.3}},
	}
	_, _, err := Load(desc)
	require.ErrorIs(t, err, ErrUnknownLayer)
}
