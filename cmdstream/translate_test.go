package cmdstream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/boardadapter"
	"github.com/katalvlaran/topola/invoker"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/router"
)

func testTable() (boardadapter.NetTable, []boardadapter.Net) {
	table := boardadapter.NetTable{
		NetIDs: map[string]int32{"NET1": 1},
		Pins: map[string]layout.DotID{
			"U1-1": 10,
			"U2-1": 11,
		},
	}
	nets := []boardadapter.Net{{Name: "NET1", Pins: []string{"U1-1", "U2-1"}}}
	return table, nets
}

func TestTranslate_AutorouteProducesRatlines(t *testing.T) {
	table, nets := testTable()
	cmd := Command{
		Kind: KindAutoroute,
		Autoroute: &AutorouteSpec{
			Selectors: []Selector{
				{Pin: "U1-1", Layer: 0},
				{Pin: "U2-1", Layer: 0},
			},
		},
	}

	out, isAbort, err := Translate(cmd, table, nets)
	require.NoError(t, err)
	require.False(t, isAbort)

	ar, ok := out.(invoker.Autoroute)
	require.True(t, ok)
	require.Equal(t, []router.Ratline{{From: 10, To: 11, NetID: 1, Layer: 0, Width: 0.2}}, ar.Ratlines)
}

func TestTranslate_AutorouteUnknownPinErrors(t *testing.T) {
	table, nets := testTable()
	cmd := Command{
		Kind: KindAutoroute,
		Autoroute: &AutorouteSpec{
			Selectors: []Selector{
				{Pin: "U1-1", Layer: 0},
				{Pin: "U9-9", Layer: 0},
			},
		},
	}
	_, _, err := Translate(cmd, table, nets)
	require.ErrorIs(t, err, ErrPinNetUnknown)
}

func TestTranslate_AutorouteMismatchedLayersErrors(t *testing.T) {
	table, nets := testTable()
	cmd := Command{
		Kind: KindAutoroute,
		Autoroute: &AutorouteSpec{
			Selectors: []Selector{
				{Pin: "U1-1", Layer: 0},
				{Pin: "U2-1", Layer: 1},
			},
		},
	}
	_, _, err := Translate(cmd, table, nets)
	require.ErrorIs(t, err, ErrLayerMismatch)
}

func TestTranslate_AbortReturnsNoCommand(t *testing.T) {
	table, nets := testTable()
	out, isAbort, err := Translate(Command{Kind: KindAbort}, table, nets)
	require.NoError(t, err)
	require.True(t, isAbort)
	require.Nil(t, out)
}

func TestTranslate_PlaceViaUsesDefaultRadius(t *testing.T) {
	table, nets := testTable()
	cmd := Command{
		Kind:     KindPlaceVia,
		PlaceVia: &PlaceViaSpec{At: [2]float64{1, 2}, Layers: []layout.Layer{0, 1}},
	}
	out, isAbort, err := Translate(cmd, table, nets)
	require.NoError(t, err)
	require.False(t, isAbort)
	pv, ok := out.(invoker.PlaceVia)
	require.True(t, ok)
	require.Equal(t, defaultViaRadius, pv.Radius)
	require.Equal(t, layout.NoNet, pv.NetID)
}
