package cmdstream

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/layout"
)

func TestCommand_DecodesAutoroutePayload(t *testing.T) {
	raw := `{"Autoroute":[{"selectors":[{"pin":"U1-1","layer":0},{"pin":"U2-1","layer":0}]},{"presort_by_pairwise_detours":true,"router_options":{"wrap_around_bands":true,"squeeze_through_under_bands":true,"routed_band_width":0.25}}]}`

	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(raw), &cmd))
	require.Equal(t, KindAutoroute, cmd.Kind)
	require.Len(t, cmd.Autoroute.Selectors, 2)
	require.Equal(t, "U1-1", cmd.Autoroute.Selectors[0].Pin)
	require.True(t, cmd.Autoroute.PresortByPairwiseDetours)
	require.True(t, cmd.Autoroute.RouterOptions.WrapAroundBands)
	require.True(t, cmd.Autoroute.RouterOptions.SqueezeUnderBands)
	require.NotNil(t, cmd.Autoroute.RouterOptions.RoutedBandWidth)
	require.InDelta(t, 0.25, *cmd.Autoroute.RouterOptions.RoutedBandWidth, 1e-9)
}

func TestCommand_AcceptsBothSqueezeSpellings(t *testing.T) {
	raw := `{"Autoroute":[{"selectors":[]},{"router_options":{"squeeze_under_bands":true}}]}`
	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(raw), &cmd))
	require.True(t, cmd.Autoroute.RouterOptions.SqueezeUnderBands)

	raw = `{"Autoroute":[{"selectors":[]},{"router_options":{"squeeze_through_under_bands":true}}]}`
	cmd = Command{}
	require.NoError(t, json.Unmarshal([]byte(raw), &cmd))
	require.True(t, cmd.Autoroute.RouterOptions.SqueezeUnderBands)
}

func TestCommand_DecodesPlaceVia(t *testing.T) {
	raw := `{"PlaceVia":{"at":[1.5,2.5],"layers":[0,1]}}`
	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(raw), &cmd))
	require.Equal(t, KindPlaceVia, cmd.Kind)
	require.Equal(t, [2]float64{1.5, 2.5}, cmd.PlaceVia.At)
	require.Equal(t, []layout.Layer{0, 1}, cmd.PlaceVia.Layers)
}

func TestCommand_DecodesRemoveBands(t *testing.T) {
	raw := `{"RemoveBands":{"bands":[3,7]}}`
	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(raw), &cmd))
	require.Equal(t, KindRemoveBands, cmd.Kind)
	require.Equal(t, []layout.DotID{3, 7}, cmd.RemoveBands.Bands)
}

func TestCommand_DecodesAbort(t *testing.T) {
	raw := `{"Abort":{}}`
	var cmd Command
	require.NoError(t, json.Unmarshal([]byte(raw), &cmd))
	require.Equal(t, KindAbort, cmd.Kind)
}

func TestCommand_RejectsMultiKeyObject(t *testing.T) {
	raw := `{"Abort":{},"PlaceVia":{}}`
	var cmd Command
	require.ErrorIs(t, json.Unmarshal([]byte(raw), &cmd), ErrUnknownCommand)
}

func TestHistory_RoundTripsThroughJSON(t *testing.T) {
	h := History{
		Done: []Command{
			{Kind: KindAbort},
			{Kind: KindRemoveBands, RemoveBands: &RemoveBandsSpec{Bands: []layout.DotID{1}}},
		},
	}
	data, err := json.Marshal(h)
	require.NoError(t, err)

	var h2 History
	require.NoError(t, json.Unmarshal(data, &h2))
	require.Equal(t, h.Done[0].Kind, h2.Done[0].Kind)
	require.Equal(t, h.Done[1].RemoveBands.Bands, h2.Done[1].RemoveBands.Bands)
}
