package cmdstream

import (
	"encoding/json"

	"github.com/katalvlaran/topola/layout"
)

type wireSelector struct {
	Pin   string `json:"pin"`
	Layer int16  `json:"layer"`
}

type wireRouterOptions struct {
	WrapAroundBands           bool     `json:"wrap_around_bands"`
	SqueezeUnderBands         *bool    `json:"squeeze_under_bands,omitempty"`
	SqueezeThroughUnderBands  *bool    `json:"squeeze_through_under_bands,omitempty"`
	RoutedBandWidth           *float64 `json:"routed_band_width,omitempty"`
}

func (w wireRouterOptions) squeeze() bool {
	if w.SqueezeUnderBands != nil {
		return *w.SqueezeUnderBands
	}
	if w.SqueezeThroughUnderBands != nil {
		return *w.SqueezeThroughUnderBands
	}
	return false
}

type wireAutorouteFirst struct {
	Selectors []wireSelector `json:"selectors"`
}

type wireAutorouteSecond struct {
	PresortByPairwiseDetours bool              `json:"presort_by_pairwise_detours"`
	RouterOptions            wireRouterOptions `json:"router_options"`
}

type wirePlaceVia struct {
	At     [2]float64     `json:"at"`
	Layers []layout.Layer `json:"layers"`
}

type wireRemoveBands struct {
	Bands []layout.DotID `json:"bands"`
}

// UnmarshalJSON decodes a single-key tagged {"Kind": payload} object into
// the matching Command field.
func (c *Command) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return ErrUnknownCommand
	}
	var key string
	var raw json.RawMessage
	for k, v := range tagged {
		key, raw = k, v
	}

	switch Kind(key) {
	case KindAutoroute:
		var pair [2]json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return ErrMalformedAutoroute
		}
		var first wireAutorouteFirst
		var second wireAutorouteSecond
		if err := json.Unmarshal(pair[0], &first); err != nil {
			return ErrMalformedAutoroute
		}
		if err := json.Unmarshal(pair[1], &second); err != nil {
			return ErrMalformedAutoroute
		}
		selectors := make([]Selector, len(first.Selectors))
		for i, s := range first.Selectors {
			selectors[i] = Selector{Pin: s.Pin, Layer: layout.Layer(s.Layer)}
		}
		spec := &AutorouteSpec{
			Selectors:                selectors,
			PresortByPairwiseDetours: second.PresortByPairwiseDetours,
			RouterOptions: RouterOptionsPayload{
				WrapAroundBands:   second.RouterOptions.WrapAroundBands,
				SqueezeUnderBands: second.RouterOptions.squeeze(),
				RoutedBandWidth:   second.RouterOptions.RoutedBandWidth,
			},
		}
		*c = Command{Kind: KindAutoroute, Autoroute: spec}
		return nil

	case KindPlaceVia:
		var w wirePlaceVia
		if err := json.Unmarshal(raw, &w); err != nil {
			return err
		}
		*c = Command{Kind: KindPlaceVia, PlaceVia: &PlaceViaSpec{At: w.At, Layers: w.Layers}}
		return nil

	case KindRemoveBands:
		var w wireRemoveBands
		if err := json.Unmarshal(raw, &w); err != nil {
			return err
		}
		*c = Command{Kind: KindRemoveBands, RemoveBands: &RemoveBandsSpec{Bands: w.Bands}}
		return nil

	case KindAbort:
		*c = Command{Kind: KindAbort}
		return nil

	default:
		return ErrUnknownCommand
	}
}

// MarshalJSON encodes c back into its single-key tagged form.
func (c Command) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindAutoroute:
		selectors := make([]wireSelector, len(c.Autoroute.Selectors))
		for i, s := range c.Autoroute.Selectors {
			selectors[i] = wireSelector{Pin: s.Pin, Layer: int16(s.Layer)}
		}
		squeeze := c.Autoroute.RouterOptions.SqueezeUnderBands
		pair := [2]interface{}{
			wireAutorouteFirst{Selectors: selectors},
			wireAutorouteSecond{
				PresortByPairwiseDetours: c.Autoroute.PresortByPairwiseDetours,
				RouterOptions: wireRouterOptions{
					WrapAroundBands:   c.Autoroute.RouterOptions.WrapAroundBands,
					SqueezeUnderBands: &squeeze,
					RoutedBandWidth:   c.Autoroute.RouterOptions.RoutedBandWidth,
				},
			},
		}
		return json.Marshal(map[string]interface{}{string(KindAutoroute): pair})

	case KindPlaceVia:
		w := wirePlaceVia{At: c.PlaceVia.At, Layers: c.PlaceVia.Layers}
		return json.Marshal(map[string]interface{}{string(KindPlaceVia): w})

	case KindRemoveBands:
		w := wireRemoveBands{Bands: c.RemoveBands.Bands}
		return json.Marshal(map[string]interface{}{string(KindRemoveBands): w})

	case KindAbort:
		return json.Marshal(map[string]interface{}{string(KindAbort): struct{}{}})

	default:
		return nil, ErrUnknownCommand
	}
}
