package cmdstream

import "github.com/katalvlaran/topola/layout"

// Selector names one pin and the layer the autorouter should treat it on,
// per spec.md §6's {pin, layer} shape.
type Selector struct {
	Pin   string
	Layer layout.Layer
}

// RouterOptionsPayload mirrors the router_options object of an Autoroute
// command. SqueezeUnderBands is decoded from either on-disk spelling
// (squeeze_under_bands or squeeze_through_under_bands); RoutedBandWidth
// is a pointer so an absent key is distinguishable from an explicit 0.
type RouterOptionsPayload struct {
	WrapAroundBands   bool
	SqueezeUnderBands bool
	RoutedBandWidth   *float64
}

// AutorouteSpec is the decoded two-element Autoroute payload: which pins
// to route, and how.
type AutorouteSpec struct {
	Selectors                []Selector
	PresortByPairwiseDetours bool
	RouterOptions            RouterOptionsPayload
}

// PlaceViaSpec is the decoded PlaceVia payload.
type PlaceViaSpec struct {
	At     [2]float64
	Layers []layout.Layer
}

// RemoveBandsSpec is the decoded RemoveBands payload. Each BandID is one
// dot id belonging to the band (the band's traced chain is recovered from
// any one of its own dots, see invoker.RemoveBands).
type RemoveBandsSpec struct {
	Bands []layout.DotID
}

// Kind enumerates the four recognized command tags.
type Kind string

const (
	KindAutoroute   Kind = "Autoroute"
	KindPlaceVia    Kind = "PlaceVia"
	KindRemoveBands Kind = "RemoveBands"
	KindAbort       Kind = "Abort"
)

// Command is one decoded entry of a command stream: exactly one of the
// payload fields is populated, selected by Kind, mirroring the on-disk
// single-key tagged object.
type Command struct {
	Kind        Kind
	Autoroute   *AutorouteSpec
	PlaceVia    *PlaceViaSpec
	RemoveBands *RemoveBandsSpec
}

// History is the top-level command-stream document: every command
// already executed, and every command undone (available for Redo).
type History struct {
	Done   []Command `json:"done"`
	Undone []Command `json:"undone"`
}
