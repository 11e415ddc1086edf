package cmdstream

import (
	"errors"

	"github.com/katalvlaran/topola/boardadapter"
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/invoker"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/routeconfig"
	"github.com/katalvlaran/topola/router"
)

// ErrPinNetUnknown indicates a selector named a pin that boardadapter's
// NetTable has no entry for.
var ErrPinNetUnknown = errors.New("cmdstream: pin belongs to no known net")

// defaultViaRadius is used for PlaceVia commands, whose wire payload
// (spec.md §6: {at, layers}) carries no radius of its own.
const defaultViaRadius = 0.3

// Translate turns a decoded Command into the invoker.Command the core
// actually executes, resolving pin references through table and net
// membership through nets (the same boardadapter.Net list Load consumed).
// Abort has no invoker.Command counterpart (it is a method on the running
// Invoker, see invoker.Abort), so Translate returns (nil, true, nil) for
// it; callers check the bool return value before calling inv.Abort().
func Translate(cmd Command, table boardadapter.NetTable, nets []boardadapter.Net) (invoker.Command, bool, error) {
	switch cmd.Kind {
	case KindAbort:
		return nil, true, nil

	case KindPlaceVia:
		c := invoker.PlaceVia{
			At:     geom.Point{X: cmd.PlaceVia.At[0], Y: cmd.PlaceVia.At[1]},
			Layers: cmd.PlaceVia.Layers,
			Radius: defaultViaRadius,
			NetID:  layout.NoNet,
		}
		return c, false, nil

	case KindRemoveBands:
		return invoker.RemoveBands{Starts: cmd.RemoveBands.Bands}, false, nil

	case KindAutoroute:
		ratlines, err := autorouteRatlines(cmd.Autoroute, table, nets)
		if err != nil {
			return nil, false, err
		}
		opts := routeconfig.Default()
		opts.WrapAroundBands = cmd.Autoroute.RouterOptions.WrapAroundBands
		opts.SqueezeUnderBands = cmd.Autoroute.RouterOptions.SqueezeUnderBands
		opts.PresortByPairwiseDetours = cmd.Autoroute.PresortByPairwiseDetours
		if w := cmd.Autoroute.RouterOptions.RoutedBandWidth; w != nil {
			opts.RoutedBandWidth = *w
		}
		return invoker.Autoroute{Ratlines: ratlines, Opts: opts}, false, nil

	default:
		return nil, false, ErrUnknownCommand
	}
}

// pinNetIDs builds a pin -> NetID lookup from the same net membership
// boardadapter.Load itself derives from desc.Nets.
func pinNetIDs(table boardadapter.NetTable, nets []boardadapter.Net) map[string]int32 {
	lookup := make(map[string]int32)
	for _, net := range nets {
		netID, ok := table.NetIDs[net.Name]
		if !ok {
			continue
		}
		for _, pin := range net.Pins {
			lookup[pin] = netID
		}
	}
	return lookup
}

// autorouteRatlines pairs consecutive selectors into router.Ratline
// values (spec.md §6: "pair them as consecutive (0,1),(2,3),...").
func autorouteRatlines(spec *AutorouteSpec, table boardadapter.NetTable, nets []boardadapter.Net) ([]router.Ratline, error) {
	if len(spec.Selectors)%2 != 0 {
		return nil, ErrOddSelectorCount
	}
	pinNet := pinNetIDs(table, nets)
	width := 0.2
	if w := spec.RouterOptions.RoutedBandWidth; w != nil {
		width = *w
	}

	ratlines := make([]router.Ratline, 0, len(spec.Selectors)/2)
	for i := 0; i < len(spec.Selectors); i += 2 {
		a, b := spec.Selectors[i], spec.Selectors[i+1]
		if a.Layer != b.Layer {
			return nil, ErrLayerMismatch
		}
		fromID, ok := table.Pins[a.Pin]
		if !ok {
			return nil, ErrPinNetUnknown
		}
		toID, ok := table.Pins[b.Pin]
		if !ok {
			return nil, ErrPinNetUnknown
		}
		netID, ok := pinNet[a.Pin]
		if !ok {
			return nil, ErrPinNetUnknown
		}
		ratlines = append(ratlines, router.Ratline{
			From:  fromID,
			To:    toID,
			NetID: netID,
			Layer: a.Layer,
			Width: width,
		})
	}
	return ratlines, nil
}
