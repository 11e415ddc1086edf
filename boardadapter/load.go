package boardadapter

import "github.com/katalvlaran/topola/layout"

// Load seeds a fresh layout.Graph from desc: one fixed dot per pad, one
// fixed dot per via per layer it spans, and one NoNet fixed dot per
// keepout, then assigns a NetID per named net. Nets are assigned NetIDs
// in the order they appear in desc.Nets, starting at 1 (no net gets 0;
// keepouts carry layout.NoNet, the sentinel -1).
func Load(desc BoardDescription) (*layout.Graph, NetTable, error) {
	layerSet := make(map[layout.Layer]bool, len(desc.Layers))
	for _, l := range desc.Layers {
		layerSet[l] = true
	}

	clearanceByLayer := make(map[layout.Layer]float64)
	for _, net := range desc.Nets {
		// A net's clearance is a board-wide default unless DSN carries
		// per-layer classes; boardadapter keeps one clearance per layer
		// board-wide, taking the largest requested by any net, so every
		// net's minimum spacing requirement is honored everywhere.
		for l := range layerSet {
			if net.Clearance > clearanceByLayer[l] {
				clearanceByLayer[l] = net.Clearance
			}
		}
	}
	for l := range layerSet {
		if clearanceByLayer[l] == 0 {
			clearanceByLayer[l] = desc.DefaultClearance
		}
	}

	g := layout.NewGraph(
		layout.WithClearance(func(l layout.Layer) float64 {
			if c, ok := clearanceByLayer[l]; ok {
				return c
			}
			return desc.DefaultClearance
		}),
		layout.WithBendOffset(func(layout.Layer) float64 { return desc.DefaultBendOffset }),
	)

	table := NetTable{
		NetIDs: make(map[string]int32),
		Pins:   make(map[string]layout.DotID),
	}
	for i, net := range desc.Nets {
		table.NetIDs[net.Name] = int32(i + 1)
	}

	pinNet := make(map[string]int32)
	for _, net := range desc.Nets {
		netID := table.NetIDs[net.Name]
		for _, pin := range net.Pins {
			pinNet[pin] = netID
		}
	}

	for _, pad := range desc.Pads {
		if !layerSet[pad.Layer] {
			return nil, NetTable{}, ErrUnknownLayer
		}
		if _, dup := table.Pins[pad.Pin]; dup {
			return nil, NetTable{}, ErrDuplicatePin
		}
		netID, ok := pinNet[pad.Pin]
		if !ok {
			netID = layout.NoNet
		}
		id, err := g.AddFixedDot(pad.At, pad.Radius, pad.Layer, netID)
		if err != nil {
			return nil, NetTable{}, err
		}
		table.Pins[pad.Pin] = id
	}

	// Pre-placed vias in the board description carry no net of their own
	// (spec.md §6's vias[] names only position and spanned layers); a
	// via tied to a specific net is instead placed mid-session via
	// invoker.PlaceVia, which does take a NetID.
	for _, via := range desc.Vias {
		for _, l := range via.Layers {
			if !layerSet[l] {
				return nil, NetTable{}, ErrUnknownLayer
			}
			if _, err := g.AddFixedDot(via.At, via.Radius, l, layout.NoNet); err != nil {
				return nil, NetTable{}, err
			}
		}
	}

	for _, ko := range desc.Keepouts {
		if !layerSet[ko.Layer] {
			return nil, NetTable{}, ErrUnknownLayer
		}
		if _, err := g.AddFixedDot(ko.At, ko.Radius, ko.Layer, layout.NoNet); err != nil {
			return nil, NetTable{}, err
		}
	}

	for _, net := range desc.Nets {
		for _, pin := range net.Pins {
			if _, ok := table.Pins[pin]; !ok {
				return nil, NetTable{}, ErrUnknownPin
			}
		}
	}

	return g, table, nil
}
