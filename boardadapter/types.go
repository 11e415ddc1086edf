package boardadapter

import "github.com/katalvlaran/topola/layout"
import "github.com/katalvlaran/topola/geom"

// Pad is one externally-parsed DSN pad: a component pin at a position on
// a layer, with a circular footprint. Pin is "<comp>-<num>" per spec.md
// §6.
type Pad struct {
	Pin    string
	Layer  layout.Layer
	At     geom.Point
	Radius float64
}

// Via is a pre-placed plated-through-hole connecting the named layers.
type Via struct {
	At     geom.Point
	Layers []layout.Layer
	Radius float64
}

// Keepout is a no-routing zone on one layer, modeled as a fixed dot
// belonging to layout.NoNet so ordinary nets are kept clear of it by the
// same collision machinery that keeps different nets apart.
type Keepout struct {
	At     geom.Point
	Radius float64
	Layer  layout.Layer
}

// Net names a DSN net and the ordered pin references belonging to it,
// plus its class defaults.
type Net struct {
	Name      string
	Pins      []string
	Width     float64
	Clearance float64
}

// BoardDescription is the externally-parsed DSN board value boardadapter
// consumes; spec.md §6 leaves Specctra DSN/SES parsing itself external,
// so this struct is the agreed boundary shape.
type BoardDescription struct {
	Layers   []layout.Layer
	Pads     []Pad
	Vias     []Via
	Keepouts []Keepout
	Nets     []Net

	// DefaultClearance and DefaultBendOffset seed layout.Graph's
	// per-layer policy functions when a net does not override them.
	DefaultClearance float64
	DefaultBendOffset float64
}

// NetTable resolves DSN-level names to the graph-level ids boardadapter
// assigned them.
type NetTable struct {
	// NetIDs maps a net's Name to the NetID assigned during Load.
	NetIDs map[string]int32
	// Pins maps a pin reference ("<comp>-<num>") to the DotID of the pad
	// Load created for it. Via terminal dots are not addressable by pin
	// reference and are not included here.
	Pins map[string]layout.DotID
}
