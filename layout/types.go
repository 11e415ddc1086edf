package layout

import (
	"fmt"

	"github.com/katalvlaran/topola/geom"
)

// DotID, SegID, BendID are dense arena indices, never reused within one
// Graph's lifetime. Using integer ids instead of pointers keeps the graph
// free of the polymorphic-node-object problem spec.md's design notes call
// out: Dot/Seg/Bend are a tagged variant (see Kind/Ref) addressed by id,
// not an object hierarchy.
type DotID uint64
type SegID uint64
type BendID uint64

// Layer is a copper layer index; routing happens per-layer except at vias.
type Layer int16

// NoNet is the sentinel NetID for primitives that belong to no net (board
// keep-outs, for instance, model as fixed dots with NoNet).
const NoNet int32 = -1

// Dot is a circular, fixed-radius copper pad or internal bend-vertex.
type Dot struct {
	ID     DotID
	Center geom.Point
	Radius float64
	Layer  Layer
	NetID  int32 // NoNet if unassigned
	Fixed  bool  // true: pin/pad/via terminal, never moved. false: loose.
}

func (d *Dot) shape() geom.Circle { return geom.Circle{Center: d.Center, Radius: d.Radius} }

// Seg is a straight copper segment joining exactly two dots. Its geometry
// is induced by its endpoints; Seg itself owns only width/layer/net.
type Seg struct {
	ID     SegID
	From   DotID
	To     DotID
	Width  float64
	Layer  Layer
	NetID  int32
}

// Bend is a circular arc wrapped around a core dot, connecting two loose
// dots (Inner and Outer) tangentially.
type Bend struct {
	ID     BendID
	Core   DotID
	Inner  DotID
	Outer  DotID
	Dir    geom.Winding
	Layer  Layer
	NetID  int32
	Radius float64 // core.Radius plus a whole multiple of the layer's bend offset (see AddBend)
}

// Kind tags a Ref's primitive type.
type Kind uint8

const (
	KindDot Kind = iota
	KindSeg
	KindBend
)

// Ref is a tagged reference to one primitive, used wherever spec.md's
// pseudocode writes a bare "id" that could be any of Dot/Seg/Bend (e.g.
// Neighbors, Remove, WouldCollideError.Other).
type Ref struct {
	Kind Kind
	Dot  DotID
	Seg  SegID
	Bend BendID
}

func RefDot(id DotID) Ref   { return Ref{Kind: KindDot, Dot: id} }
func RefSeg(id SegID) Ref   { return Ref{Kind: KindSeg, Seg: id} }
func RefBend(id BendID) Ref { return Ref{Kind: KindBend, Bend: id} }

func (r Ref) String() string {
	switch r.Kind {
	case KindDot:
		return fmt.Sprintf("dot#%d", r.Dot)
	case KindSeg:
		return fmt.Sprintf("seg#%d", r.Seg)
	case KindBend:
		return fmt.Sprintf("bend#%d", r.Bend)
	default:
		return "ref(?)"
	}
}

// ClearanceFunc returns the required clearance between primitives of
// different nets on the given layer. Board adapters populate this from
// the DSN board description's clearance rules.
type ClearanceFunc func(layer Layer) float64

// BendOffsetFunc returns the per-wrap radial offset (width+clearance,
// typically) added for each successive bend sharing a core dot on a
// layer, per spec.md §4.4's bend-offset stacking rule.
type BendOffsetFunc func(layer Layer) float64
