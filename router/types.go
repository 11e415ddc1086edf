package router

import (
	"fmt"

	"github.com/katalvlaran/topola/layout"
)

// Ratline is one unrouted connection the Router is asked to turn into a
// Band: a straight-line "rubber band" between two already-placed fixed
// dots on the same net and layer, per spec.md §2's Ratline definition.
type Ratline struct {
	From  layout.DotID
	To    layout.DotID
	NetID int32
	Layer layout.Layer
	Width float64
}

func (r Ratline) String() string {
	return fmt.Sprintf("ratline(net=%d, layer=%d, %d->%d)", r.NetID, r.Layer, r.From, r.To)
}
