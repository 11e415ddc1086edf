package drawing

import "github.com/katalvlaran/topola/layout"

// Head is a band under construction: a fixed start dot, a current loose
// "pencil tip" dot (or the start dot itself before any extend), and the
// ordered steps taken so far.
type Head struct {
	graph    *layout.Graph
	netID    int32
	layer    layout.Layer
	width    float64
	start    layout.DotID
	current  layout.DotID
	steps    []step
	finished bool
}

// step records one ExtendToBend, in enough detail for UndoLast to remove
// exactly what it added and restore the head's prior position.
type step struct {
	seg1, seg2 layout.SegID
	inner      layout.DotID
	outer      layout.DotID
	bend       layout.BendID
	prevHead   layout.DotID
}

// NetID returns the net the band under construction belongs to.
func (h *Head) NetID() int32 { return h.netID }

// Layer returns the layer the band under construction is drawn on.
func (h *Head) Layer() layout.Layer { return h.layer }

// Current returns the dot the head is currently positioned at.
func (h *Head) Current() layout.DotID { return h.current }

// Finished reports whether FinishAt has already closed this head.
func (h *Head) Finished() bool { return h.finished }
