package overlay

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// RatsnestLine is one unrouted straight-line connection a driver would
// render as a rubber-band hint: the Euclidean line between two dots that
// belong to the same net but are not yet joined by any seg or bend chain.
type RatsnestLine struct {
	From  layout.DotID
	To    layout.DotID
	NetID int32
	Line  geom.Segment
}

// DetourStats is CompareDetour's result for one band: the ideal
// straight-line distance between its two terminals against the actual
// routed path length, and their ratio. DetourRatio is 1.0 for a band
// that happens to run perfectly straight and grows with however much
// the band had to wrap around obstacles to get there.
type DetourStats struct {
	StraightLine float64
	Actual       float64
	DetourRatio  float64
}

// NetDetourSummary aggregates DetourStats across every band of one net,
// in the mean/variance-over-a-population idiom the teacher's deleted
// matrix package used for statistics: rather than reporting one ratio per
// band, a caller inspecting a whole net's routing quality wants the
// central tendency and spread of the detour ratio across all of that
// net's bands.
type NetDetourSummary struct {
	NetID       int32
	BandCount   int
	MeanRatio   float64
	Variance    float64
	WorstRatio  float64
}
