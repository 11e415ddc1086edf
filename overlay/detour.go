package overlay

import (
	"github.com/katalvlaran/topola/layout"
)

// Length returns the actual routed path length between from and to on
// layer, tracing the band of segs/bends connecting them. It returns
// ErrBandNotFound if no band joins the two dots.
func Length(g *layout.Graph, layer layout.Layer, from, to layout.DotID) (float64, error) {
	path, ok := tracePath(g, layer, from, to)
	if !ok {
		return 0, ErrBandNotFound
	}
	return pathLength(g, path)
}

// CompareDetour reports how much longer the actual routed path between
// from and to is than the ideal straight line between them. A band that
// never had to wrap anything has DetourRatio 1.0.
func CompareDetour(g *layout.Graph, layer layout.Layer, from, to layout.DotID) (DetourStats, error) {
	fromDot, err := g.Dot(from)
	if err != nil {
		return DetourStats{}, err
	}
	toDot, err := g.Dot(to)
	if err != nil {
		return DetourStats{}, err
	}
	actual, err := Length(g, layer, from, to)
	if err != nil {
		return DetourStats{}, err
	}
	straight := fromDot.Center.DistanceTo(toDot.Center)
	ratio := 1.0
	if straight > 0 {
		ratio = actual / straight
	}
	return DetourStats{StraightLine: straight, Actual: actual, DetourRatio: ratio}, nil
}

// SummarizeNet aggregates CompareDetour across every (from, to) pair a
// caller names as one net's bands, following the teacher's deleted matrix
// package's mean/variance-over-a-population idiom generalized here to
// detour ratios instead of raw numeric samples.
func SummarizeNet(netID int32, stats []DetourStats) NetDetourSummary {
	s := NetDetourSummary{NetID: netID, BandCount: len(stats)}
	if len(stats) == 0 {
		return s
	}
	var sum float64
	for _, d := range stats {
		sum += d.DetourRatio
		if d.DetourRatio > s.WorstRatio {
			s.WorstRatio = d.DetourRatio
		}
	}
	mean := sum / float64(len(stats))
	var sqDiff float64
	for _, d := range stats {
		diff := d.DetourRatio - mean
		sqDiff += diff * diff
	}
	s.MeanRatio = mean
	s.Variance = sqDiff / float64(len(stats))
	return s
}
