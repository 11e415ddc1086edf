package autorouter

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
	"github.com/katalvlaran/topola/router"
)

// maxTwoOptPasses bounds the local-search pass over the visiting order so
// presorting stays a bounded preprocessing step rather than an unbounded
// optimization, mirroring a TSP solver's iteration cap.
const maxTwoOptPasses = 50

// presortByPairwiseDetours reorders indices into ratlines so that
// consecutive visits tend to be geometrically close, reducing the total
// travel between one ratline's end and the next one's start. It is a
// deterministic greedy nearest-neighbor construction followed by a
// bounded 2-opt local-search pass over the resulting tour, the shape
// lifted from a classical TSP solver's construct-then-improve dispatch.
func presortByPairwiseDetours(g *layout.Graph, ratlines []router.Ratline) []int {
	n := len(ratlines)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n < 3 {
		return order
	}

	starts := make([]geom.Point, n)
	ends := make([]geom.Point, n)
	for i, rl := range ratlines {
		from, err := g.Dot(rl.From)
		if err != nil {
			return order
		}
		to, err := g.Dot(rl.To)
		if err != nil {
			return order
		}
		starts[i] = from.Center
		ends[i] = to.Center
	}

	order = greedyNearestNeighbor(starts, ends)
	order = boundedTwoOpt(order, starts, ends)
	return order
}

func greedyNearestNeighbor(starts, ends []geom.Point) []int {
	n := len(starts)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	visited[0] = true
	order = append(order, 0)
	curEnd := ends[0]

	for len(order) < n {
		best := -1
		bestDist := 0.0
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d := curEnd.DistanceTo(starts[i])
			if best == -1 || d < bestDist {
				best, bestDist = i, d
			}
		}
		visited[best] = true
		order = append(order, best)
		curEnd = ends[best]
	}
	return order
}

// boundedTwoOpt repeatedly reverses a sub-tour of order if doing so
// shortens the total end-to-start travel distance, stopping at the first
// full pass that finds no improvement, or after maxTwoOptPasses passes.
func boundedTwoOpt(order []int, starts, ends []geom.Point) []int {
	n := len(order)
	if n < 4 {
		return order
	}

	tourCost := func(o []int) float64 {
		total := 0.0
		for i := 0; i+1 < len(o); i++ {
			total += ends[o[i]].DistanceTo(starts[o[i+1]])
		}
		return total
	}

	for pass := 0; pass < maxTwoOptPasses; pass++ {
		improved := false
		base := tourCost(order)
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				reversed := reverseSlice(order, i, j)
				if tourCost(reversed) < base-geom.Epsilon {
					order = reversed
					improved = true
					base = tourCost(order)
				}
			}
		}
		if !improved {
			break
		}
	}
	return order
}

func reverseSlice(order []int, i, j int) []int {
	out := make([]int, len(order))
	copy(out, order)
	for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}
