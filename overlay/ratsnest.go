package overlay

import (
	"github.com/katalvlaran/topola/geom"
	"github.com/katalvlaran/topola/layout"
)

// unionFind is a tiny disjoint-set helper that groups a net's dots into
// connected components without pulling in a graph library for it.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) { uf.parent[uf.find(a)] = uf.find(b) }

// Ratsnest returns the straight-line connections a driver renders as
// rubber-band hints: for every net dot not yet joined to the rest of its
// net by a routed seg/bend chain, the shortest line to another
// not-yet-joined component of the same net. Dots already connected by a
// band contribute no ratsnest line between them.
func Ratsnest(g *layout.Graph, layer layout.Layer, netID int32) []RatsnestLine {
	var dots []layout.DotID
	for _, ref := range g.QueryBox(hugeRect) {
		if ref.Kind != layout.KindDot {
			continue
		}
		d, err := g.Dot(ref.Dot)
		if err != nil || d.Layer != layer || d.NetID != netID {
			continue
		}
		dots = append(dots, ref.Dot)
	}
	if len(dots) < 2 {
		return nil
	}

	adj := buildBandAdjacency(g, layer)
	uf := newUnionFind(len(dots))
	index := make(map[layout.DotID]int, len(dots))
	for i, id := range dots {
		index[id] = i
	}
	for i, id := range dots {
		for _, e := range adj[id] {
			if j, ok := index[e.other]; ok {
				uf.union(i, j)
			}
		}
	}

	var lines []RatsnestLine
	for {
		groups := make(map[int][]int)
		for i := range dots {
			r := uf.find(i)
			groups[r] = append(groups[r], i)
		}
		if len(groups) <= 1 {
			break
		}

		roots := make([]int, 0, len(groups))
		for r := range groups {
			roots = append(roots, r)
		}

		bestDist := -1.0
		var bestA, bestB int
		for gi := 0; gi < len(roots); gi++ {
			for gj := gi + 1; gj < len(roots); gj++ {
				for _, a := range groups[roots[gi]] {
					for _, b := range groups[roots[gj]] {
						da, _ := g.Dot(dots[a])
						db, _ := g.Dot(dots[b])
						d := da.Center.DistanceTo(db.Center)
						if bestDist < 0 || d < bestDist {
							bestDist, bestA, bestB = d, a, b
						}
					}
				}
			}
		}
		if bestDist < 0 {
			break
		}
		da, _ := g.Dot(dots[bestA])
		db, _ := g.Dot(dots[bestB])
		lines = append(lines, RatsnestLine{
			From:  dots[bestA],
			To:    dots[bestB],
			NetID: netID,
			Line:  geom.Segment{A: da.Center, B: db.Center},
		})
		uf.union(bestA, bestB)
	}
	return lines
}
