package deduce

import "sudoku-deduce/internal/core"

// Tier 5: strong-link cluster bridges. Each strong-link component has
// two clusters (one true, one false); a weak link from a node on one
// cluster to a node whose opposite-color cluster is another component's
// cluster B means "this cluster true" forces "B true". BFS over that
// inter-cluster implication graph, starting from each cluster in turn;
// if it reaches both clusters of some component, the start cluster
// must be false, so every node of the opposite cluster of the start is
// filled.

type clusterSide struct {
	comp     int
	trueSide bool
}

func detectClusterBridge(b *Board, g *LinkGraph) *core.Step {
	comps := StrongComponentsCombined(g)
	if len(comps) < 2 {
		return nil
	}
	nodeComp := make(map[int]int, 729)
	// nodeOnSide[n] is the BFS-assigned boolean side of n within its
	// component; "true side" and "false side" are just the two halves,
	// colorBFS's start node arbitrarily gets false.
	nodeOnSide := make(map[int]bool, 729)
	for ci, comp := range comps {
		color := colorBFS(comp[0], func(n int) []int { return g.StrongCombined[n].ToSlice() })
		for n, c := range color {
			nodeComp[n] = ci
			nodeOnSide[n] = c
		}
	}

	for ci := range comps {
		for _, side := range []bool{true, false} {
			if step := propagateClusterAssumption(b, g, comps, nodeComp, nodeOnSide, ci, side); step != nil {
				return step
			}
		}
	}
	return nil
}

// propagateClusterAssumption assumes component start's `side` cluster
// holds and BFS-propagates forced clusters across weak-link bridges
// (a weak link from a true node forces the opposite cluster of its
// target's component true). A contradiction — reaching both clusters
// of any component, including start's own — proves the assumption
// false, so the opposite cluster of (start, side) is filled.
func propagateClusterAssumption(b *Board, g *LinkGraph, comps [][]int, nodeComp map[int]int, nodeOnSide map[int]bool, start int, side bool) *core.Step {
	forcedTrue := map[clusterSide]bool{{comp: start, trueSide: side}: true}
	queue := []clusterSide{{comp: start, trueSide: side}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range comps[cur.comp] {
			if nodeOnSide[n] != cur.trueSide {
				continue
			}
			for _, wn := range g.WeakCombined[n].ToSlice() {
				otherComp, ok := nodeComp[wn]
				if !ok || otherComp == cur.comp {
					continue
				}
				forced := clusterSide{comp: otherComp, trueSide: !nodeOnSide[wn]}
				if forcedTrue[forced] {
					continue
				}
				opposite := clusterSide{comp: forced.comp, trueSide: !forced.trueSide}
				if forcedTrue[opposite] {
					return fillOppositeCluster(b, comps[start], nodeOnSide, side)
				}
				forcedTrue[forced] = true
				queue = append(queue, forced)
			}
		}
	}
	return nil
}

// fillOppositeCluster reports the fills implied by the opposite
// cluster of (comp, side) being entirely true.
func fillOppositeCluster(b *Board, comp []int, nodeOnSide map[int]bool, side bool) *core.Step {
	var fills []core.Assignment
	var primary []core.CellRef
	for _, n := range comp {
		if nodeOnSide[n] == side {
			continue
		}
		cell, digit := NodeCellDigit(n)
		if b.Cells[cell] == 0 && b.Candidates[cell].Has(digit) {
			fills = append(fills, core.Assignment{Cell: ToCellRef(cell), Digit: digit})
			primary = append(primary, ToCellRef(cell))
		}
	}
	if len(fills) == 0 {
		return nil
	}
	return &core.Step{
		Ref:        core.TechniqueRef{Title: "Strong-Link Cluster Bridge", Slug: "strong-link-cluster-bridge"},
		Level:      5,
		Fills:      fills,
		Highlights: core.Highlights{Primary: primary},
	}
}
