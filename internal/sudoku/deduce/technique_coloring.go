package deduce

import (
	"sort"

	"sudoku-deduce/internal/core"
)

// Tier 4: strong-link coloring. Each connected component of the
// strong-link graph is two-colored by BFS; the two colors are the two
// mutually exclusive truth assignments of the component. Searched
// per-digit first, then over the combined (cell,digit) node graph so a
// component may span several digits through bivalue cells.

// colorBFS two-colors the connected component reachable from start
// over neighbors(node), returning node->color (false/true) for every
// visited node, alternating color at successive BFS layers.
func colorBFS(start int, neighbors func(int) []int) map[int]bool {
	color := map[int]bool{start: false}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range neighbors(cur) {
			if _, seen := color[n]; seen {
				continue
			}
			color[n] = !color[cur]
			queue = append(queue, n)
		}
	}
	return color
}

// nodeDistance is the Chebyshev-biased distance between two cells,
// 10*max(|dr|,|dc|) + min(|dr|,|dc|). Used only to pick the closest
// witnesses when several could justify the same elimination.
func nodeDistance(a, b int) int {
	dr := RowOf(a) - RowOf(b)
	if dr < 0 {
		dr = -dr
	}
	dc := ColOf(a) - ColOf(b)
	if dc < 0 {
		dc = -dc
	}
	if dr < dc {
		dr, dc = dc, dr
	}
	return 10*dr + dc
}

// sortedNodes returns the keys of a color map in ascending order, so
// every pass over a component visits nodes in a reproducible order.
func sortedNodes(color map[int]bool) []int {
	nodes := make([]int, 0, len(color))
	for n := range color {
		nodes = append(nodes, n)
	}
	sort.Ints(nodes)
	return nodes
}

func detectSimpleColoring(b *Board, ui *UnitIndex, g *LinkGraph) *core.Step {
	for d := 1; d <= 9; d++ {
		visited := make(map[int]bool, 81)
		for start := 0; start < 81; start++ {
			if visited[start] || g.StrongByDigit[d][start].IsEmpty() {
				continue
			}
			color := colorBFS(start, func(n int) []int { return g.StrongByDigit[d][n].ToSlice() })
			nodes := sortedNodes(color)
			for _, n := range nodes {
				visited[n] = true
			}
			if len(nodes) < 2 {
				continue
			}
			if step := sameColorIntersection(b, d, nodes, color); step != nil {
				return step
			}
			if step := crossColorSqueeze(b, d, nodes, color); step != nil {
				return step
			}
		}
	}
	return nil
}

// sameColorIntersection finds two same-colored cells of the component
// that share a unit. They cannot both be true, and same-colored cells
// stand or fall together, so neither can be true: the digit is erased
// from both.
func sameColorIntersection(b *Board, d int, nodes []int, color map[int]bool) *core.Step {
	for x := 0; x < len(nodes); x++ {
		for y := x + 1; y < len(nodes); y++ {
			a, c := nodes[x], nodes[y]
			if color[a] != color[c] || !ArePeers(a, c) {
				continue
			}
			return &core.Step{
				Ref:   core.TechniqueRef{Title: "Simple Coloring", Slug: "simple-coloring"},
				Level: 4,
				Erases: []core.Candidate{
					{Row: RowOf(a), Col: ColOf(a), Digit: d},
					{Row: RowOf(c), Col: ColOf(c), Digit: d},
				},
				Highlights: core.Highlights{
					Primary: []core.CellRef{ToCellRef(a), ToCellRef(c)},
				},
			}
		}
	}
	return nil
}

// crossColorSqueeze finds an uncolored candidate cell that sees cells
// of both colors: whichever color is true attacks it, so the digit is
// erased. The recorded witnesses are the closest cell of each color by
// nodeDistance, ties broken by ascending cell index.
func crossColorSqueeze(b *Board, d int, nodes []int, color map[int]bool) *core.Step {
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 || !b.Candidates[i].Has(d) {
			continue
		}
		if _, colored := color[i]; colored {
			continue
		}
		bestPos, bestNeg := -1, -1
		for _, n := range nodes {
			if !ArePeers(i, n) {
				continue
			}
			if color[n] {
				if bestPos < 0 || nodeDistance(i, n) < nodeDistance(i, bestPos) {
					bestPos = n
				}
			} else {
				if bestNeg < 0 || nodeDistance(i, n) < nodeDistance(i, bestNeg) {
					bestNeg = n
				}
			}
		}
		if bestPos >= 0 && bestNeg >= 0 {
			return &core.Step{
				Ref:    core.TechniqueRef{Title: "Simple Coloring", Slug: "simple-coloring"},
				Level:  4,
				Erases: []core.Candidate{{Row: RowOf(i), Col: ColOf(i), Digit: d}},
				Highlights: core.Highlights{
					Primary:   []core.CellRef{ToCellRef(i)},
					Secondary: []core.CellRef{ToCellRef(bestPos), ToCellRef(bestNeg)},
				},
			}
		}
	}
	return nil
}

// detectMultiColoring runs the same two rules over the combined
// (cell,digit) node graph, where bivalue cells bridge digits into one
// component.
func detectMultiColoring(b *Board, g *LinkGraph) *core.Step {
	visited := make(map[int]bool, 729)
	for start := 0; start < 729; start++ {
		if visited[start] || g.StrongCombined[start].IsEmpty() {
			continue
		}
		color := colorBFS(start, func(n int) []int { return g.StrongCombined[n].ToSlice() })
		nodes := sortedNodes(color)
		for _, n := range nodes {
			visited[n] = true
		}
		if len(nodes) < 2 {
			continue
		}
		if step := sameColorIntersectionCombined(b, g, nodes, color); step != nil {
			return step
		}
		if step := crossColorSqueezeCombined(b, g, nodes, color); step != nil {
			return step
		}
	}
	return nil
}

// sameColorIntersectionCombined finds two same-colored nodes joined by
// any link (same cell, or same unit and digit) and erases both.
func sameColorIntersectionCombined(b *Board, g *LinkGraph, nodes []int, color map[int]bool) *core.Step {
	for x := 0; x < len(nodes); x++ {
		for y := x + 1; y < len(nodes); y++ {
			na, nc := nodes[x], nodes[y]
			if color[na] != color[nc] || !g.WeakCombined[na].Has(nc) {
				continue
			}
			cellA, digitA := NodeCellDigit(na)
			cellC, digitC := NodeCellDigit(nc)
			return &core.Step{
				Ref:   core.TechniqueRef{Title: "Multi-Coloring", Slug: "multi-coloring"},
				Level: 4,
				Erases: []core.Candidate{
					{Row: RowOf(cellA), Col: ColOf(cellA), Digit: digitA},
					{Row: RowOf(cellC), Col: ColOf(cellC), Digit: digitC},
				},
				Highlights: core.Highlights{
					Primary: []core.CellRef{ToCellRef(cellA), ToCellRef(cellC)},
				},
			}
		}
	}
	return nil
}

// crossColorSqueezeCombined erases any uncolored node linked to at
// least one node of each color, with closest-witness selection as in
// the per-digit rule.
func crossColorSqueezeCombined(b *Board, g *LinkGraph, nodes []int, color map[int]bool) *core.Step {
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 {
			continue
		}
		for _, d := range b.Candidates[i].ToSlice() {
			node := NodeID(i, d)
			if _, colored := color[node]; colored {
				continue
			}
			bestPos, bestNeg := -1, -1
			for _, n := range nodes {
				if !g.WeakCombined[node].Has(n) {
					continue
				}
				nCell, _ := NodeCellDigit(n)
				if color[n] {
					if bestPos < 0 {
						bestPos = n
					} else if pc, _ := NodeCellDigit(bestPos); nodeDistance(i, nCell) < nodeDistance(i, pc) {
						bestPos = n
					}
				} else {
					if bestNeg < 0 {
						bestNeg = n
					} else if nc, _ := NodeCellDigit(bestNeg); nodeDistance(i, nCell) < nodeDistance(i, nc) {
						bestNeg = n
					}
				}
			}
			if bestPos >= 0 && bestNeg >= 0 {
				posCell, _ := NodeCellDigit(bestPos)
				negCell, _ := NodeCellDigit(bestNeg)
				return &core.Step{
					Ref:    core.TechniqueRef{Title: "Multi-Coloring", Slug: "multi-coloring"},
					Level:  4,
					Erases: []core.Candidate{{Row: RowOf(i), Col: ColOf(i), Digit: d}},
					Highlights: core.Highlights{
						Primary:   []core.CellRef{ToCellRef(i)},
						Secondary: []core.CellRef{ToCellRef(posCell), ToCellRef(negCell)},
					},
				}
			}
		}
	}
	return nil
}
