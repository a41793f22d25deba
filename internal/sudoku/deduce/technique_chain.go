package deduce

import (
	"sort"

	"sudoku-deduce/internal/core"
)

// Tier 4: alternating strong/weak chain search, per-digit then over
// the combined graph, with a longer swapped-parity pass for erases.
// An odd loop whose links alternate starting strong pins its start
// node true; an open odd chain attacks anything linked to both ends.

// searchChains looks, from every node in turn, for an odd-length
// alternating strong/weak path that closes back on its own start node
// via an allowed next link. firstLinkStrong selects which parity the
// first link must use; every following link's required parity
// alternates from there. A link that is not required to be strong may
// still be a strong link — it is simply not restricted to weak-only.
// limit bounds the number of nodes visited along a candidate loop.
// cellOf maps a node to its cell, for the extension order: next nodes
// are tried by ascending Chebyshev-biased distance from the current
// tail, ties by ascending node id.
func searchChains(nodeCount int, strongAdj, weakAdj func(int) []int, cellOf func(int) int, firstLinkStrong bool, limit int) ([]int, bool) {
	type item struct {
		path         []int
		mustBeStrong bool
	}
	for start := 0; start < nodeCount; start++ {
		if len(strongAdj(start)) == 0 {
			continue
		}
		queue := []item{{path: []int{start}, mustBeStrong: firstLinkStrong}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if len(cur.path) > limit {
				continue
			}
			last := cur.path[len(cur.path)-1]
			var next []int
			if cur.mustBeStrong {
				next = append([]int{}, strongAdj(last)...)
			} else {
				next = mergeAdj(strongAdj(last), weakAdj(last))
			}
			sort.Slice(next, func(x, y int) bool {
				dx := nodeDistance(cellOf(last), cellOf(next[x]))
				dy := nodeDistance(cellOf(last), cellOf(next[y]))
				if dx != dy {
					return dx < dy
				}
				return next[x] < next[y]
			})
			// A loop that closes back on the start is odd precisely
			// when the path so far (nodes, not links) has odd length:
			// closing now brings the total link count to len(path),
			// which is then odd.
			if len(cur.path)%2 == 1 {
				for _, n := range next {
					if n == start {
						return cur.path, true
					}
				}
			}
			for _, n := range next {
				if n == start || containsNode(cur.path, n) {
					continue
				}
				extended := append(append([]int{}, cur.path...), n)
				queue = append(queue, item{path: extended, mustBeStrong: !cur.mustBeStrong})
			}
		}
	}
	return nil, false
}

// mergeAdj unions two adjacency lists, dropping duplicates.
func mergeAdj(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, n := range a {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range b {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func containsNode(path []int, n int) bool {
	for _, p := range path {
		if p == n {
			return true
		}
	}
	return false
}

// detectStrongWeakChain searches per-digit then combined strong/weak
// graphs for an odd alternating loop bounded by maxChainLength links
// (first link strong): closing on the start node proves the start must
// be filled. A second, swapped-parity search (first link free, bound
// maxChainLength+2) permits a longer loop used only to justify erases.
func detectStrongWeakChain(b *Board, g *LinkGraph, maxChainLength int) *core.Step {
	identity := func(n int) int { return n }
	nodeCell := func(n int) int { return n / 9 }

	for d := 1; d <= 9; d++ {
		strongAdj := func(n int) []int { return g.StrongByDigit[d][n].ToSlice() }
		weakAdj := func(n int) []int { return g.WeakByDigit[d][n].ToSlice() }
		decode := func(node int) (int, int) { return node, d }
		if step := chainFillFor(b, 81, strongAdj, weakAdj, identity, decode, maxChainLength); step != nil {
			return step
		}
	}
	{
		strongAdj := func(n int) []int { return g.StrongCombined[n].ToSlice() }
		weakAdj := func(n int) []int { return g.WeakCombined[n].ToSlice() }
		if step := chainFillFor(b, 729, strongAdj, weakAdj, nodeCell, NodeCellDigit, maxChainLength); step != nil {
			return step
		}
	}

	for d := 1; d <= 9; d++ {
		strongAdj := func(n int) []int { return g.StrongByDigit[d][n].ToSlice() }
		weakAdj := func(n int) []int { return g.WeakByDigit[d][n].ToSlice() }
		decode := func(node int) (int, int) { return node, d }
		if step := chainEraseFor(b, 81, strongAdj, weakAdj, identity, decode, maxChainLength+2); step != nil {
			return step
		}
	}
	{
		strongAdj := func(n int) []int { return g.StrongCombined[n].ToSlice() }
		weakAdj := func(n int) []int { return g.WeakCombined[n].ToSlice() }
		if step := chainEraseFor(b, 729, strongAdj, weakAdj, nodeCell, NodeCellDigit, maxChainLength+2); step != nil {
			return step
		}
	}
	return nil
}

// chainFillFor runs the primary (first-link-strong) search and, on a
// closed loop, fills the loop's start node.
func chainFillFor(b *Board, nodeCount int, strongAdj, weakAdj func(int) []int, cellOf func(int) int, decode func(int) (int, int), limit int) *core.Step {
	path, ok := searchChains(nodeCount, strongAdj, weakAdj, cellOf, true, limit)
	if !ok {
		return nil
	}
	cell, digit := decode(path[0])
	if b.Cells[cell] != 0 || !b.Candidates[cell].Has(digit) {
		return nil
	}
	var primary []core.CellRef
	for _, n := range path {
		c, _ := decode(n)
		primary = append(primary, ToCellRef(c))
	}
	return &core.Step{
		Ref:   core.TechniqueRef{Title: "Strong-Weak Chain", Slug: "strong-weak-chain"},
		Level: 4,
		Fills: []core.Assignment{{Cell: ToCellRef(cell), Digit: digit}},
		Highlights: core.Highlights{
			Primary: primary,
		},
	}
}

// chainEraseFor runs the swapped-parity search; on a closed loop it
// drops the loop's own start node (which closed the loop but is not
// part of the odd chain the erase rule is stated over) and, from the
// remaining path's new start and end nodes, erases any third node
// linked (strong or weak) to both.
func chainEraseFor(b *Board, nodeCount int, strongAdj, weakAdj func(int) []int, cellOf func(int) int, decode func(int) (int, int), limit int) *core.Step {
	path, ok := searchChains(nodeCount, strongAdj, weakAdj, cellOf, false, limit)
	if !ok || len(path) < 3 {
		return nil
	}
	rest := path[1:]
	newStart, newEnd := rest[0], rest[len(rest)-1]
	if newStart == newEnd {
		return nil
	}
	endAdj := mergeAdj(strongAdj(newEnd), weakAdj(newEnd))
	endSet := make(map[int]bool, len(endAdj))
	for _, n := range endAdj {
		endSet[n] = true
	}
	startAdj := mergeAdj(strongAdj(newStart), weakAdj(newStart))

	var erases []core.Candidate
	for _, n := range startAdj {
		if n == newStart || n == newEnd || !endSet[n] {
			continue
		}
		cell, digit := decode(n)
		if b.Cells[cell] != 0 || !b.Candidates[cell].Has(digit) {
			continue
		}
		erases = append(erases, core.Candidate{Row: RowOf(cell), Col: ColOf(cell), Digit: digit})
	}
	if len(erases) == 0 {
		return nil
	}
	var primary []core.CellRef
	for _, n := range rest {
		c, _ := decode(n)
		primary = append(primary, ToCellRef(c))
	}
	return &core.Step{
		Ref:    core.TechniqueRef{Title: "Strong-Weak Chain", Slug: "strong-weak-chain"},
		Level:  4,
		Erases: erases,
		Highlights: core.Highlights{
			Primary: primary,
		},
	}
}
