package deduce

// LinkGraph holds the strong/weak link relations the coloring, chain,
// fork, and cluster techniques all search over. Per-digit graphs treat
// cells as nodes (0..80); the combined graph treats (cell, digit)
// pairs as nodes (0..728), with adjacency kept as fixed bitsets so
// neighbor lookups never hash.
type LinkGraph struct {
	// StrongByDigit[d][cell] is the set of cells strongly linked to
	// cell for digit d (conjugate pairs: the only two candidate-bearing
	// cells of digit d in some unit). Index 1..9; index 0 unused.
	StrongByDigit [10][81]Bitset81
	// WeakByDigit[d][cell] is the set of cells weakly linked to cell
	// for digit d (share a unit, both still carry digit d).
	WeakByDigit [10][81]Bitset81

	// StrongCombined/WeakCombined adjacency over the 729 (cell,digit)
	// nodes: per-digit links plus same-cell bivalue (strong) and
	// same-cell multi-candidate (weak) links across digits.
	StrongCombined [729]Bitset729
	WeakCombined   [729]Bitset729
}

// BuildLinkGraph computes the full link graph for the current board
// state. Rebuilt by the driver after every successful technique
// application, since candidate removal changes conjugacy.
func BuildLinkGraph(b *Board, ui *UnitIndex) *LinkGraph {
	g := &LinkGraph{}

	for _, u := range ui.Units() {
		for d := 1; d <= 9; d++ {
			// Only unfilled cells with at least two candidates qualify
			// as nodes; a lone-candidate cell is a pending naked single,
			// not chain material.
			var cells []int
			for _, i := range ui.CellsWithDigit(u, d) {
				if b.Candidates[i].Count() >= 2 {
					cells = append(cells, i)
				}
			}
			if len(cells) < 2 {
				continue
			}
			if len(cells) == 2 {
				a, bb := cells[0], cells[1]
				g.StrongByDigit[d][a] = g.StrongByDigit[d][a].Set(bb)
				g.StrongByDigit[d][bb] = g.StrongByDigit[d][bb].Set(a)
				addCombinedStrong(g, a, d, bb, d)
			}
			for i := 0; i < len(cells); i++ {
				for j := i + 1; j < len(cells); j++ {
					a, bb := cells[i], cells[j]
					g.WeakByDigit[d][a] = g.WeakByDigit[d][a].Set(bb)
					g.WeakByDigit[d][bb] = g.WeakByDigit[d][bb].Set(a)
					addCombinedWeak(g, a, d, bb, d)
				}
			}
		}
	}

	// Same-cell cross-digit links: a bivalue cell's two candidates form
	// a strong link (exactly one must be true); any two candidates in
	// the same cell form a weak link (at most one true).
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 {
			continue
		}
		digits := b.Candidates[i].ToSlice()
		for x := 0; x < len(digits); x++ {
			for y := x + 1; y < len(digits); y++ {
				addCombinedWeak(g, i, digits[x], i, digits[y])
				if len(digits) == 2 {
					addCombinedStrong(g, i, digits[x], i, digits[y])
				}
			}
		}
	}

	return g
}

func addCombinedStrong(g *LinkGraph, cellA, digitA, cellB, digitB int) {
	na, nb := NodeID(cellA, digitA), NodeID(cellB, digitB)
	g.StrongCombined[na] = g.StrongCombined[na].Set(nb)
	g.StrongCombined[nb] = g.StrongCombined[nb].Set(na)
}

func addCombinedWeak(g *LinkGraph, cellA, digitA, cellB, digitB int) {
	na, nb := NodeID(cellA, digitA), NodeID(cellB, digitB)
	g.WeakCombined[na] = g.WeakCombined[na].Set(nb)
	g.WeakCombined[nb] = g.WeakCombined[nb].Set(na)
}

// StrongComponents returns the connected components of the strong-link
// graph for digit d, as lists of cell indices in BFS order from the
// component's smallest member cell, components ordered by that cell.
func StrongComponents(g *LinkGraph, digit int) [][]int {
	visited := make(map[int]bool, 81)
	var comps [][]int
	for start := 0; start < 81; start++ {
		if visited[start] || g.StrongByDigit[digit][start].IsEmpty() {
			continue
		}
		var comp []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, n := range g.StrongByDigit[digit][cur].ToSlice() {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		if len(comp) > 1 {
			comps = append(comps, comp)
		}
	}
	return comps
}

// StrongComponentsCombined returns the connected components of the
// combined strong-link graph, as lists of node IDs, ordered by their
// smallest member node — used by the cluster-bridge technique.
func StrongComponentsCombined(g *LinkGraph) [][]int {
	visited := make(map[int]bool, 729)
	var comps [][]int
	for start := 0; start < 729; start++ {
		if visited[start] || g.StrongCombined[start].IsEmpty() {
			continue
		}
		var comp []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, n := range g.StrongCombined[cur].ToSlice() {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		if len(comp) > 1 {
			comps = append(comps, comp)
		}
	}
	return comps
}
