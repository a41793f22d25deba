package deduce

import "sudoku-deduce/internal/core"

// Grid-level coordinate helpers and precomputed peer tables for the
// fixed 9x9 case this engine targets.

// RowOf, ColOf, BoxOf return the row/column/box index (0..8) of cell
// index i (0..80), row-major.
func RowOf(i int) int { return i / 9 }
func ColOf(i int) int { return i % 9 }
func BoxOf(i int) int { return (RowOf(i)/3)*3 + ColOf(i)/3 }

// IndexOf converts a (row, col) pair to a flat cell index.
func IndexOf(row, col int) int { return row*9 + col }

// ToCellRef converts a flat cell index to a core.CellRef.
func ToCellRef(i int) core.CellRef { return core.CellRef{Row: RowOf(i), Col: ColOf(i)} }

// Peers, RowPeers, ColPeers, BoxPeers hold, for each cell index, the
// other cell indices that share any unit (row ∪ col ∪ box), a row, a
// column, or a box, respectively. Built once in init().
var (
	Peers    [81][]int
	RowPeers [81][]int
	ColPeers [81][]int
	BoxPeers [81][]int

	// RowIndices, ColIndices, BoxIndices map a unit index (0..8) to its
	// nine member cell indices, in ascending order.
	RowIndices [9][9]int
	ColIndices [9][9]int
	BoxIndices [9][9]int
)

func init() {
	initializeUnitIndices()
	initializePeers()
}

func initializeUnitIndices() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			RowIndices[r][c] = IndexOf(r, c)
			ColIndices[c][r] = IndexOf(r, c)
		}
	}
	for i := 0; i < 81; i++ {
		box := BoxOf(i)
		row, col := RowOf(i), ColOf(i)
		slot := (row%3)*3 + col%3
		BoxIndices[box][slot] = i
	}
}

func initializePeers() {
	for i := 0; i < 81; i++ {
		row, col, box := RowOf(i), ColOf(i), BoxOf(i)
		seen := make(map[int]bool, 20)
		for _, j := range RowIndices[row] {
			if j != i {
				RowPeers[i] = append(RowPeers[i], j)
				addPeer(seen, &Peers[i], j)
			}
		}
		for _, j := range ColIndices[col] {
			if j != i {
				ColPeers[i] = append(ColPeers[i], j)
				addPeer(seen, &Peers[i], j)
			}
		}
		for _, j := range BoxIndices[box] {
			if j != i {
				BoxPeers[i] = append(BoxPeers[i], j)
				addPeer(seen, &Peers[i], j)
			}
		}
	}
}

func addPeer(seen map[int]bool, list *[]int, j int) {
	if seen[j] {
		return
	}
	seen[j] = true
	*list = append(*list, j)
}

// ArePeers reports whether cells i and j share a row, column, or box.
func ArePeers(i, j int) bool {
	if i == j {
		return false
	}
	return RowOf(i) == RowOf(j) || ColOf(i) == ColOf(j) || BoxOf(i) == BoxOf(j)
}

// AllSeeAll reports whether every cell in cells mutually sees every
// other cell in cells (pairwise ArePeers).
func AllSeeAll(cells []int) bool {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if !ArePeers(cells[i], cells[j]) {
				return false
			}
		}
	}
	return true
}

// Combinations returns all k-sized subsets of the indices 0..n-1, as
// ascending index slices, in lexicographic order — used by the subset and fish
// searches to enumerate candidate groupings deterministically.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, combo)
			out = append(out, cp)
			return
		}
		for i := start; i < n; i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}
