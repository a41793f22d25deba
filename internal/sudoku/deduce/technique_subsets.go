package deduce

import (
	"sort"

	"sudoku-deduce/internal/core"
)

// Tier 2: naked and hidden subsets, sizes 2..ceil(9/2)=5, searched
// smallest-first so only the minimal subset per unit is ever reported.
// Naked: a set of N cells whose candidates union to N digits locks
// those digits in; hidden: a set of N digits confined to N cells locks
// those cells down.

const maxSubsetSize = 5

func detectNakedSubset(b *Board, ui *UnitIndex) *core.Step {
	for size := 2; size <= maxSubsetSize; size++ {
		for _, u := range ui.Units() {
			if step := findNakedSubsetInUnit(b, u, size); step != nil {
				return step
			}
		}
	}
	return nil
}

func findNakedSubsetInUnit(b *Board, u Unit, size int) *core.Step {
	empty := emptyCellsOf(b, u)
	if len(empty) <= size {
		return nil
	}
	for _, combo := range Combinations(len(empty), size) {
		cells := pickIndices(empty, combo)
		var union Candidates
		for _, i := range cells {
			union = union.Union(b.Candidates[i])
		}
		if union.Count() != size {
			continue
		}
		var erases []core.Candidate
		in := make(map[int]bool, size)
		for _, i := range cells {
			in[i] = true
		}
		for _, i := range u.Cells {
			if in[i] || b.Cells[i] != 0 {
				continue
			}
			for _, d := range union.ToSlice() {
				if b.Candidates[i].Has(d) {
					erases = append(erases, core.Candidate{Row: RowOf(i), Col: ColOf(i), Digit: d})
				}
			}
		}
		if len(erases) == 0 {
			continue
		}
		var primary []core.CellRef
		for _, i := range cells {
			primary = append(primary, ToCellRef(i))
		}
		return &core.Step{
			Ref:        core.TechniqueRef{Title: "Naked Subset", Slug: "naked-subset"},
			Level:      2,
			Erases:     erases,
			Highlights: core.Highlights{Primary: primary},
		}
	}
	return nil
}

func detectHiddenSubset(b *Board, ui *UnitIndex) *core.Step {
	for size := 2; size <= maxSubsetSize; size++ {
		for _, u := range ui.Units() {
			if step := findHiddenSubsetInUnit(b, ui, u, size); step != nil {
				return step
			}
		}
	}
	return nil
}

func findHiddenSubsetInUnit(b *Board, ui *UnitIndex, u Unit, size int) *core.Step {
	var openDigits []int
	for d := 1; d <= 9; d++ {
		if !ui.DigitPlacedInUnit(u, d) && len(ui.CellsWithDigit(u, d)) > 0 {
			openDigits = append(openDigits, d)
		}
	}
	if len(openDigits) <= size {
		return nil
	}
	for _, combo := range Combinations(len(openDigits), size) {
		digits := pickIndices(openDigits, combo)
		cellSet := make(map[int]bool)
		for _, d := range digits {
			for _, i := range ui.CellsWithDigit(u, d) {
				cellSet[i] = true
			}
		}
		if len(cellSet) != size {
			continue
		}
		cells := make([]int, 0, size)
		for i := range cellSet {
			cells = append(cells, i)
		}
		sort.Ints(cells)
		digitMask := NewCandidates(digits)
		var erases []core.Candidate
		for _, i := range cells {
			extra := b.Candidates[i].Subtract(digitMask)
			for _, d := range extra.ToSlice() {
				erases = append(erases, core.Candidate{Row: RowOf(i), Col: ColOf(i), Digit: d})
			}
		}
		if len(erases) == 0 {
			continue
		}
		var primary []core.CellRef
		for _, i := range cells {
			primary = append(primary, ToCellRef(i))
		}
		return &core.Step{
			Ref:        core.TechniqueRef{Title: "Hidden Subset", Slug: "hidden-subset"},
			Level:      2,
			Erases:     erases,
			Highlights: core.Highlights{Primary: primary},
		}
	}
	return nil
}

func emptyCellsOf(b *Board, u Unit) []int {
	var out []int
	for _, i := range u.Cells {
		if b.Cells[i] == 0 {
			out = append(out, i)
		}
	}
	return out
}

func pickIndices(items []int, combo []int) []int {
	out := make([]int, len(combo))
	for i, idx := range combo {
		out[i] = items[idx]
	}
	return out
}
