package deduce

import (
	"sort"

	"sudoku-deduce/internal/core"
)

// Tier 2: fish, sizes 2..5 (X-Wing, Swordfish, Jellyfish, Squirmbag),
// row-based and column-based. For a digit, a set of N base lines whose
// candidate cells span exactly N cross lines confines the digit to
// those crossings, so it is erased from the rest of the cross lines.

var fishNames = map[int]string{2: "X-Wing", 3: "Swordfish", 4: "Jellyfish", 5: "Squirmbag"}

func detectFish(b *Board, ui *UnitIndex) *core.Step {
	for size := 2; size <= 5; size++ {
		for d := 1; d <= 9; d++ {
			if step := findFish(b, ui, d, size, true); step != nil {
				return step
			}
			if step := findFish(b, ui, d, size, false); step != nil {
				return step
			}
		}
	}
	return nil
}

// findFish searches size-line sets of base lines (rows when rowBase,
// columns otherwise) for digit d whose candidate cells span exactly
// `size` cross lines, then eliminates d from the rest of those cross
// lines. A base line with a lone candidate cell is excluded: that cell
// is a hidden single, not fish material.
func findFish(b *Board, ui *UnitIndex, d, size int, rowBase bool) *core.Step {
	baseOf, crossOf := RowOf, ColOf
	if !rowBase {
		baseOf, crossOf = ColOf, RowOf
	}

	var candidateLines []int
	for line := 0; line < 9; line++ {
		n := len(ui.CellsWithDigit(baseLineUnit(line, rowBase), d))
		if n > 1 && n <= size {
			candidateLines = append(candidateLines, line)
		}
	}
	if len(candidateLines) < size {
		return nil
	}
	for _, combo := range Combinations(len(candidateLines), size) {
		lines := pickIndices(candidateLines, combo)
		crossSet := make(map[int]bool)
		var cells []int
		for _, line := range lines {
			for _, i := range ui.CellsWithDigit(baseLineUnit(line, rowBase), d) {
				crossSet[crossOf(i)] = true
				cells = append(cells, i)
			}
		}
		if len(crossSet) != size {
			continue
		}
		crosses := make([]int, 0, size)
		for cross := range crossSet {
			crosses = append(crosses, cross)
		}
		sort.Ints(crosses)

		var erases []core.Candidate
		baseLineSet := make(map[int]bool, size)
		for _, l := range lines {
			baseLineSet[l] = true
		}
		for _, cross := range crosses {
			for _, i := range crossLineCells(cross, rowBase) {
				if baseLineSet[baseOf(i)] {
					continue
				}
				if b.Cells[i] == 0 && b.Candidates[i].Has(d) {
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
			Ref:        core.TechniqueRef{Title: fishNames[size], Slug: slugify(fishNames[size])},
			Level:      2,
			Erases:     erases,
			Highlights: core.Highlights{Primary: primary},
		}
	}
	return nil
}

// baseLineUnit wraps a row or column's cells as a Unit for candidate
// lookups.
func baseLineUnit(line int, rowBase bool) Unit {
	if rowBase {
		return Unit{Type: UnitRow, Index: line, Cells: RowIndices[line]}
	}
	return Unit{Type: UnitCol, Index: line, Cells: ColIndices[line]}
}

// crossLineCells returns the 9 cells of the cross line indexed by
// cross: a column if base lines are rows, a row otherwise.
func crossLineCells(cross int, rowBase bool) [9]int {
	if rowBase {
		return ColIndices[cross]
	}
	return RowIndices[cross]
}
