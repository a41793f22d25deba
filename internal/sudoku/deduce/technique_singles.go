package deduce

import "sudoku-deduce/internal/core"

// Tier 1: naked single, hidden single, pointing pair / box-line
// reduction (locked candidates types 1 and 2).

func detectNakedSingle(b *Board, ui *UnitIndex) *core.Step {
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 {
			continue
		}
		if digit, ok := b.Candidates[i].Only(); ok {
			ref := ToCellRef(i)
			return &core.Step{
				Ref:   core.TechniqueRef{Title: "Naked Single", Slug: "naked-single"},
				Level: 1,
				Fills: []core.Assignment{{Cell: ref, Digit: digit}},
				Highlights: core.Highlights{
					Primary: []core.CellRef{ref},
				},
			}
		}
	}
	return nil
}

func detectHiddenSingle(b *Board, ui *UnitIndex) *core.Step {
	for _, u := range ui.Units() {
		for d := 1; d <= 9; d++ {
			if ui.DigitPlacedInUnit(u, d) {
				continue
			}
			cells := ui.CellsWithDigit(u, d)
			if len(cells) == 1 {
				i := cells[0]
				ref := ToCellRef(i)
				return &core.Step{
					Ref:   core.TechniqueRef{Title: "Hidden Single", Slug: "hidden-single"},
					Level: 1,
					Fills: []core.Assignment{{Cell: ref, Digit: d}},
					Highlights: core.Highlights{
						Primary: []core.CellRef{ref},
					},
				}
			}
		}
	}
	return nil
}

// detectPointingPair finds a box where a digit's candidates all lie in
// one row or column, and erases that digit from the rest of the line.
func detectPointingPair(b *Board, ui *UnitIndex) *core.Step {
	for box := 0; box < 9; box++ {
		u := Unit{Type: UnitBox, Index: box, Cells: BoxIndices[box]}
		for d := 1; d <= 9; d++ {
			cells := ui.CellsWithDigit(u, d)
			if len(cells) < 2 {
				continue
			}
			if sameRow(cells) {
				row := RowOf(cells[0])
				if step := lineElimination(b, ui, RowIndices[row][:], d, cells, "Pointing Pair"); step != nil {
					return step
				}
			}
			if sameCol(cells) {
				col := ColOf(cells[0])
				if step := lineElimination(b, ui, ColIndices[col][:], d, cells, "Pointing Pair"); step != nil {
					return step
				}
			}
		}
	}
	return nil
}

// detectBoxLineReduction finds a row or column where a digit's
// candidates all lie in one box, and erases that digit from the rest
// of the box.
func detectBoxLineReduction(b *Board, ui *UnitIndex) *core.Step {
	for _, u := range ui.Units() {
		if u.Type == UnitBox {
			continue
		}
		for d := 1; d <= 9; d++ {
			cells := ui.CellsWithDigit(u, d)
			if len(cells) < 2 {
				continue
			}
			box := BoxOf(cells[0])
			sameBox := true
			for _, c := range cells[1:] {
				if BoxOf(c) != box {
					sameBox = false
					break
				}
			}
			if !sameBox {
				continue
			}
			if step := lineElimination(b, ui, BoxIndices[box][:], d, cells, "Box-Line Reduction"); step != nil {
				return step
			}
		}
	}
	return nil
}

func sameRow(cells []int) bool {
	row := RowOf(cells[0])
	for _, c := range cells[1:] {
		if RowOf(c) != row {
			return false
		}
	}
	return true
}

func sameCol(cells []int) bool {
	col := ColOf(cells[0])
	for _, c := range cells[1:] {
		if ColOf(c) != col {
			return false
		}
	}
	return true
}

// lineElimination erases digit d from every cell of lineCells not in
// witnesses, returning a Step if that erases at least one candidate.
func lineElimination(b *Board, ui *UnitIndex, lineCells []int, d int, witnesses []int, title string) *core.Step {
	in := make(map[int]bool, len(witnesses))
	for _, w := range witnesses {
		in[w] = true
	}
	var erases []core.Candidate
	for _, i := range lineCells {
		if in[i] {
			continue
		}
		if b.Cells[i] == 0 && b.Candidates[i].Has(d) {
			erases = append(erases, core.Candidate{Row: RowOf(i), Col: ColOf(i), Digit: d})
		}
	}
	if len(erases) == 0 {
		return nil
	}
	var primary []core.CellRef
	for _, w := range witnesses {
		primary = append(primary, ToCellRef(w))
	}
	return &core.Step{
		Ref:        core.TechniqueRef{Title: title, Slug: slugify(title)},
		Level:      1,
		Erases:     erases,
		Highlights: core.Highlights{Primary: primary},
	}
}

func slugify(title string) string {
	out := make([]byte, 0, len(title))
	for _, ch := range title {
		switch {
		case ch >= 'A' && ch <= 'Z':
			out = append(out, byte(ch-'A'+'a'))
		case ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			out = append(out, byte(ch))
		case ch == ' ' || ch == '-':
			out = append(out, '-')
		}
	}
	return string(out)
}
