package deduce

import "sudoku-deduce/internal/core"

// Tier 3: XY-Wing and XYZ-Wing. Both pincers must avoid seeing each
// other; a pincer pair that shares a unit is a naked pair, not a wing.

func detectXYWing(b *Board, ui *UnitIndex) *core.Step {
	bivalue := ui.BivalueCells()
	for _, pivot := range bivalue {
		xy := b.Candidates[pivot].ToSlice()
		x, y := xy[0], xy[1]
		for _, p1 := range bivalue {
			if p1 == pivot || !ArePeers(pivot, p1) {
				continue
			}
			c1 := b.Candidates[p1]
			if !c1.Has(x) || c1.Has(y) {
				continue
			}
			z, _ := firstOtherDigit(c1, x)
			for _, p2 := range bivalue {
				if p2 == pivot || p2 == p1 || !ArePeers(pivot, p2) || ArePeers(p1, p2) {
					continue
				}
				c2 := b.Candidates[p2]
				if !c2.Has(y) || c2.Has(x) || !c2.Has(z) {
					continue
				}
				if c2.Count() != 2 {
					continue
				}
				other, _ := firstOtherDigit(c2, y)
				if other != z {
					continue
				}
				var erases []core.Candidate
				for i := 0; i < 81; i++ {
					if i == pivot || i == p1 || i == p2 {
						continue
					}
					if b.Cells[i] != 0 || !b.Candidates[i].Has(z) {
						continue
					}
					if ArePeers(i, p1) && ArePeers(i, p2) {
						erases = append(erases, core.Candidate{Row: RowOf(i), Col: ColOf(i), Digit: z})
					}
				}
				if len(erases) == 0 {
					continue
				}
				return &core.Step{
					Ref:    core.TechniqueRef{Title: "XY-Wing", Slug: "xy-wing"},
					Level:  3,
					Erases: erases,
					Highlights: core.Highlights{
						Primary: []core.CellRef{ToCellRef(pivot), ToCellRef(p1), ToCellRef(p2)},
					},
				}
			}
		}
	}
	return nil
}

func detectXYZWing(b *Board, ui *UnitIndex) *core.Step {
	trivalue := ui.TrivalueCells()
	bivalue := ui.BivalueCells()
	for _, pivot := range trivalue {
		digits := b.Candidates[pivot].ToSlice()
		for _, p1 := range bivalue {
			if !ArePeers(pivot, p1) {
				continue
			}
			c1 := b.Candidates[p1]
			if c1.Subtract(b.Candidates[pivot]).Count() != 0 {
				continue
			}
			for _, p2 := range bivalue {
				if p2 == p1 || !ArePeers(pivot, p2) || ArePeers(p1, p2) {
					continue
				}
				c2 := b.Candidates[p2]
				if c2.Subtract(b.Candidates[pivot]).Count() != 0 || c2.Equals(c1) {
					continue
				}
				if c1.Union(c2).Count() != 3 {
					continue
				}
				z, ok := findCommonThird(digits, c1, c2)
				if !ok {
					continue
				}
				var erases []core.Candidate
				for i := 0; i < 81; i++ {
					if i == pivot || i == p1 || i == p2 {
						continue
					}
					if b.Cells[i] != 0 || !b.Candidates[i].Has(z) {
						continue
					}
					if ArePeers(i, pivot) && ArePeers(i, p1) && ArePeers(i, p2) {
						erases = append(erases, core.Candidate{Row: RowOf(i), Col: ColOf(i), Digit: z})
					}
				}
				if len(erases) == 0 {
					continue
				}
				return &core.Step{
					Ref:    core.TechniqueRef{Title: "XYZ-Wing", Slug: "xyz-wing"},
					Level:  3,
					Erases: erases,
					Highlights: core.Highlights{
						Primary: []core.CellRef{ToCellRef(pivot), ToCellRef(p1), ToCellRef(p2)},
					},
				}
			}
		}
	}
	return nil
}

func firstOtherDigit(c Candidates, exclude int) (int, bool) {
	for _, d := range c.ToSlice() {
		if d != exclude {
			return d, true
		}
	}
	return 0, false
}

// findCommonThird finds the digit shared by both pincers c1, c2 that
// is not the pivot's other two digits alone — i.e. the digit common to
// pivot, c1, and c2.
func findCommonThird(pivotDigits []int, c1, c2 Candidates) (int, bool) {
	for _, d := range pivotDigits {
		if c1.Has(d) && c2.Has(d) {
			return d, true
		}
	}
	return 0, false
}
