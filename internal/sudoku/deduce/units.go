package deduce

// UnitType distinguishes the three families of 9-cell houses.
type UnitType int

const (
	UnitRow UnitType = iota
	UnitCol
	UnitBox
)

// Unit is one 9-cell house: its type, its index (0..8), and its member
// cell indices in ascending order.
type Unit struct {
	Type  UnitType
	Index int
	Cells [9]int
}

// AllUnits returns the 27 units of a 9x9 grid: 9 rows, then 9 columns,
// then 9 boxes, each internally ascending — the fixed iteration order
// every technique search walks, for determinism.
func AllUnits() []Unit {
	units := make([]Unit, 0, 27)
	for i := 0; i < 9; i++ {
		units = append(units, Unit{Type: UnitRow, Index: i, Cells: RowIndices[i]})
	}
	for i := 0; i < 9; i++ {
		units = append(units, Unit{Type: UnitCol, Index: i, Cells: ColIndices[i]})
	}
	for i := 0; i < 9; i++ {
		units = append(units, Unit{Type: UnitBox, Index: i, Cells: BoxIndices[i]})
	}
	return units
}

// UnitIndex is a live view over one board of where each digit's
// candidates live within each unit — the collaborator every tier-1/tier-2
// technique consults. Each query reads the board's current state, so a
// mutation of the board is visible through an existing UnitIndex. The
// driver builds a new one on every pass of the ladder.
type UnitIndex struct {
	board *Board
	units []Unit
}

// NewUnitIndex builds a UnitIndex view over b.
func NewUnitIndex(b *Board) *UnitIndex {
	return &UnitIndex{board: b, units: AllUnits()}
}

// Units returns the 27 units in fixed order.
func (ui *UnitIndex) Units() []Unit { return ui.units }

// CellsWithDigit returns, for the given unit, the cell indices (within
// u.Cells, ascending) that still carry digit as a candidate.
func (ui *UnitIndex) CellsWithDigit(u Unit, digit int) []int {
	var out []int
	for _, i := range u.Cells {
		if ui.board.Cells[i] == 0 && ui.board.Candidates[i].Has(digit) {
			out = append(out, i)
		}
	}
	return out
}

// EmptyCells returns the empty cell indices of u, ascending.
func (ui *UnitIndex) EmptyCells(u Unit) []int {
	var out []int
	for _, i := range u.Cells {
		if ui.board.Cells[i] == 0 {
			out = append(out, i)
		}
	}
	return out
}

// DigitPlacedInUnit reports whether digit already fills some cell of u.
func (ui *UnitIndex) DigitPlacedInUnit(u Unit, digit int) bool {
	for _, i := range u.Cells {
		if ui.board.Cells[i] == digit {
			return true
		}
	}
	return false
}

// BivalueCells returns the empty cells with exactly two candidates,
// ascending by index — the seed set for the wings and the fork
// derivator.
func (ui *UnitIndex) BivalueCells() []int {
	return ui.board.CellsWithNCandidates(2)
}

// TrivalueCells returns the empty cells with exactly three candidates,
// ascending by index — used by XYZ-Wing.
func (ui *UnitIndex) TrivalueCells() []int {
	return ui.board.CellsWithNCandidates(3)
}

// UnitsOf returns the row, column, and box units containing cell i.
func UnitsOf(i int) [3]Unit {
	return [3]Unit{
		{Type: UnitRow, Index: RowOf(i), Cells: RowIndices[RowOf(i)]},
		{Type: UnitCol, Index: ColOf(i), Cells: ColIndices[ColOf(i)]},
		{Type: UnitBox, Index: BoxOf(i), Cells: BoxIndices[BoxOf(i)]},
	}
}
