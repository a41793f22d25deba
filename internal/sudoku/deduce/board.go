package deduce

import (
	"errors"
	"strings"
)

// ErrMalformedInput is returned by FromString when the input is not an
// 81-character digit/placeholder string, and by FromString and
// FromMatrix when the givens repeat a digit within a unit.
var ErrMalformedInput = errors.New("deduce: malformed board string, want 81 chars of 1-9 or .0")

// Board is the full mutable state of a 9x9 puzzle in progress: the
// filled digit (0 if empty) and remaining candidate mask for every
// cell. Candidates only ever shrink between external writes, and no
// unit holds a duplicate filled digit.
type Board struct {
	Cells      [81]int
	Candidates [81]Candidates
}

// FromMatrix builds a Board from a 9x9 matrix of givens, computing
// initial candidates by constraint propagation: a cell's candidates
// are every digit not already placed in a peer. Values outside 1..9
// are treated as unfilled.
func FromMatrix(grid [9][9]int) (*Board, error) {
	b := &Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if d := grid[r][c]; d >= 1 && d <= 9 {
				b.Cells[IndexOf(r, c)] = d
			}
		}
	}
	if err := b.initCandidates(); err != nil {
		return nil, err
	}
	return b, nil
}

// FromString parses an 81-character board string, row-major, using '.'
// or '0' for empty cells and '1'-'9' for givens.
func FromString(s string) (*Board, error) {
	s = strings.TrimSpace(s)
	if len(s) != 81 {
		return nil, ErrMalformedInput
	}
	var grid [9][9]int
	for i, ch := range s {
		var digit int
		switch {
		case ch == '.' || ch == '0':
			digit = 0
		case ch >= '1' && ch <= '9':
			digit = int(ch - '0')
		default:
			return nil, ErrMalformedInput
		}
		grid[RowOf(i)][ColOf(i)] = digit
	}
	return FromMatrix(grid)
}

// String renders the board as an 81-character string, '0' for empty
// cells, row-major — the inverse of FromString.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(81)
	for i := 0; i < 81; i++ {
		sb.WriteByte(byte('0' + b.Cells[i]))
	}
	return sb.String()
}

// initCandidates computes every empty cell's candidate mask from
// scratch: all digits minus those already placed among its peers.
// Returns an error if any unit already holds a duplicate digit.
func (b *Board) initCandidates() error {
	if err := b.checkNoDuplicates(); err != nil {
		return err
	}
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 {
			b.Candidates[i] = NewCandidates([]int{b.Cells[i]})
			continue
		}
		cand := AllCandidates()
		for _, p := range Peers[i] {
			if b.Cells[p] != 0 {
				cand = cand.Clear(b.Cells[p])
			}
		}
		b.Candidates[i] = cand
	}
	return nil
}

func (b *Board) checkNoDuplicates() error {
	for u := 0; u < 9; u++ {
		if dup(b, RowIndices[u]) || dup(b, ColIndices[u]) || dup(b, BoxIndices[u]) {
			return ErrMalformedInput
		}
	}
	return nil
}

func dup(b *Board, cells [9]int) bool {
	var seen Candidates
	for _, i := range cells {
		d := b.Cells[i]
		if d == 0 {
			continue
		}
		if seen.Has(d) {
			return true
		}
		seen = seen.Set(d)
	}
	return false
}

// Write places digit in cell i: sets Cells[i], collapses its candidate
// mask to the singleton, and removes digit from every peer's candidate
// mask — the engine's only mutation that fills a cell, keeping the
// candidate-monotonicity invariant across every technique.
func (b *Board) Write(i, digit int) {
	b.Cells[i] = digit
	b.Candidates[i] = NewCandidates([]int{digit})
	for _, p := range Peers[i] {
		b.Candidates[p] = b.Candidates[p].Clear(digit)
	}
}

// Erase removes digit from cell i's candidate mask without filling the
// cell — the mutation every elimination technique performs.
func (b *Board) Erase(i, digit int) {
	b.Candidates[i] = b.Candidates[i].Clear(digit)
}

// IsSolved reports whether every cell is filled.
func (b *Board) IsSolved() bool {
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			return false
		}
	}
	return true
}

// IsImpossible reports whether some empty cell has no remaining
// candidates — the engine's contradiction signal.
func (b *Board) IsImpossible() bool {
	_, ok := b.FirstImpossible()
	return ok
}

// FirstImpossible returns the lowest-indexed empty cell whose
// candidate mask is empty, if any.
func (b *Board) FirstImpossible() (int, bool) {
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 && b.Candidates[i].IsEmpty() {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// CellsWithNCandidates returns the indices of empty cells whose
// candidate count equals n, in ascending order.
func (b *Board) CellsWithNCandidates(n int) []int {
	var out []int
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 && b.Candidates[i].Count() == n {
			out = append(out, i)
		}
	}
	return out
}
