package backtrack

import "testing"

var validPuzzle = []int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

var validPuzzleSolution = []int{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func TestSolveFindsKnownSolution(t *testing.T) {
	got := Solve(validPuzzle)
	if got == nil {
		t.Fatalf("Solve returned nil for a solvable puzzle")
	}
	for i := range got {
		if got[i] != validPuzzleSolution[i] {
			t.Fatalf("cell %d: got %d, want %d", i, got[i], validPuzzleSolution[i])
		}
	}
}

func TestSolveUnsolvable(t *testing.T) {
	grid := make([]int, 81)
	copy(grid, validPuzzle)
	grid[1] = 5 // row conflict with grid[0]
	if Solve(grid) != nil {
		t.Fatalf("Solve should fail on a grid with a row conflict")
	}
}

func TestHasUniqueSolution(t *testing.T) {
	if !HasUniqueSolution(validPuzzle) {
		t.Fatalf("validPuzzle should have a unique solution")
	}
	empty := make([]int, 81)
	if HasUniqueSolution(empty) {
		t.Fatalf("an empty grid has many solutions, not one")
	}
}

func TestCountSolutionsCapsAtMax(t *testing.T) {
	empty := make([]int, 81)
	if got := CountSolutions(empty, 2); got != 2 {
		t.Fatalf("CountSolutions(empty, 2) = %d, want 2", got)
	}
}

func TestFindConflictsDetectsRowDuplicate(t *testing.T) {
	grid := make([]int, 81)
	copy(grid, validPuzzle)
	grid[4] = 5 // same row as grid[0] == 5
	conflicts := FindConflicts(grid)
	if len(conflicts) == 0 {
		t.Fatalf("expected at least one conflict")
	}
	found := false
	for _, c := range conflicts {
		if c.Type == "row" && c.Value == 5 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a row conflict on value 5, got %+v", conflicts)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(validPuzzle) {
		t.Fatalf("validPuzzle should have no conflicts")
	}
	if !IsValid(validPuzzleSolution) {
		t.Fatalf("a full valid solution should have no conflicts")
	}
}
