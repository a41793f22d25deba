package deduce

import "testing"

// s1Puzzle is solvable by tier 1 alone.
const s1Puzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
const s1Solution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestDeduceScenarioS1(t *testing.T) {
	b, err := FromString(s1Puzzle)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	result := Deduce(b, DefaultOptions())
	if result.Impossible {
		t.Fatalf("expected a solvable board, got impossible")
	}
	if !result.Solved {
		t.Fatalf("expected the board to be fully solved")
	}
	if result.Difficulty != 1 {
		t.Fatalf("difficulty = %d, want 1", result.Difficulty)
	}
	if got := result.Board.String(); got != s1Solution {
		t.Fatalf("solution = %q, want %q", got, s1Solution)
	}
}

func TestEvaluateMatchesDeduce(t *testing.T) {
	b, err := FromString(s1Puzzle)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	result := Evaluate(b)
	if result.Difficulty != 1 || !result.Solved {
		t.Fatalf("Evaluate = %+v, want solved at level 1", result)
	}
}

// TestDeduceIsFixedPoint re-runs Deduce on an already-solved board:
// nothing changes, no technique fires, and the level reports 0 since
// the board was solved on entry.
func TestDeduceIsFixedPoint(t *testing.T) {
	b, err := FromString(s1Puzzle)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	first := Deduce(b, DefaultOptions())
	second := Deduce(first.Board, DefaultOptions())

	if second.Board.String() != first.Board.String() {
		t.Fatalf("second Deduce call mutated the board")
	}
	if len(second.Steps) != 0 {
		t.Fatalf("expected no steps on an already-solved board, got %d", len(second.Steps))
	}
	if second.Difficulty != 0 {
		t.Fatalf("difficulty = %d on an already-solved board, want 0", second.Difficulty)
	}
	if !second.Solved {
		t.Fatalf("expected Solved = true on the second call")
	}
}

// TestDeduceImpossibleShortcut: a board with an induced empty
// candidate set returns impossible immediately with level 0 and names
// the emptied cell.
func TestDeduceImpossibleShortcut(t *testing.T) {
	b, err := FromString(s1Puzzle)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	var target = -1
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 {
			target = i
			break
		}
	}
	if target < 0 {
		t.Fatalf("fixture has no empty cell")
	}
	b.Candidates[target] = 0

	result := Deduce(b, DefaultOptions())
	if !result.Impossible {
		t.Fatalf("expected Impossible = true")
	}
	if result.Difficulty != 0 {
		t.Fatalf("difficulty = %d, want 0 on contradiction", result.Difficulty)
	}
	if result.ImpossibleCell == nil {
		t.Fatalf("expected ImpossibleCell to be set")
	}
	if got := IndexOf(result.ImpossibleCell.Row, result.ImpossibleCell.Col); got != target {
		t.Fatalf("ImpossibleCell = %d, want %d", got, target)
	}
}

// TestMaxDifficultyLevelCapsLadder: a lower tier cap never fills more
// cells than an uncapped run on the same input.
func TestMaxDifficultyLevelCapsLadder(t *testing.T) {
	b1, err := FromString(s1Puzzle)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	opts := DefaultOptions()
	opts.MaxDifficultyLevel = 1
	low := Deduce(b1, opts)

	b2, err := FromString(s1Puzzle)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	full := Deduce(b2, DefaultOptions())

	lowFilled, fullFilled := 0, 0
	for i := 0; i < 81; i++ {
		if low.Board.Cells[i] != 0 {
			lowFilled++
		}
		if full.Board.Cells[i] != 0 {
			fullFilled++
		}
	}
	if lowFilled > fullFilled {
		t.Fatalf("capped run filled more cells (%d) than uncapped run (%d)", lowFilled, fullFilled)
	}
}

func TestDeduceExplainPopulatesNarrative(t *testing.T) {
	b, err := FromString(s1Puzzle)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	opts := DefaultOptions()
	opts.Explain = true
	result := Deduce(b, opts)
	if len(result.Narrative) != len(result.Steps) {
		t.Fatalf("narrative length = %d, want %d (one per step)", len(result.Narrative), len(result.Steps))
	}
	if len(result.Narrative) == 0 {
		t.Fatalf("expected at least one narrative line for a solvable puzzle")
	}
}
