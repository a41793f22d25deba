// Package generate builds new puzzles targeted at a difficulty level
// via a dig-and-fill loop: hypothesize givens until a unique solution
// emerges, grade with the deduction engine, then strip every given the
// engine can re-derive. Difficulty is the engine's technique tier, not
// a clue count.
package generate

import (
	"errors"
	"math/rand"

	"sudoku-deduce/internal/sudoku/backtrack"
	"sudoku-deduce/internal/sudoku/deduce"
	"sudoku-deduce/pkg/constants"
)

// ErrExhausted is returned when Generate could not find a puzzle
// matching the requested difficulty within constants.MaxGenerateAttempts.
var ErrExhausted = errors.New("generate: exhausted attempts without matching target difficulty")

// Puzzle is a freshly generated problem, its unique solution, and the
// difficulty level the deduction engine graded it at.
type Puzzle struct {
	Givens     string
	Solution   string
	Difficulty int
}

// Options configures Generate.
type Options struct {
	// TargetLevels restricts acceptable difficulty levels (1..5); a nil
	// or empty set accepts any level the deduction engine reaches.
	TargetLevels map[int]bool
	// Seed drives every random choice, for reproducible generation.
	Seed int64
}

// Generate produces a puzzle whose unique solution the deduction
// engine grades within opts.TargetLevels, minimized so that no given
// can be removed without either breaking uniqueness or requiring a
// harder tier than the puzzle's own difficulty.
func Generate(opts Options) (*Puzzle, error) {
	rng := rand.New(rand.NewSource(opts.Seed))
	for attempt := 0; attempt < constants.MaxGenerateAttempts; attempt++ {
		problem, solution, difficulty, ok := generateIterate(make([]int, 81), opts.TargetLevels, rng)
		if !ok {
			continue
		}
		minimized := removeUnnecessaryEntries(problem, difficulty, rng)
		return &Puzzle{
			Givens:     gridToString(minimized),
			Solution:   gridToString(solution),
			Difficulty: difficulty,
		}, nil
	}
	return nil, ErrExhausted
}

// generateIterate grades the grid as-is; if solved and within the
// target, it succeeds; if stalled, it hypothesizes a random digit in a
// random unfilled cell, keeping the hypothesis only when backtracking
// confirms a solution exists, and recursing to fill in more givens
// when that hypothesis alone does not pin down a unique solution.
func generateIterate(grid []int, targets map[int]bool, rng *rand.Rand) (problem, solution []int, difficulty int, ok bool) {
	result := evaluateGrid(grid)
	if result.Impossible {
		return nil, nil, 0, false
	}
	if result.Solved {
		if accepts(targets, result.Difficulty) {
			return grid, gridFromBoard(result.Board), result.Difficulty, true
		}
		return nil, nil, 0, false
	}

	board, err := deduce.FromMatrix(toMatrix(grid))
	if err != nil {
		return nil, nil, 0, false
	}
	unfilled := unfilledCells(grid)
	cell := unfilled[rng.Intn(len(unfilled))]
	digits := board.Candidates[cell].ToSlice()
	rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })

	for _, d := range digits {
		candidate := append([]int(nil), grid...)
		candidate[cell] = d
		if backtrack.Solve(candidate) == nil {
			continue
		}
		if !backtrack.HasUniqueSolution(candidate) {
			if p, s, diff, ok := generateIterate(candidate, targets, rng); ok {
				return p, s, diff, true
			}
			continue
		}
		diffResult := evaluateGrid(candidate)
		if diffResult.Impossible {
			continue
		}
		if accepts(targets, diffResult.Difficulty) {
			return candidate, gridFromBoard(diffResult.Board), diffResult.Difficulty, true
		}
	}
	return nil, nil, 0, false
}

// removeUnnecessaryEntries repeatedly tries to blank a random
// filled cell, keeping the removal only if the deduction engine
// (capped at the puzzle's own difficulty) still fills that cell back
// in and the result remains uniquely solvable. Stops when a full pass
// removes nothing.
func removeUnnecessaryEntries(problem []int, difficulty int, rng *rand.Rand) []int {
	current := append([]int(nil), problem...)
	for {
		reduced := false
		cells := filledCells(current)
		rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
		for _, cell := range cells {
			trial := append([]int(nil), current...)
			trial[cell] = 0

			board, err := deduce.FromMatrix(toMatrix(trial))
			if err != nil {
				continue
			}
			opts := deduce.DefaultOptions()
			opts.MaxDifficultyLevel = difficulty
			result := deduce.Deduce(board, opts)
			if result.Board.Cells[cell] == 0 {
				continue
			}
			if !backtrack.HasUniqueSolution(trial) {
				continue
			}
			current = trial
			reduced = true
			break
		}
		if !reduced {
			return current
		}
	}
}

func evaluateGrid(grid []int) deduce.Result {
	board, err := deduce.FromMatrix(toMatrix(grid))
	if err != nil {
		return deduce.Result{Impossible: true}
	}
	return deduce.Evaluate(board)
}

func accepts(targets map[int]bool, level int) bool {
	return len(targets) == 0 || targets[level]
}

func unfilledCells(grid []int) []int {
	var out []int
	for i, v := range grid {
		if v == 0 {
			out = append(out, i)
		}
	}
	return out
}

func filledCells(grid []int) []int {
	var out []int
	for i, v := range grid {
		if v != 0 {
			out = append(out, i)
		}
	}
	return out
}

func toMatrix(grid []int) [9][9]int {
	var m [9][9]int
	for i, v := range grid {
		m[i/9][i%9] = v
	}
	return m
}

func gridFromBoard(b *deduce.Board) []int {
	out := make([]int, 81)
	copy(out, b.Cells[:])
	return out
}

func gridToString(grid []int) string {
	out := make([]byte, 81)
	for i, v := range grid {
		out[i] = byte('0' + v)
	}
	return string(out)
}
