// Command solve runs the deduction engine against an 81-character
// puzzle string from argv, printing the reached difficulty and
// resulting board.
package main

import (
	"flag"
	"fmt"
	"os"

	"sudoku-deduce/internal/sudoku/deduce"
	"sudoku-deduce/pkg/constants"
)

func main() {
	explain := flag.Bool("explain", false, "print the narrative for each applied step")
	maxLevel := flag.Int("max-level", constants.MaxDifficultyLevel, "cap the ladder at this difficulty tier (1..5)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: solve [-explain] [-max-level N] <81-char puzzle>")
		os.Exit(1)
	}

	board, err := deduce.FromString(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	opts := deduce.DefaultOptions()
	opts.MaxDifficultyLevel = *maxLevel
	opts.Explain = *explain

	result := deduce.Deduce(board, opts)

	if result.Impossible {
		fmt.Println("impossible")
		os.Exit(0)
	}

	fmt.Printf("board:      %s\n", result.Board.String())
	fmt.Printf("solved:     %v\n", result.Solved)
	fmt.Printf("level:      %d (%s)\n", result.Difficulty, constants.DifficultyLabels[result.Difficulty])
	fmt.Printf("steps:      %d\n", len(result.Steps))

	if *explain {
		for _, line := range result.Narrative {
			fmt.Println("  " + line)
		}
	}
}
