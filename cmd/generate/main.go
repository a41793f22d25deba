// Command generate produces puzzles at a target difficulty level using
// a worker pool over seeds, writing the results as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"sudoku-deduce/internal/generate"
)

// puzzleRecord is one generated puzzle in the output file.
type puzzleRecord struct {
	Givens     string `json:"givens"`
	Solution   string `json:"solution"`
	Difficulty int    `json:"difficulty"`
}

func main() {
	count := flag.Int("n", 1, "number of puzzles to generate")
	level := flag.Int("level", 0, "target difficulty level 1..5 (0 = any)")
	output := flag.String("o", "", "output file path (default: stdout)")
	workers := flag.Int("w", 0, "number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	targets := map[int]bool{}
	if *level != 0 {
		targets[*level] = true
	}

	records := make([]puzzleRecord, *count)
	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures int

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				puzzle, err := generate.Generate(generate.Options{
					TargetLevels: targets,
					Seed:         *startSeed + int64(i),
				})
				if err != nil {
					mu.Lock()
					failures++
					mu.Unlock()
					continue
				}
				records[i] = puzzleRecord{
					Givens:     puzzle.Givens,
					Solution:   puzzle.Solution,
					Difficulty: puzzle.Difficulty,
				}
			}
		}()
	}
	wg.Wait()

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d/%d puzzles failed to generate within the attempt budget\n", failures, *count)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
