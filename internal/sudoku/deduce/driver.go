package deduce

import (
	"sudoku-deduce/internal/core"
	"sudoku-deduce/pkg/constants"
)

// technique pairs a detector with the tier it occupies in the ladder
// (which gates it under max_difficulty_level and fixes search order)
// and the level it reports into the difficulty metric. These coincide
// for every technique except fish, which sits in tier 2's ladder slot
// but is graded as level 3.
type technique struct {
	name          string
	tier          int
	reportedLevel int
	detect        func(*Board, *UnitIndex, *LinkGraph, Options) *core.Step
}

func ladder() []technique {
	return []technique{
		{"naked-single", 1, 1, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectNakedSingle(b, ui) }},
		{"hidden-single", 1, 1, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectHiddenSingle(b, ui) }},
		{"pointing-pair", 1, 1, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectPointingPair(b, ui) }},
		{"box-line-reduction", 1, 1, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectBoxLineReduction(b, ui) }},
		{"naked-subset", 2, 2, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectNakedSubset(b, ui) }},
		{"hidden-subset", 2, 2, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectHiddenSubset(b, ui) }},
		{"fish", 2, 3, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectFish(b, ui) }},
		{"xy-wing", 3, 3, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectXYWing(b, ui) }},
		{"xyz-wing", 3, 3, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectXYZWing(b, ui) }},
		{"coloring", 4, 4, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectSimpleColoring(b, ui, g) }},
		{"multi-coloring", 4, 4, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectMultiColoring(b, g) }},
		{"strong-weak-chain", 4, 4, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step {
			return detectStrongWeakChain(b, g, o.MaxChainLength)
		}},
		{"two-way-fork", 5, 5, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step {
			return detectTwoWayFork(b, ui, o.MaxDerivationDepth)
		}},
		{"strong-link-cluster-bridge", 5, 5, func(b *Board, ui *UnitIndex, g *LinkGraph, o Options) *core.Step { return detectClusterBridge(b, g) }},
	}
}

// Options bundles Deduce's tunable bounds.
type Options struct {
	// MaxChainLength bounds tier 4's strong-weak chain search (in
	// links); zero uses constants.DefaultMaxChainLength.
	MaxChainLength int
	// MaxDerivationDepth bounds tier 5's two-way fork propagation (in
	// tier-1 rounds); zero allows no rounds beyond the hypothesis
	// itself, and a negative value uses constants.DefaultMaxDerivationDepth.
	MaxDerivationDepth int
	// MaxDifficultyLevel caps which ladder tiers may run (1..5); zero
	// means unbounded (all five tiers).
	MaxDifficultyLevel int
	// Explain, when true, additionally populates Result.Narrative.
	Explain bool
}

// DefaultOptions returns the engine's default bounds, kept stable so
// a puzzle always grades to the same level.
func DefaultOptions() Options {
	return Options{
		MaxChainLength:     constants.DefaultMaxChainLength,
		MaxDerivationDepth: constants.DefaultMaxDerivationDepth,
		MaxDifficultyLevel: constants.MaxDifficultyLevel,
	}
}

func (o Options) normalized() Options {
	if o.MaxChainLength <= 0 {
		o.MaxChainLength = constants.DefaultMaxChainLength
	}
	if o.MaxDerivationDepth < 0 {
		o.MaxDerivationDepth = constants.DefaultMaxDerivationDepth
	}
	return o
}

// Result is the outcome of a full deduction run: the resulting board,
// every step applied in order, the reached difficulty level, and
// whether the board was fully solved or stalled short of a solution.
type Result struct {
	Board      *Board
	Steps      []core.Step
	Difficulty int
	Solved     bool
	Impossible bool
	// ImpossibleCell is the first cell whose candidate set emptied,
	// set only when Impossible is true.
	ImpossibleCell *core.CellRef
	// Narrative holds one opaque string per applied step, populated
	// only when the call's Options.Explain is true.
	Narrative []string
}

// Deduce runs the tier ladder to a fixed point, restarting from tier 1
// after every successful technique application. Only techniques whose
// ladder tier is at most Options.MaxDifficultyLevel run (0 means all
// tiers).
func Deduce(b *Board, opts Options) Result {
	opts = opts.normalized()
	board := b.Clone()
	techniques := ladder()
	var steps []core.Step
	difficulty := 0

	for {
		if cell, bad := board.FirstImpossible(); bad {
			ref := ToCellRef(cell)
			return Result{Board: board, Steps: steps, Difficulty: 0, Impossible: true, ImpossibleCell: &ref}
		}
		if board.IsSolved() {
			return finish(board, steps, difficulty, opts)
		}

		ui := NewUnitIndex(board)
		g := BuildLinkGraph(board, ui)

		applied := false
		for _, t := range techniques {
			if opts.MaxDifficultyLevel > 0 && t.tier > opts.MaxDifficultyLevel {
				continue
			}
			step := t.detect(board, ui, g, opts)
			if step == nil {
				continue
			}
			applyStep(board, step)
			step.Level = t.reportedLevel
			steps = append(steps, *step)
			if t.reportedLevel > difficulty {
				difficulty = t.reportedLevel
			}
			applied = true
			break
		}
		if !applied {
			break
		}
	}

	return finish(board, steps, difficulty, opts)
}

func finish(board *Board, steps []core.Step, difficulty int, opts Options) Result {
	result := Result{
		Board:      board,
		Steps:      steps,
		Difficulty: difficulty,
		Solved:     board.IsSolved(),
		Impossible: board.IsImpossible(),
	}
	if result.Impossible {
		result.Difficulty = 0
		if cell, bad := board.FirstImpossible(); bad {
			ref := ToCellRef(cell)
			result.ImpossibleCell = &ref
		}
	}
	if opts.Explain {
		result.Narrative = NarrateSteps(steps)
	}
	return result
}

// Evaluate runs Deduce with the engine's default bounds and no
// explanation, the entry point transport and CLI collaborators call
// to grade a puzzle.
func Evaluate(b *Board) Result {
	return Deduce(b, DefaultOptions())
}

func applyStep(b *Board, step *core.Step) {
	for _, f := range step.Fills {
		b.Write(IndexOf(f.Cell.Row, f.Cell.Col), f.Digit)
	}
	for _, e := range step.Erases {
		b.Erase(IndexOf(e.Row, e.Col), e.Digit)
	}
}
