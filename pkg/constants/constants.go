// Package constants holds process-wide values shared across the engine,
// its collaborators, and the transport layer.
package constants

import "time"

// Grid constants
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
	MinGivens  = 17
)

// Engine defaults. Changing these shifts which level a puzzle grades
// to, so they stay fixed.
const (
	DefaultMaxChainLength     = 5
	DefaultMaxDerivationDepth = 2
	MaxDifficultyLevel        = 5
)

// Solver limits for the backtracking collaborator.
const (
	MaxBacktrackSteps  = 200000
	SolutionCountLimit = 2
)

// Generator limits, for the dig-and-fill hill-climbing collaborator.
const (
	MaxGenerateAttempts = 200
	MaxGenerateDigits   = 9
)

// Session
const (
	SessionTokenExpiry = 24 * time.Hour
)

// Difficulty labels, a presentation concern only.
const (
	DifficultyImpossible = ""
	DifficultyEasy       = "easy"
	DifficultyMedium     = "medium"
	DifficultyHard       = "hard"
	DifficultyVeryHard   = "very-hard"
	DifficultyHardest    = "hardest"
)

// DifficultyLabels maps a 0..5 difficulty level to its presentation label.
var DifficultyLabels = map[int]string{
	0: DifficultyImpossible,
	1: DifficultyEasy,
	2: DifficultyMedium,
	3: DifficultyHard,
	4: DifficultyVeryHard,
	5: DifficultyHardest,
}

// Target givens by difficulty level. The generator does not read these;
// its difficulty target is the engine's graded level.
var TargetGivens = map[int]int{
	1: 40,
	2: 34,
	3: 30,
	4: 26,
	5: 24,
}

// Generator status, mirroring solver status naming.
const (
	StatusCompleted       = "completed"
	StatusStalled         = "stalled"
	StatusMaxStepsReached = "max_steps_reached"
)

// API version
const APIVersion = "0.1.0"

// DefaultPort is the fallback HTTP port.
const DefaultPort = "8080"
