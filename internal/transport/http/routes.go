// Package http exposes the deduction engine and its collaborators over
// a small gin.Engine surface: POST /api/deduce, GET /api/evaluate/:puzzle,
// POST /api/generate, GET /health.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-deduce/internal/generate"
	"sudoku-deduce/internal/sudoku/deduce"
	"sudoku-deduce/pkg/constants"
)

// RegisterRoutes wires the engine's HTTP surface onto r.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/deduce", deduceHandler)
		api.GET("/evaluate/:puzzle", evaluateHandler)
		api.POST("/generate", generateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// DeduceRequest carries a puzzle and the engine's tunable bounds; zero
// values fall back to the engine defaults.
type DeduceRequest struct {
	Puzzle             string `json:"puzzle" binding:"required"`
	MaxChainLength     int    `json:"max_chain_length"`
	MaxDerivationDepth int    `json:"max_derivation_depth"`
	MaxDifficultyLevel int    `json:"max_difficulty_level"`
	Explain            bool   `json:"explain"`
}

func deduceHandler(c *gin.Context) {
	var req DeduceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := deduce.FromString(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	depth := req.MaxDerivationDepth
	if depth == 0 {
		depth = constants.DefaultMaxDerivationDepth
	}
	opts := deduce.Options{
		MaxChainLength:     req.MaxChainLength,
		MaxDerivationDepth: depth,
		MaxDifficultyLevel: req.MaxDifficultyLevel,
		Explain:            req.Explain,
	}
	result := deduce.Deduce(board, opts)

	resp := gin.H{
		"impossible": result.Impossible,
		"solved":     result.Solved,
		"level":      result.Difficulty,
		"board":      result.Board.String(),
		"label":      constants.DifficultyLabels[result.Difficulty],
	}
	if result.Impossible && result.ImpossibleCell != nil {
		resp["impossible_cell"] = gin.H{"row": result.ImpossibleCell.Row, "col": result.ImpossibleCell.Col}
	}
	if req.Explain {
		resp["narrative"] = result.Narrative
	}
	c.JSON(http.StatusOK, resp)
}

func evaluateHandler(c *gin.Context) {
	puzzle := c.Param("puzzle")

	board, err := deduce.FromString(puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := deduce.Evaluate(board)
	level := result.Difficulty
	if result.Impossible {
		level = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"level":      level,
		"label":      constants.DifficultyLabels[level],
		"impossible": result.Impossible,
		"solved":     result.Solved,
	})
}

// GenerateRequest selects the acceptable difficulty levels for a newly
// generated puzzle; an empty Levels accepts whatever level the engine
// reaches.
type GenerateRequest struct {
	Levels []int `json:"levels"`
	Seed   int64 `json:"seed"`
}

func generateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targets := make(map[int]bool, len(req.Levels))
	for _, l := range req.Levels {
		targets[l] = true
	}

	puzzle, err := generate.Generate(generate.Options{TargetLevels: targets, Seed: req.Seed})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"puzzle":     puzzle.Givens,
		"solution":   puzzle.Solution,
		"level":      puzzle.Difficulty,
		"label":      constants.DifficultyLabels[puzzle.Difficulty],
	})
}
