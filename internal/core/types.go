// Package core holds the small data types shared between the deduction
// engine, its collaborators, and the transport layer.
package core

// CellRef identifies a cell by zero-indexed row and column.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Candidate identifies a single (cell, digit) pair — used for both
// eliminations and, via Assignment, fills.
type Candidate struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Digit int `json:"digit"`
}

// Assignment is a cell that a technique has determined must hold Digit.
type Assignment struct {
	Cell  CellRef `json:"cell"`
	Digit int     `json:"digit"`
}

// Highlights groups the cells a narrative should call out: primary
// witnesses vs. supporting context.
type Highlights struct {
	Primary   []CellRef `json:"primary"`
	Secondary []CellRef `json:"secondary,omitempty"`
}

// TechniqueRef names the technique that produced a Step, for narrative
// and API presentation purposes.
type TechniqueRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Step is one applied technique result: what it filled and/or erased,
// plus enough structure for a narrative visitor to explain it. Chains
// is populated only by the two-way fork technique: one event list per
// hypothesis branch (a single list when one branch hit a
// contradiction), in derivation order, each event carrying its depth;
// events are not grouped by depth. The strong-weak chain technique
// records its path in Highlights.Primary, and the cluster-bridge
// technique records neither its BFS routes nor the contradicted
// component.
type Step struct {
	Ref          TechniqueRef `json:"ref"`
	Level        int          `json:"level"`
	Fills        []Assignment `json:"fills,omitempty"`
	Erases       []Candidate  `json:"erases,omitempty"`
	Highlights   Highlights   `json:"highlights"`
	Chains       [][]Event    `json:"chains,omitempty"`
	DigitContext int          `json:"digit_context,omitempty"` // 0 = combined graph
}

// Event is a unit of reasoning: cell must be (positive) or cannot be
// (negative) digit. The impossible event uses Digit == 0 with
// Positive == true.
type Event struct {
	Cell     CellRef `json:"cell"`
	Digit    int     `json:"digit"`
	Positive bool    `json:"positive"`
	Depth    int     `json:"depth"`
}

// Difficulty is the presentation label for a 0..5 difficulty level.
type Difficulty string
