package deduce

import "sudoku-deduce/internal/core"

// Tier 5: two-way fork derivation. From a bivalue cell's two candidate
// digits, propagate each hypothesis forward using tier-1 singles only
// (naked single, hidden single within any unit); a hypothesis that
// reaches a contradiction proves the other digit, and two hypotheses
// that agree on a placement or an elimination prove that conclusion
// regardless of which digit is true.

// erasedNode is a (cell, digit) candidate removed along a branch that
// was still a candidate of the seed board — a derived negative event,
// not one that Write would have removed anyway by filling the seed
// cell itself.
type erasedNode struct {
	cell, digit int
}

// forkOutcome is the result of propagating one hypothesis.
type forkOutcome struct {
	contradiction bool
	fills         map[int]int // cell -> digit, includes the seed
	erased        []erasedNode
	erasedSeen    map[erasedNode]bool
	depth         int
	events        []core.Event
}

// propagateTier1 applies naked single and hidden single repeatedly to
// a cloned board seeded with cell=digit, until no technique fires, a
// contradiction is reached, or maxDerivationDepth rounds have elapsed.
// Every candidate cleared relative to the pre-hypothesis board b
// (other than the seed cell's own collapse) is recorded as a derived
// negative event at the depth it was first lost.
func propagateTier1(b *Board, cell, digit, maxDerivationDepth int) forkOutcome {
	work := b.Clone()
	out := forkOutcome{
		fills:      map[int]int{cell: digit},
		erasedSeen: make(map[erasedNode]bool),
	}
	work.Write(cell, digit)
	out.events = append(out.events, core.Event{Cell: ToCellRef(cell), Digit: digit, Positive: true, Depth: 0})
	recordErasures(b, work, cell, &out, 0)

	if work.IsImpossible() {
		out.contradiction = true
		return out
	}

	for step := 0; step < maxDerivationDepth; step++ {
		ui := NewUnitIndex(work)
		progressed := false

		for i := 0; i < 81; i++ {
			if work.Cells[i] != 0 {
				continue
			}
			if d, ok := work.Candidates[i].Only(); ok {
				work.Write(i, d)
				out.fills[i] = d
				out.events = append(out.events, core.Event{Cell: ToCellRef(i), Digit: d, Positive: true, Depth: step + 1})
				recordErasures(b, work, i, &out, step+1)
				progressed = true
			}
		}
		if work.IsImpossible() {
			out.contradiction = true
			out.depth = step + 1
			return out
		}

		for _, u := range ui.Units() {
			for d := 1; d <= 9; d++ {
				if ui.DigitPlacedInUnit(u, d) {
					continue
				}
				cells := ui.CellsWithDigit(u, d)
				if len(cells) == 1 {
					i := cells[0]
					if work.Cells[i] == 0 {
						work.Write(i, d)
						out.fills[i] = d
						out.events = append(out.events, core.Event{Cell: ToCellRef(i), Digit: d, Positive: true, Depth: step + 1})
						recordErasures(b, work, i, &out, step+1)
						progressed = true
					}
				}
			}
		}
		if work.IsImpossible() {
			out.contradiction = true
			out.depth = step + 1
			return out
		}
		if !progressed {
			break
		}
		out.depth = step + 1
	}
	return out
}

// recordErasures diffs work's candidate map against the original board
// b after filling cell, recording every candidate lost elsewhere as a
// negative event (excluding the filled cell itself, whose collapse to
// a singleton is already captured as a positive event). Losses already
// recorded at an earlier depth are not re-recorded.
func recordErasures(orig, work *Board, filled int, out *forkOutcome, depth int) {
	for _, p := range Peers[filled] {
		if work.Cells[p] != 0 {
			continue
		}
		lost := orig.Candidates[p].Subtract(work.Candidates[p])
		for _, d := range lost.ToSlice() {
			n := erasedNode{p, d}
			if out.erasedSeen[n] {
				continue
			}
			out.erasedSeen[n] = true
			out.erased = append(out.erased, n)
			out.events = append(out.events, core.Event{Cell: ToCellRef(p), Digit: d, Positive: false, Depth: depth})
		}
	}
}

func detectTwoWayFork(b *Board, ui *UnitIndex, maxDerivationDepth int) *core.Step {
	for _, cell := range ui.BivalueCells() {
		digits := b.Candidates[cell].ToSlice()
		x, y := digits[0], digits[1]
		outX := propagateTier1(b, cell, x, maxDerivationDepth)
		outY := propagateTier1(b, cell, y, maxDerivationDepth)

		if outX.contradiction && !outY.contradiction {
			return forkStep(cell, y, outX)
		}
		if outY.contradiction && !outX.contradiction {
			return forkStep(cell, x, outY)
		}
		if outX.contradiction && outY.contradiction {
			continue
		}

		// Every placement both branches agree on holds no matter which
		// hypothesis is true; report them all in one step.
		var fills []core.Assignment
		primary := []core.CellRef{ToCellRef(cell)}
		for i := 0; i < 81; i++ {
			if i == cell || b.Cells[i] != 0 {
				continue
			}
			d, ok := outX.fills[i]
			if !ok {
				continue
			}
			if od, agreed := outY.fills[i]; agreed && od == d {
				fills = append(fills, core.Assignment{Cell: ToCellRef(i), Digit: d})
				primary = append(primary, ToCellRef(i))
			}
		}
		if len(fills) > 0 {
			return &core.Step{
				Ref:        core.TechniqueRef{Title: "Two-Way Fork", Slug: "two-way-fork"},
				Level:      5,
				Fills:      fills,
				Highlights: core.Highlights{Primary: primary},
				Chains:     [][]core.Event{outX.events, outY.events},
			}
		}

		// No common fill: fall back to the intersection of derived
		// negative events, again all at once.
		var erases []core.Candidate
		for _, n := range outX.erased {
			if !outY.erasedSeen[n] || !b.Candidates[n.cell].Has(n.digit) {
				continue
			}
			erases = append(erases, core.Candidate{Row: RowOf(n.cell), Col: ColOf(n.cell), Digit: n.digit})
			primary = append(primary, ToCellRef(n.cell))
		}
		if len(erases) > 0 {
			return &core.Step{
				Ref:        core.TechniqueRef{Title: "Two-Way Fork", Slug: "two-way-fork"},
				Level:      5,
				Erases:     erases,
				Highlights: core.Highlights{Primary: primary},
				Chains:     [][]core.Event{outX.events, outY.events},
			}
		}
	}
	return nil
}

func forkStep(cell, digit int, contradicted forkOutcome) *core.Step {
	return &core.Step{
		Ref:   core.TechniqueRef{Title: "Two-Way Fork", Slug: "two-way-fork"},
		Level: 5,
		Fills: []core.Assignment{{Cell: ToCellRef(cell), Digit: digit}},
		Highlights: core.Highlights{
			Primary: []core.CellRef{ToCellRef(cell)},
		},
		Chains: [][]core.Event{contradicted.events},
	}
}
