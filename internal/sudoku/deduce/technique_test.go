package deduce

import "testing"

// boardWithCandidates builds an all-empty board whose candidate masks
// are background everywhere except the given overrides. Detectors only
// read the candidate map, so the fixtures need not be completable
// puzzles — they pin down exactly the pattern under test.
func boardWithCandidates(background Candidates, overrides map[int]Candidates) *Board {
	b := &Board{}
	for i := 0; i < 81; i++ {
		b.Candidates[i] = background
	}
	for i, c := range overrides {
		b.Candidates[i] = c
	}
	return b
}

func TestDetectNakedSingle(t *testing.T) {
	b := boardWithCandidates(AllCandidates(), map[int]Candidates{
		40: NewCandidates([]int{7}),
	})
	step := detectNakedSingle(b, NewUnitIndex(b))
	if step == nil {
		t.Fatalf("expected a naked single")
	}
	if len(step.Fills) != 1 || step.Fills[0].Digit != 7 {
		t.Fatalf("fills = %+v, want r5c5=7", step.Fills)
	}
	if step.Fills[0].Cell.Row != 4 || step.Fills[0].Cell.Col != 4 {
		t.Fatalf("fill cell = %+v, want (4,4)", step.Fills[0].Cell)
	}
}

func TestDetectPointingPair(t *testing.T) {
	no7 := AllCandidates().Clear(7)
	overrides := map[int]Candidates{}
	for _, i := range []int{2, 9, 10, 11, 18, 19, 20} {
		overrides[i] = no7
	}
	b := boardWithCandidates(AllCandidates(), overrides)

	step := detectPointingPair(b, NewUnitIndex(b))
	if step == nil {
		t.Fatalf("expected a pointing pair on digit 7 in box 1")
	}
	if len(step.Erases) != 6 {
		t.Fatalf("got %d erases, want 6 (rest of row 1)", len(step.Erases))
	}
	for _, e := range step.Erases {
		if e.Digit != 7 || e.Row != 0 || e.Col < 3 {
			t.Fatalf("unexpected erase %+v", e)
		}
	}
}

func TestDetectNakedSubsetPair(t *testing.T) {
	pair := NewCandidates([]int{2, 6})
	b := boardWithCandidates(AllCandidates(), map[int]Candidates{
		0: pair,
		1: pair,
	})

	step := detectNakedSubset(b, NewUnitIndex(b))
	if step == nil {
		t.Fatalf("expected a naked pair in row 1")
	}
	found := false
	for _, e := range step.Erases {
		if e.Row == 0 && e.Col == 2 && e.Digit == 2 {
			found = true
		}
		if e.Digit != 2 && e.Digit != 6 {
			t.Fatalf("erase of digit %d outside the pair", e.Digit)
		}
	}
	if !found {
		t.Fatalf("expected 2 erased from r1c3, got %+v", step.Erases)
	}
}

func TestDetectHiddenSubsetPair(t *testing.T) {
	// Digits 4 and 7 appear only in r1c4 and r1c5 within row 1; the
	// stray 9 in those two cells must go.
	without47 := NewCandidates([]int{1, 2, 3, 5, 6, 8, 9})
	overrides := map[int]Candidates{
		3: NewCandidates([]int{4, 7, 9}),
		4: NewCandidates([]int{4, 7, 9}),
	}
	for _, i := range []int{0, 1, 2, 5, 6, 7, 8} {
		overrides[i] = without47
	}
	b := boardWithCandidates(AllCandidates(), overrides)

	step := detectHiddenSubset(b, NewUnitIndex(b))
	if step == nil {
		t.Fatalf("expected a hidden pair {4,7} in row 1")
	}
	if len(step.Erases) != 2 {
		t.Fatalf("got %d erases, want 2", len(step.Erases))
	}
	for _, e := range step.Erases {
		if e.Digit != 9 || e.Row != 0 || (e.Col != 3 && e.Col != 4) {
			t.Fatalf("unexpected erase %+v", e)
		}
	}
}

func TestDetectFishXWing(t *testing.T) {
	no4 := AllCandidates().Clear(4)
	with4 := AllCandidates()
	overrides := map[int]Candidates{}
	for i := 0; i < 81; i++ {
		overrides[i] = no4
	}
	// Digit 4 confined to columns 4 and 9 in rows 2 and 7.
	for _, i := range []int{IndexOf(1, 3), IndexOf(1, 8), IndexOf(6, 3), IndexOf(6, 8)} {
		overrides[i] = with4
	}
	// Two removable candidates elsewhere in those columns.
	overrides[IndexOf(4, 3)] = with4
	overrides[IndexOf(2, 8)] = with4
	b := boardWithCandidates(no4, overrides)

	step := detectFish(b, NewUnitIndex(b))
	if step == nil {
		t.Fatalf("expected an X-Wing on digit 4")
	}
	if step.Ref.Title != "X-Wing" {
		t.Fatalf("title = %q, want X-Wing", step.Ref.Title)
	}
	if len(step.Erases) != 2 {
		t.Fatalf("got %d erases, want 2: %+v", len(step.Erases), step.Erases)
	}
	wantFirst := step.Erases[0]
	if wantFirst.Row != 4 || wantFirst.Col != 3 || wantFirst.Digit != 4 {
		t.Fatalf("first erase = %+v, want 4 from r5c4", wantFirst)
	}
	wantSecond := step.Erases[1]
	if wantSecond.Row != 2 || wantSecond.Col != 8 || wantSecond.Digit != 4 {
		t.Fatalf("second erase = %+v, want 4 from r3c9", wantSecond)
	}
}

func TestDetectXYWing(t *testing.T) {
	background := NewCandidates([]int{4, 5, 6, 7, 8, 9})
	b := boardWithCandidates(background, map[int]Candidates{
		0:  NewCandidates([]int{1, 2}), // pivot r1c1
		1:  NewCandidates([]int{1, 3}), // wing in row 1
		27: NewCandidates([]int{2, 3}), // wing in column 1
		28: NewCandidates([]int{3, 4, 5}),
	})

	step := detectXYWing(b, NewUnitIndex(b))
	if step == nil {
		t.Fatalf("expected an XY-Wing")
	}
	if len(step.Erases) != 1 {
		t.Fatalf("got %d erases, want 1: %+v", len(step.Erases), step.Erases)
	}
	e := step.Erases[0]
	if e.Row != 3 || e.Col != 1 || e.Digit != 3 {
		t.Fatalf("erase = %+v, want 3 from r4c2", e)
	}
}

func TestDetectSimpleColoringSameColorIntersection(t *testing.T) {
	background := NewCandidates([]int{1, 2, 3, 4})
	b := boardWithCandidates(background, map[int]Candidates{
		0:  NewCandidates([]int{5, 6}), // r1c1
		2:  NewCandidates([]int{5, 7}), // r1c3, conjugate with r1c1 in row 1
		20: NewCandidates([]int{5, 8}), // r3c3, conjugate with r1c3 in column 3
	})
	ui := NewUnitIndex(b)
	g := BuildLinkGraph(b, ui)

	step := detectSimpleColoring(b, ui, g)
	if step == nil {
		t.Fatalf("expected a same-color intersection on digit 5")
	}
	if len(step.Erases) != 2 {
		t.Fatalf("got %d erases, want both same-colored cells: %+v", len(step.Erases), step.Erases)
	}
	for _, e := range step.Erases {
		if e.Digit != 5 {
			t.Fatalf("unexpected erase %+v", e)
		}
	}
	cells := map[int]bool{IndexOf(step.Erases[0].Row, step.Erases[0].Col): true,
		IndexOf(step.Erases[1].Row, step.Erases[1].Col): true}
	if !cells[0] || !cells[20] {
		t.Fatalf("erased cells = %v, want r1c1 and r3c3", cells)
	}
}

func TestDetectStrongWeakChainOddLoop(t *testing.T) {
	background := NewCandidates([]int{1, 2, 3, 4})
	b := boardWithCandidates(background, map[int]Candidates{
		0: NewCandidates([]int{5, 6}), // r1c1
		1: NewCandidates([]int{5, 7}), // r1c2, conjugate in row 1
		9: NewCandidates([]int{5, 8}), // r2c1, conjugate in column 1
	})
	ui := NewUnitIndex(b)
	g := BuildLinkGraph(b, ui)

	// Row and column conjugate pairs plus a weak box link form a
	// three-link loop starting strong, which pins the start true.
	step := detectStrongWeakChain(b, g, 5)
	if step == nil {
		t.Fatalf("expected an odd strong-weak loop on digit 5")
	}
	if len(step.Fills) != 1 {
		t.Fatalf("got %d fills, want 1: %+v", len(step.Fills), step.Fills)
	}
	f := step.Fills[0]
	if f.Cell.Row != 0 || f.Cell.Col != 0 || f.Digit != 5 {
		t.Fatalf("fill = %+v, want r1c1=5", f)
	}
}

func TestDetectStrongWeakChainRespectsLengthCap(t *testing.T) {
	background := NewCandidates([]int{1, 2, 3, 4})
	b := boardWithCandidates(background, map[int]Candidates{
		0: NewCandidates([]int{5, 6}),
		1: NewCandidates([]int{5, 7}),
		9: NewCandidates([]int{5, 8}),
	})
	ui := NewUnitIndex(b)
	g := BuildLinkGraph(b, ui)

	if step := detectStrongWeakChain(b, g, 2); step != nil && len(step.Fills) > 0 {
		// The loop needs three nodes; a cap of 2 cannot close it.
		t.Fatalf("length cap ignored, got %+v", step)
	}
}

func TestDetectTwoWayFork(t *testing.T) {
	// Either hypothesis for r1c1 puts a 3 in r1c2 or r1c3, so both
	// branches strip 3 from r2c1 and r2c2 and fill them the same way.
	// All agreeing conclusions arrive in a single step.
	b := boardWithCandidates(AllCandidates(), map[int]Candidates{
		0:  NewCandidates([]int{1, 2}), // hypothesis cell r1c1
		1:  NewCandidates([]int{1, 3}),
		2:  NewCandidates([]int{2, 3}),
		9:  NewCandidates([]int{3, 4}), // forced to 4 either way
		10: NewCandidates([]int{3, 5}), // forced to 5 either way
	})

	step := detectTwoWayFork(b, NewUnitIndex(b), 2)
	if step == nil {
		t.Fatalf("expected a two-way fork from r1c1")
	}
	if len(step.Fills) != 2 {
		t.Fatalf("got %d fills, want both common conclusions: %+v", len(step.Fills), step.Fills)
	}
	first := step.Fills[0]
	if first.Cell.Row != 1 || first.Cell.Col != 0 || first.Digit != 4 {
		t.Fatalf("first fill = %+v, want r2c1=4", first)
	}
	second := step.Fills[1]
	if second.Cell.Row != 1 || second.Cell.Col != 1 || second.Digit != 5 {
		t.Fatalf("second fill = %+v, want r2c2=5", second)
	}
	if len(step.Chains) != 2 {
		t.Fatalf("got %d derivation chains, want 2", len(step.Chains))
	}
}

func TestDetectXYZWing(t *testing.T) {
	background := NewCandidates([]int{4, 5, 6, 7, 8, 9})
	b := boardWithCandidates(background, map[int]Candidates{
		0:  NewCandidates([]int{1, 2, 3}), // pivot r1c1
		1:  NewCandidates([]int{1, 3}),    // wing in row 1
		27: NewCandidates([]int{2, 3}),    // wing in column 1
		9:  NewCandidates([]int{3, 4, 5}), // sees pivot and both wings
	})

	step := detectXYZWing(b, NewUnitIndex(b))
	if step == nil {
		t.Fatalf("expected an XYZ-Wing")
	}
	if len(step.Erases) != 1 {
		t.Fatalf("got %d erases, want 1: %+v", len(step.Erases), step.Erases)
	}
	e := step.Erases[0]
	if e.Row != 1 || e.Col != 0 || e.Digit != 3 {
		t.Fatalf("erase = %+v, want 3 from r2c1", e)
	}
}

func TestDetectMultiColoringSameColorIntersection(t *testing.T) {
	// The conjugate pairs of digit 5 chain r1c1, r1c3, and r3c3 into
	// one combined component through each cell's bivalue link. The two
	// like-colored ends share box 1, so both lose their 5.
	background := NewCandidates([]int{1, 2, 3, 4})
	b := boardWithCandidates(background, map[int]Candidates{
		0:  NewCandidates([]int{5, 6}),
		2:  NewCandidates([]int{5, 7}),
		20: NewCandidates([]int{5, 8}),
	})
	g := BuildLinkGraph(b, NewUnitIndex(b))

	step := detectMultiColoring(b, g)
	if step == nil {
		t.Fatalf("expected a multi-coloring same-color intersection")
	}
	if step.Ref.Title != "Multi-Coloring" {
		t.Fatalf("title = %q, want Multi-Coloring", step.Ref.Title)
	}
	if len(step.Erases) != 2 {
		t.Fatalf("got %d erases, want 2: %+v", len(step.Erases), step.Erases)
	}
	cells := map[int]bool{}
	for _, e := range step.Erases {
		if e.Digit != 5 {
			t.Fatalf("unexpected erase %+v", e)
		}
		cells[IndexOf(e.Row, e.Col)] = true
	}
	if !cells[0] || !cells[20] {
		t.Fatalf("erased cells = %v, want r1c1 and r3c3", cells)
	}
}

func TestDetectClusterBridge(t *testing.T) {
	// Three bivalue cells over two digits in row 1: each is its own
	// strong-link component, joined only by weak row links. Assuming
	// r1c1=2 forces both clusters of r1c3's component true, so the
	// assumption's opposite cluster — r1c1=1 — is filled.
	background := NewCandidates([]int{3, 4, 5, 6, 7, 8, 9})
	b := boardWithCandidates(background, map[int]Candidates{
		0: NewCandidates([]int{1, 2}),
		1: NewCandidates([]int{1, 2}),
		2: NewCandidates([]int{1, 2}),
	})
	g := BuildLinkGraph(b, NewUnitIndex(b))

	step := detectClusterBridge(b, g)
	if step == nil {
		t.Fatalf("expected a strong-link cluster bridge contradiction")
	}
	if step.Ref.Title != "Strong-Link Cluster Bridge" {
		t.Fatalf("title = %q, want Strong-Link Cluster Bridge", step.Ref.Title)
	}
	if len(step.Fills) != 1 {
		t.Fatalf("got %d fills, want 1: %+v", len(step.Fills), step.Fills)
	}
	f := step.Fills[0]
	if f.Cell.Row != 0 || f.Cell.Col != 0 || f.Digit != 1 {
		t.Fatalf("fill = %+v, want r1c1=1", f)
	}
}
