package deduce

import (
	"fmt"
	"strings"

	"sudoku-deduce/internal/core"
)

// Narrate renders a sequence of steps into human-readable prose, one
// line per step. A pure function of the structured step records, so
// identical runs narrate identically.
func Narrate(steps []core.Step) string {
	var sb strings.Builder
	for i, step := range steps {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(narrateStep(step))
	}
	return sb.String()
}

// NarrateSteps renders each step to its own narrative string, in
// applied order.
func NarrateSteps(steps []core.Step) []string {
	out := make([]string, len(steps))
	for i, step := range steps {
		out[i] = narrateStep(step)
	}
	return out
}

func narrateStep(step core.Step) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: ", step.Ref.Title)

	switch {
	case len(step.Fills) > 0 && len(step.Erases) == 0:
		parts := make([]string, 0, len(step.Fills))
		for _, f := range step.Fills {
			parts = append(parts, fmt.Sprintf("r%dc%d=%d", f.Cell.Row+1, f.Cell.Col+1, f.Digit))
		}
		sb.WriteString("places " + strings.Join(parts, ", "))
	case len(step.Erases) > 0 && len(step.Fills) == 0:
		parts := make([]string, 0, len(step.Erases))
		for _, e := range step.Erases {
			parts = append(parts, fmt.Sprintf("%d from r%dc%d", e.Digit, e.Row+1, e.Col+1))
		}
		sb.WriteString("removes " + strings.Join(parts, ", "))
	default:
		sb.WriteString("updates the board")
	}

	if len(step.Highlights.Primary) > 0 {
		parts := make([]string, 0, len(step.Highlights.Primary))
		for _, ref := range step.Highlights.Primary {
			parts = append(parts, fmt.Sprintf("r%dc%d", ref.Row+1, ref.Col+1))
		}
		fmt.Fprintf(&sb, " (witnesses: %s)", strings.Join(parts, ", "))
	}

	if len(step.Chains) > 0 {
		fmt.Fprintf(&sb, " across %d reasoning chain(s)", len(step.Chains))
	}

	return sb.String()
}
