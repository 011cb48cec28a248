package graph

import "testing"

func TestExtractPlanSteps(t *testing.T) {
	markdown := `# Study Plan

1. **Fraction Basics** - what a fraction is ([resource](http://good.org/fractions))
2. **Equivalent Fractions** - comparing and simplifying
3) Adding Fractions

Some closing remark that is not a step.`

	steps := ExtractPlanSteps(markdown)

	want := []string{"Fraction Basics", "Equivalent Fractions", "Adding Fractions"}
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d: %v", len(want), len(steps), steps)
	}
	for i, w := range want {
		if steps[i] != w {
			t.Fatalf("step %d: got %q, want %q", i, steps[i], w)
		}
	}
}

func TestExtractPlanSteps_NoNumberedList(t *testing.T) {
	steps := ExtractPlanSteps("Error generating plan: connection refused")
	if len(steps) != 0 {
		t.Fatalf("expected no steps, got %v", steps)
	}
}
