package report

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/wellscore/internal/tui/theme"
	"github.com/garrettladley/wellscore/internal/wellness"
)

func TestRender(t *testing.T) {
	t.Parallel()

	scores := wellness.Scores{Metabolic: 55, VO2Max: 46, GripStrength: 54, BodyComposition: 46, Total: 50}
	out := ansi.Strip(Render(Report{Title: "Checkup", Scores: scores, Grade: scores.Grade()}))

	for _, want := range []string{
		"Checkup",
		"Wellness score  50",
		"D High risk",
		"Metabolic",
		"VO2 max",
		"Grip strength",
		"Body composition",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in:\n%s", want, out)
		}
	}
}

func TestRender_NoTitle(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(Render(Report{Grade: wellness.GradeFromScore(0)}))
	if !strings.HasPrefix(out, "Wellness score") {
		t.Errorf("Render() = %q, want score headline first", out)
	}
}

func TestBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  int
		filled int
	}{
		{value: 0, filled: 0},
		{value: 50, filled: 10},
		{value: 100, filled: 20},
		{value: 150, filled: 20},
		{value: -5, filled: 0},
	}

	for _, tt := range tests {
		bar := ansi.Strip(Bar(tt.value, 20, theme.ColorMetabolic))
		if got := ansi.StringWidth(bar); got != 20 {
			t.Errorf("Bar(%d) width = %d, want 20", tt.value, got)
		}
		if got := strings.Count(bar, barFull); got != tt.filled {
			t.Errorf("Bar(%d) filled = %d, want %d", tt.value, got, tt.filled)
		}
	}
}

func TestGrades(t *testing.T) {
	t.Parallel()

	lines := strings.Split(strings.TrimRight(ansi.Strip(Grades()), "\n"), "\n")
	if len(lines) != len(wellness.Grades()) {
		t.Fatalf("Grades() has %d lines, want %d", len(lines), len(wellness.Grades()))
	}
	if !strings.Contains(lines[0], "A+") || !strings.Contains(lines[len(lines)-1], "F") {
		t.Errorf("Grades() order wrong:\n%s", strings.Join(lines, "\n"))
	}
}
