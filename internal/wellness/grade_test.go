package wellness

import (
	"math"
	"testing"
)

func TestGradeFromScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.999, "A"},
		{80, "A"},
		{79.999, "B"},
		{70, "B"},
		{69.999, "C"},
		{60, "C"},
		{59.999, "D"},
		{50, "D"},
		{49.999, "F"},
		{0, "F"},
		{-10, "F"},
		{math.NaN(), "F"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := GradeFromScore(tt.score).Grade; got != tt.want {
				t.Errorf("GradeFromScore(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestGradeFromScore_Meaning(t *testing.T) {
	t.Parallel()

	g := GradeFromScore(95)
	if g.Meaning != "Optimal – Best outcome range" || g.Color != "text-green-600" {
		t.Errorf("GradeFromScore(95) = %+v", g)
	}
	f := GradeFromScore(10)
	if f.Meaning != "Critical risk – Immediate support recommended" || f.Color != "text-red-600" {
		t.Errorf("GradeFromScore(10) = %+v", f)
	}
}

func TestGrades(t *testing.T) {
	t.Parallel()

	var letters string
	for _, g := range Grades() {
		letters += g.Grade + " "
	}
	if letters != "A+ A B C D F " {
		t.Errorf("Grades() = %q", letters)
	}
}
