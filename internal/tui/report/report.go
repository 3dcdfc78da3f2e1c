// Package report renders scores for plain terminal output.
package report

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/tui/theme"
)

const (
	barWidth   = 24
	labelWidth = 18
	barFull    = "█"
	barEmpty   = "░"
)

type Report struct {
	Title  string
	Scores wellness.Scores
	Grade  wellness.Grade
}

type row struct {
	label string
	value int
	color color.Color
}

func Render(r Report) string {
	t := theme.New()
	gradeColor := theme.GradeColor(r.Grade.Grade)

	var b strings.Builder
	if r.Title != "" {
		b.WriteString(t.Title().Render(r.Title))
		b.WriteByte('\n')
	}

	headline := lipgloss.NewStyle().Foreground(gradeColor).Bold(true)
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		t.Title().Render("Wellness score"),
		headline.Render(fmt.Sprintf("%3d", r.Scores.Total)),
		headline.Render(r.Grade.Grade+" "+r.Grade.Meaning),
	))

	rows := []row{
		{label: "Metabolic", value: r.Scores.Metabolic, color: theme.ColorMetabolic},
		{label: "VO2 max", value: r.Scores.VO2Max, color: theme.ColorFitness},
		{label: "Grip strength", value: r.Scores.GripStrength, color: theme.ColorStrength},
		{label: "Body composition", value: r.Scores.BodyComposition, color: theme.ColorBody},
	}
	for _, rw := range rows {
		b.WriteString(renderRow(t, rw))
		b.WriteByte('\n')
	}

	return b.String()
}

func renderRow(t theme.Theme, r row) string {
	label := t.Base().Width(labelWidth).Render(r.label)
	value := t.Base().Render(fmt.Sprintf("%3d", r.value))
	return "  " + label + value + "  " + Bar(r.value, barWidth, r.color)
}

// Bar draws a horizontal bar for a 0-100 value.
func Bar(value, width int, c color.Color) string {
	filled := min(width, max(0, value*width/100))
	fill := lipgloss.NewStyle().Foreground(c).Render(strings.Repeat(barFull, filled))
	track := lipgloss.NewStyle().Foreground(theme.ColorTrack).Render(strings.Repeat(barEmpty, width-filled))
	return fill + track
}

// Grades renders the grade scale, best first.
func Grades() string {
	t := theme.New()
	var b strings.Builder
	for _, g := range wellness.Grades() {
		style := lipgloss.NewStyle().Foreground(theme.GradeColor(g.Grade)).Bold(true).Width(4)
		b.WriteString("  " + style.Render(g.Grade) + t.Base().Render(g.Meaning) + "\n")
	}
	return b.String()
}
