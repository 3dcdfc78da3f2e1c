package tui

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/tui/components/gauge"
	"github.com/garrettladley/wellscore/internal/tui/theme"
)

const (
	totalGaugeSize    = 56
	categoryGaugeSize = 32
	gaugeSpacing      = "    "
)

func (m *Model) DashboardView() string {
	a := m.current()
	if a == nil {
		return m.theme.Dim().Render("no saved assessments, run `wellscore score --save` to add one")
	}

	gradeColor := theme.GradeColor(a.Grade.Grade)

	header := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title().Render(a.Title),
		m.theme.Dim().Render(a.CreatedAt.Local().Format("Jan 2, 2006 15:04")),
	)

	total := gauge.New(
		score(a.Scores.Total),
		100,
		"TOTAL",
		gradeColor,
		gauge.WithSize(totalGaugeSize),
	)

	grade := lipgloss.NewStyle().
		Foreground(gradeColor).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", a.Grade.Grade, a.Grade.Meaning))

	categories := lipgloss.JoinHorizontal(
		lipgloss.Top,
		categoryGauge(a.Scores.Metabolic, "METABOLIC", theme.ColorMetabolic).Render(),
		gaugeSpacing,
		categoryGauge(a.Scores.VO2Max, "VO2 MAX", theme.ColorFitness).Render(),
		gaugeSpacing,
		categoryGauge(a.Scores.GripStrength, "GRIP", theme.ColorStrength).Render(),
		gaugeSpacing,
		categoryGauge(a.Scores.BodyComposition, "BODY COMP", theme.ColorBody).Render(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		header,
		"",
		total.Render(),
		grade,
		"",
		categories,
	)
}

func (m *Model) FooterView() string {
	help := m.theme.Dim().Render("←/→ browse  q quit")
	if len(m.items) < 2 {
		help = m.theme.Dim().Render("q quit")
	}
	if len(m.items) == 0 {
		return help
	}
	position := m.theme.Dim().Render(fmt.Sprintf("%d/%d", m.index+1, len(m.items)))
	return help + "   " + position
}

func (m *Model) current() *assessment.Assessment {
	if m.index < 0 || m.index >= len(m.items) {
		return nil
	}
	return &m.items[m.index]
}

func categoryGauge(value int, label string, c color.Color) gauge.Gauge {
	return gauge.New(score(value), 100, label, c, gauge.WithSize(categoryGaugeSize))
}

func score(v int) *float64 {
	f := float64(v)
	return &f
}
