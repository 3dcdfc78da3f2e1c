package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	foreground color.Color
	background color.Color
	base       lipgloss.Style
}

func New() Theme {
	return Theme{
		foreground: ColorWhite,
		background: ColorBg,
		base:       lipgloss.NewStyle().Foreground(ColorWhite),
	}
}

func (t Theme) Base() lipgloss.Style { return t.base }

func (t Theme) Title() lipgloss.Style {
	return t.base.Bold(true)
}

func (t Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Foreground() color.Color { return t.foreground }

func (t Theme) Background() color.Color { return t.background }

// GradeColor maps a letter grade onto its terminal color. The web palette
// names (text-green-600 and friends) have no meaning in a terminal.
func GradeColor(grade string) color.Color {
	switch grade {
	case "A+":
		return ColorOptimal
	case "A":
		return ColorExcellent
	case "B":
		return ColorGood
	case "C":
		return ColorModerate
	case "D":
		return ColorHighRisk
	default:
		return ColorCritical
	}
}
