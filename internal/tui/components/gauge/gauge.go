// Package gauge renders a braille ring gauge with the value in its center.
package gauge

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/wellscore/internal/tui/theme"
)

const (
	defaultSize   = 40 // dots; 20 cells wide, 10 tall
	ringThickness = 4

	emptyBraille rune = '⠀'
	noValue           = "--"
)

type Gauge struct {
	Value     *float64 // nil renders as "--"
	Max       float64
	Label     string
	Color     color.Color
	Track     color.Color
	TextColor color.Color
	size      int
}

type Option func(*Gauge)

func WithTrackColor(c color.Color) Option {
	return func(g *Gauge) { g.Track = c }
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) { g.TextColor = c }
}

// WithSize sets the diameter in braille dots. It is rounded down to a
// multiple of 4 so the ring fills whole cells.
func WithSize(dots int) Option {
	return func(g *Gauge) { g.size = max(8, dots-dots%4) }
}

func New(value *float64, maxValue float64, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Value:     value,
		Max:       maxValue,
		Label:     label,
		Color:     c,
		Track:     theme.ColorTrack,
		TextColor: theme.ColorWhite,
		size:      defaultSize,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g Gauge) fraction() float64 {
	if g.Value == nil || g.Max <= 0 {
		return 0
	}
	return min(1, max(0, *g.Value/g.Max))
}

func (g Gauge) valueText() string {
	if g.Value == nil {
		return noValue
	}
	return fmt.Sprintf("%.0f", *g.Value)
}

// Width is the rendered width in cells.
func (g Gauge) Width() int { return g.size / 2 }

func (g Gauge) Render() string {
	r := ring{size: g.size, thickness: ringThickness}

	track := drawille.NewCanvas()
	r.plot(&track, 1)
	fill := drawille.NewCanvas()
	r.plot(&fill, g.fraction())

	cols, rows := g.size/2, g.size/4
	trackCells := cells(&track, g.size, cols, rows)
	fillCells := cells(&fill, g.size, cols, rows)

	var (
		trackStyle = lipgloss.NewStyle().Foreground(g.Track)
		fillStyle  = lipgloss.NewStyle().Foreground(g.Color)
		textStyle  = lipgloss.NewStyle().Foreground(g.TextColor).Bold(true)
	)

	text := []rune(g.valueText())
	textRow := rows / 2
	textStart := (cols - len(text)) / 2

	lines := make([]string, rows)
	for y := range rows {
		var b strings.Builder
		for x := range cols {
			if y == textRow && x >= textStart && x < textStart+len(text) {
				b.WriteString(textStyle.Render(string(text[x-textStart])))
				continue
			}
			t, f := trackCells[y][x], fillCells[y][x]
			switch {
			case f != emptyBraille:
				// fill dots sit on top of the track dots in the same cell
				b.WriteString(fillStyle.Render(string(emptyBraille + (t-emptyBraille | f-emptyBraille))))
			case t != emptyBraille:
				b.WriteString(trackStyle.Render(string(t)))
			default:
				b.WriteRune(' ')
			}
		}
		lines[y] = b.String()
	}

	label := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(cols).
		Align(lipgloss.Center).
		Render(g.Label)

	return lipgloss.JoinVertical(lipgloss.Center, strings.Join(lines, "\n"), label)
}

// cells reads the canvas into a rows×cols grid of braille runes. Missing
// cells are empty braille.
func cells(c *drawille.Canvas, dots, cols, rows int) [][]rune {
	out := make([][]rune, rows)
	lines := c.Rows(0, 0, dots, dots)
	for y := range rows {
		out[y] = make([]rune, cols)
		var line []rune
		if y < len(lines) {
			line = []rune(lines[y])
		}
		for x := range cols {
			out[y][x] = emptyBraille
			if x < len(line) && line[x] >= emptyBraille && line[x] <= emptyBraille+0xFF {
				out[y][x] = line[x]
			}
		}
	}
	return out
}
