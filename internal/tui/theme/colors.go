package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
	ColorTrack = lipgloss.Color("#283339") // unfilled gauge ring
	ColorBg    = lipgloss.Color("#101518")
)

// Grade colors, best to worst.
var (
	ColorOptimal   = lipgloss.Color("#16A34A") // A+
	ColorExcellent = lipgloss.Color("#22C55E") // A
	ColorGood      = lipgloss.Color("#EAB308") // B
	ColorModerate  = lipgloss.Color("#F97316") // C
	ColorHighRisk  = lipgloss.Color("#EF4444") // D
	ColorCritical  = lipgloss.Color("#DC2626") // F
)

// Category colors for the four score gauges.
var (
	ColorMetabolic = lipgloss.Color("#00F19F")
	ColorFitness   = lipgloss.Color("#0093E7")
	ColorStrength  = lipgloss.Color("#67AEE6")
	ColorBody      = lipgloss.Color("#7BA1BB")
)
