package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/tui/theme"
	"github.com/garrettladley/wellscore/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

const footerHeight = 2

type Model struct {
	ready          bool
	loading        bool
	err            error
	items          []assessment.Assessment // newest first
	index          int
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps
}

func New(deps Deps) Model {
	return Model{
		loading: true,
		theme:   theme.New(),
		deps:    deps,
	}
}

func (m *Model) Init() tea.Cmd {
	return loadAssessmentsCmd(m.deps)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case AssessmentsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			if m.deps.Logger != nil {
				m.deps.Logger.Error("failed to load assessments", xslog.Error(msg.Err))
			}
			return m, nil
		}
		m.items = msg.Assessments
		m.index = m.selectedIndex()
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "right", "l", "n":
		// older
		if m.index < len(m.items)-1 {
			m.index++
		}
	case "left", "h", "p":
		if m.index > 0 {
			m.index--
		}
	case "home", "g":
		m.index = 0
	case "end", "G":
		m.index = max(0, len(m.items)-1)
	}
	return nil
}

func (m *Model) selectedIndex() int {
	for i, a := range m.items {
		if a.ID == m.deps.Selected {
			return i
		}
	}
	return 0
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	view.SetContent(m.content())
	return view
}

func (m *Model) content() string {
	var body string
	switch {
	case m.loading:
		body = m.theme.Dim().Render("loading…")
	case m.err != nil:
		body = lipgloss.NewStyle().Foreground(theme.ColorCritical).Render("failed to load assessments: " + m.err.Error())
	default:
		body = m.DashboardView()
	}

	footer := lipgloss.NewStyle().
		PaddingLeft(2).
		Render(m.FooterView())

	// footer takes the last row plus one blank row beneath it
	mainHeight := max(0, m.viewportHeight-footerHeight)
	main := lipgloss.Place(
		m.viewportWidth,
		mainHeight,
		lipgloss.Center,
		lipgloss.Center,
		body,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, footer, "")
}
