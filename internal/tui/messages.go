package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/wellscore/internal/assessment"
)

type AssessmentsLoadedMsg struct {
	Assessments []assessment.Assessment
	Err         error
}

func loadAssessmentsCmd(d Deps) tea.Cmd {
	return func() tea.Msg {
		if d.Preloaded != nil {
			return AssessmentsLoadedMsg{Assessments: d.Preloaded}
		}
		list, err := d.Store.List(d.Ctx)
		return AssessmentsLoadedMsg{Assessments: list, Err: err}
	}
}
