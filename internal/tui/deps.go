package tui

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/garrettladley/wellscore/internal/assessment"
)

// Lister returns saved assessments, newest first.
type Lister interface {
	List(ctx context.Context) ([]assessment.Assessment, error)
}

type Deps struct {
	Ctx    context.Context
	Logger *slog.Logger
	Store  Lister

	// Selected opens the dashboard on this assessment when it is present.
	Selected uuid.UUID

	// Preloaded skips the store entirely, e.g. for an unsaved score.
	Preloaded []assessment.Assessment
}
