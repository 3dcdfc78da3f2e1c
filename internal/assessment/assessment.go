// Package assessment stores scored wellness assessments per user.
package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("assessment not found")

type Assessment struct {
	ID        uuid.UUID            `json:"id"`
	UserID    string               `json:"-"`
	Title     string               `json:"title"`
	Input     wellness.MetricInput `json:"formData"`
	Scores    wellness.Scores      `json:"scores"`
	Grade     wellness.Grade       `json:"grade"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Store persists assessments. Every lookup is scoped to userID; an ID owned
// by another user behaves as if it did not exist.
type Store interface {
	Create(ctx context.Context, a *Assessment) error
	Get(ctx context.Context, userID string, id uuid.UUID) (*Assessment, error)
	// List returns the user's assessments, newest first.
	List(ctx context.Context, userID string) ([]Assessment, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
