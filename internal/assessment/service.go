package assessment

import (
	"context"
	"strings"
	"time"

	"github.com/garrettladley/wellscore/internal/validator"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/google/uuid"
)

// Service scores and stores assessments. Scores are always computed here
// from the submitted form; clients never supply them.
type Service struct {
	store   Store
	engines *wellness.Holder
	now     func() time.Time
	newID   func() uuid.UUID
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDFunc(f func() uuid.UUID) Option {
	return func(s *Service) { s.newID = f }
}

func NewService(store Store, engines *wellness.Holder, opts ...Option) *Service {
	s := &Service{
		store:   store,
		engines: engines,
		now:     time.Now,
		newID:   uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultTitle names an untitled assessment after the day it was taken.
func DefaultTitle(t time.Time) string {
	return "Assessment " + t.Format("Jan 2, 2006")
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (*Assessment, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	scores := s.engines.Engine().Calculate(req.FormData)
	now := s.now().UTC()

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DefaultTitle(now)
	}

	a := &Assessment{
		ID:        s.newID(),
		UserID:    userID,
		Title:     title,
		Input:     req.FormData,
		Scores:    scores,
		Grade:     scores.Grade(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, userID string, id uuid.UUID) (*Assessment, error) {
	return s.store.Get(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Assessment, error) {
	return s.store.List(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.store.Delete(ctx, userID, id)
}
