package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/client/wellscore"
	"github.com/garrettladley/wellscore/internal/db"
	"github.com/garrettladley/wellscore/internal/validator"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xslog"
)

// localUser owns every assessment in the local history.
const localUser = "local"

var errAmbiguousID = errors.New("id prefix matches more than one assessment")

type backend interface {
	Score(ctx context.Context, in wellness.MetricInput) (wellness.Scores, wellness.Grade, error)
	Grade(ctx context.Context, score float64) (wellness.Grade, error)
	Save(ctx context.Context, req assessment.CreateRequest) (*assessment.Assessment, error)
	List(ctx context.Context) ([]assessment.Assessment, error)
	Get(ctx context.Context, id uuid.UUID) (*assessment.Assessment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}

type localBackend struct {
	db      *sql.DB
	engines *wellness.Holder
	svc     *assessment.Service
}

func openLocalBackend(ctx context.Context, path string, engines *wellness.Holder, logger *slog.Logger) (*localBackend, error) {
	sqlDB, applied, err := db.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(applied) > 0 {
		logger.DebugContext(ctx, "applied migrations", xslog.Path(path), xslog.Migrations(applied))
	}

	return &localBackend{
		db:      sqlDB,
		engines: engines,
		svc:     assessment.NewService(assessment.NewSQLiteStore(sqlDB), engines),
	}, nil
}

func (b *localBackend) Score(_ context.Context, in wellness.MetricInput) (wellness.Scores, wellness.Grade, error) {
	return scoreLocal(b.engines, in)
}

func (b *localBackend) Grade(_ context.Context, score float64) (wellness.Grade, error) {
	return wellness.GradeFromScore(score), nil
}

func (b *localBackend) Save(ctx context.Context, req assessment.CreateRequest) (*assessment.Assessment, error) {
	return b.svc.Create(ctx, localUser, req)
}

func (b *localBackend) List(ctx context.Context) ([]assessment.Assessment, error) {
	return b.svc.List(ctx, localUser)
}

func (b *localBackend) Get(ctx context.Context, id uuid.UUID) (*assessment.Assessment, error) {
	return b.svc.Get(ctx, localUser, id)
}

func (b *localBackend) Delete(ctx context.Context, id uuid.UUID) error {
	return b.svc.Delete(ctx, localUser, id)
}

func (b *localBackend) Close() error { return b.db.Close() }

type remoteBackend struct {
	client *wellscore.Client
}

func newRemoteBackend(server, apiKey string) *remoteBackend {
	return &remoteBackend{client: wellscore.New(server, wellscore.WithAPIKey(apiKey))}
}

func (b *remoteBackend) Score(ctx context.Context, in wellness.MetricInput) (wellness.Scores, wellness.Grade, error) {
	res, err := b.client.Score(ctx, in)
	if err != nil {
		return wellness.Scores{}, wellness.Grade{}, err
	}
	return res.Scores, res.Grade, nil
}

func (b *remoteBackend) Grade(ctx context.Context, score float64) (wellness.Grade, error) {
	g, err := b.client.Grade(ctx, score)
	if err != nil {
		return wellness.Grade{}, err
	}
	return *g, nil
}

func (b *remoteBackend) Save(ctx context.Context, req assessment.CreateRequest) (*assessment.Assessment, error) {
	return b.client.CreateAssessment(ctx, req)
}

func (b *remoteBackend) List(ctx context.Context) ([]assessment.Assessment, error) {
	return b.client.ListAssessments(ctx)
}

func (b *remoteBackend) Get(ctx context.Context, id uuid.UUID) (*assessment.Assessment, error) {
	a, err := b.client.GetAssessment(ctx, id)
	if wellscore.IsNotFound(err) {
		return nil, assessment.ErrNotFound
	}
	return a, err
}

func (b *remoteBackend) Delete(ctx context.Context, id uuid.UUID) error {
	err := b.client.DeleteAssessment(ctx, id)
	if wellscore.IsNotFound(err) {
		return assessment.ErrNotFound
	}
	return err
}

func (b *remoteBackend) Close() error { return nil }

// scoreLocal applies the same input checks as a saved assessment.
func scoreLocal(engines *wellness.Holder, in wellness.MetricInput) (wellness.Scores, wellness.Grade, error) {
	if err := validator.Validate(assessment.CreateRequest{FormData: in}); err != nil {
		return wellness.Scores{}, wellness.Grade{}, err
	}
	scores := engines.Engine().Calculate(in)
	return scores, scores.Grade(), nil
}

// resolveID accepts a full id or a unique prefix of one.
func resolveID(ctx context.Context, b backend, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	prefix := strings.ToLower(strings.TrimSpace(arg))
	if prefix == "" {
		return uuid.Nil, fmt.Errorf("empty id: %w", assessment.ErrNotFound)
	}

	list, err := b.List(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var (
		match uuid.UUID
		found int
	)
	for _, a := range list {
		if strings.HasPrefix(a.ID.String(), prefix) {
			match = a.ID
			found++
		}
	}
	switch found {
	case 0:
		return uuid.Nil, fmt.Errorf("%s: %w", arg, assessment.ErrNotFound)
	case 1:
		return match, nil
	default:
		return uuid.Nil, fmt.Errorf("%s: %w", arg, errAmbiguousID)
	}
}
