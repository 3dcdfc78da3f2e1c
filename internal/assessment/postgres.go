package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	db DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const pgSelectColumns = `id::text, user_id, title, form_data, scores, grade, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, a *Assessment) error {
	cols, err := encodeColumns(a)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO wellness_assessments (id, user_id, title, form_data, scores, grade, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID.String(), a.UserID, a.Title, cols.formData, cols.scores, cols.grade, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, userID string, id uuid.UUID) (*Assessment, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+pgSelectColumns+` FROM wellness_assessments WHERE id = $1::uuid AND user_id = $2`,
		id.String(), userID,
	)
	a, err := scanAssessment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting assessment: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) List(ctx context.Context, userID string) ([]Assessment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+pgSelectColumns+` FROM wellness_assessments WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	out := []Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning assessment: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM wellness_assessments WHERE id = $1::uuid AND user_id = $2`,
		id.String(), userID,
	)
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is satisfied by pgx.Row, pgx.Rows and *sql.Row(s).
type scanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row scanner) (*Assessment, error) {
	var (
		a    Assessment
		id   string
		cols jsonColumns
	)
	if err := row.Scan(&id, &a.UserID, &a.Title, &cols.formData, &cols.scores, &cols.grade, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing assessment id: %w", err)
	}
	a.ID = parsed
	if err := cols.decodeInto(&a); err != nil {
		return nil, err
	}
	return &a, nil
}
