package assessment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SQLiteStore keeps the CLI's local history. JSON columns are TEXT.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const sqliteSelectColumns = `id, user_id, title, form_data, scores, grade, created_at, updated_at`

func (s *SQLiteStore) Create(ctx context.Context, a *Assessment) error {
	cols, err := encodeColumns(a)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, user_id, title, form_data, scores, grade, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.UserID, a.Title,
		string(cols.formData), string(cols.scores), string(cols.grade),
		a.CreatedAt.UTC(), a.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, userID string, id uuid.UUID) (*Assessment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+sqliteSelectColumns+` FROM assessments WHERE id = ? AND user_id = ?`,
		id.String(), userID,
	)
	a, err := scanAssessment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting assessment: %w", err)
	}
	return a, nil
}

func (s *SQLiteStore) List(ctx context.Context, userID string) ([]Assessment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+sqliteSelectColumns+` FROM assessments WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

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

func (s *SQLiteStore) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM assessments WHERE id = ? AND user_id = ?`,
		id.String(), userID,
	)
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
