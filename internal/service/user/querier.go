package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoRows is returned by Querier lookups that match nothing.
var ErrNoRows = errors.New("no rows")

type User struct {
	ID        int64
	Email     string
	Banned    bool
	CreatedAt time.Time
}

type APIKey struct {
	ID         int64
	UserID     int64
	Revoked    bool
	LastUsedAt *time.Time
}

type CreateAPIKeyParams struct {
	UserID  int64
	KeyHash string
	Name    string
}

type Querier interface {
	GetUser(ctx context.Context, id int64) (User, error)
	CreateUser(ctx context.Context, email string) (User, error)
	GetAPIKeyByHash(ctx context.Context, keyHash string) (APIKey, error)
	CreateAPIKey(ctx context.Context, arg CreateAPIKeyParams) (APIKey, error)
	UpdateAPIKeyLastUsed(ctx context.Context, id int64) error
	RevokeAPIKey(ctx context.Context, id int64) (int64, error)
}

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

var _ Querier = (*Queries)(nil)

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) GetUser(ctx context.Context, id int64) (User, error) {
	var u User
	err := q.db.QueryRow(ctx,
		`SELECT id, email, banned, created_at FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Banned, &u.CreatedAt)
	return u, noRows(err)
}

func (q *Queries) CreateUser(ctx context.Context, email string) (User, error) {
	var u User
	err := q.db.QueryRow(ctx,
		`INSERT INTO users (email) VALUES ($1)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id, email, banned, created_at`, email,
	).Scan(&u.ID, &u.Email, &u.Banned, &u.CreatedAt)
	return u, noRows(err)
}

func (q *Queries) GetAPIKeyByHash(ctx context.Context, keyHash string) (APIKey, error) {
	var k APIKey
	err := q.db.QueryRow(ctx,
		`SELECT id, user_id, revoked, last_used_at FROM api_keys WHERE key_hash = $1`, keyHash,
	).Scan(&k.ID, &k.UserID, &k.Revoked, &k.LastUsedAt)
	return k, noRows(err)
}

func (q *Queries) CreateAPIKey(ctx context.Context, arg CreateAPIKeyParams) (APIKey, error) {
	var k APIKey
	err := q.db.QueryRow(ctx,
		`INSERT INTO api_keys (user_id, key_hash, name) VALUES ($1, $2, $3)
		 RETURNING id, user_id, revoked, last_used_at`,
		arg.UserID, arg.KeyHash, arg.Name,
	).Scan(&k.ID, &k.UserID, &k.Revoked, &k.LastUsedAt)
	return k, err
}

func (q *Queries) UpdateAPIKeyLastUsed(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, `UPDATE api_keys SET last_used_at = NOW() WHERE id = $1`, id)
	return err
}

func (q *Queries) RevokeAPIKey(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx,
		`UPDATE api_keys SET revoked = TRUE, revoked_at = NOW() WHERE id = $1 AND NOT revoked`, id,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func noRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoRows
	}
	return err
}
