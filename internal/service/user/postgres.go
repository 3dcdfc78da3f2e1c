package user

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

type PostgresService struct {
	db Querier
}

var _ Service = (*PostgresService)(nil)

func NewPostgresService(db Querier) *PostgresService {
	return &PostgresService{db: db}
}

func (s *PostgresService) ValidateAPIKey(ctx context.Context, apiKey string) (*ValidatedUser, error) {
	if !strings.HasPrefix(apiKey, APIKeyPrefix) {
		return nil, ErrAPIKeyNotFound
	}

	apiKeyRecord, err := s.db.GetAPIKeyByHash(ctx, HashSecret(apiKey))
	if errors.Is(err, ErrNoRows) {
		return nil, ErrAPIKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting API key by hash: %w", err)
	}

	if apiKeyRecord.Revoked {
		return nil, ErrAPIKeyRevoked
	}

	user, err := s.db.GetUser(ctx, apiKeyRecord.UserID)
	if errors.Is(err, ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	if user.Banned {
		return nil, ErrUserBanned
	}

	return &ValidatedUser{
		UserID:   apiKeyRecord.UserID,
		APIKeyID: apiKeyRecord.ID,
	}, nil
}

func (s *PostgresService) CreateUser(ctx context.Context, email string) (*CreatedUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.db.CreateUser(ctx, email)
	if errors.Is(err, ErrNoRows) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	apiKey, err := generateAPIKey()
	if err != nil {
		return nil, err
	}

	key, err := s.db.CreateAPIKey(ctx, CreateAPIKeyParams{
		UserID:  user.ID,
		KeyHash: HashSecret(apiKey),
		Name:    "default",
	})
	if err != nil {
		return nil, fmt.Errorf("creating API key: %w", err)
	}

	return &CreatedUser{UserID: user.ID, APIKeyID: key.ID, APIKey: apiKey}, nil
}

func (s *PostgresService) UpdateAPIKeyLastUsed(ctx context.Context, apiKeyID int64) error {
	if err := s.db.UpdateAPIKeyLastUsed(ctx, apiKeyID); err != nil {
		return fmt.Errorf("updating API key last used: %w", err)
	}
	return nil
}

func (s *PostgresService) RevokeAPIKey(ctx context.Context, apiKeyID int64) error {
	n, err := s.db.RevokeAPIKey(ctx, apiKeyID)
	if err != nil {
		return fmt.Errorf("revoking API key: %w", err)
	}
	if n == 0 {
		return ErrAPIKeyNotFound
	}
	return nil
}

func (s *PostgresService) IsBanned(ctx context.Context, userID int64) (bool, error) {
	user, err := s.db.GetUser(ctx, userID)
	if errors.Is(err, ErrNoRows) {
		return false, ErrUserNotFound
	}
	if err != nil {
		return false, fmt.Errorf("getting user: %w", err)
	}
	return user.Banned, nil
}

// HashSecret is the stored form of an API key.
func HashSecret(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

const (
	APIKeyPrefix = "wsk_"
	apiKeyLength = 32
)

func generateAPIKey() (string, error) {
	b := make([]byte, apiKeyLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}
	return APIKeyPrefix + base64.RawURLEncoding.EncodeToString(b), nil
}
