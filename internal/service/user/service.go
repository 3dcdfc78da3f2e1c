package user

import (
	"context"
	"errors"
)

var (
	ErrAPIKeyNotFound = errors.New("API key not found")
	ErrAPIKeyRevoked  = errors.New("API key has been revoked")
	ErrUserBanned     = errors.New("user account is banned")
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
)

type ValidatedUser struct {
	UserID   int64
	APIKeyID int64
}

type CreatedUser struct {
	UserID   int64
	APIKeyID int64
	// APIKey is the plaintext key. It is not stored and cannot be recovered.
	APIKey string
}

type Service interface {
	// ValidateAPIKey validates an API key and returns the associated user info.
	// Returns ErrAPIKeyNotFound if the key doesn't exist,
	// ErrAPIKeyRevoked if the key has been revoked,
	// or ErrUserBanned if the user account is banned.
	ValidateAPIKey(ctx context.Context, apiKey string) (*ValidatedUser, error)

	// CreateUser registers email and issues its first API key.
	// Returns ErrUserExists if the email is taken.
	CreateUser(ctx context.Context, email string) (*CreatedUser, error)

	// UpdateAPIKeyLastUsed updates the last_used_at timestamp for an API key.
	// This is typically called asynchronously after successful validation.
	UpdateAPIKeyLastUsed(ctx context.Context, apiKeyID int64) error

	RevokeAPIKey(ctx context.Context, apiKeyID int64) error

	IsBanned(ctx context.Context, userID int64) (bool, error)
}
