package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/garrettladley/wellscore/internal/service/user"
	"github.com/garrettladley/wellscore/internal/xcontext"
	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/garrettladley/wellscore/internal/xslog"
)

const lastUsedTimeout = 5 * time.Second

// APIKeyAuth validates API keys and sets the owning user ID in context.
func APIKeyAuth(userService user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := xslog.FromContext(ctx)

			apiKey := xhttp.GetRequestHeaderAPIKey(r)
			if apiKey == "" {
				logger.WarnContext(ctx, "missing API key header", xslog.RequestPath(r))
				xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("missing API key")))
				return
			}

			validatedUser, err := userService.ValidateAPIKey(ctx, apiKey)
			if err != nil {
				switch {
				case errors.Is(err, user.ErrAPIKeyNotFound):
					xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("invalid API key")))
				case errors.Is(err, user.ErrAPIKeyRevoked):
					xerrors.WriteError(ctx, w, xerrors.Unauthorized(xerrors.WithMessage("API key has been revoked")))
				case errors.Is(err, user.ErrUserBanned), errors.Is(err, user.ErrUserNotFound):
					xerrors.WriteError(ctx, w, xerrors.Forbidden(xerrors.WithMessage("account disabled")))
				default:
					xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("API key validation failed"), xerrors.WithCause(err)))
				}
				return
			}

			go func() {
				ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lastUsedTimeout)
				defer cancel()

				if err := userService.UpdateAPIKeyLastUsed(ctx, validatedUser.APIKeyID); err != nil {
					logger.WarnContext(ctx, "failed to update API key last_used_at",
						xslog.ErrorGroup(err))
				}
			}()

			userID := strconv.FormatInt(validatedUser.UserID, 10)
			ctx = xcontext.SetUserID(ctx, userID)
			ctx = xslog.WithAttrs(ctx, xslog.UserGroup(userID, validatedUser.APIKeyID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
