package middleware

import (
	"net/http"
	"strconv"

	"github.com/garrettladley/wellscore/internal/storage"
	"github.com/garrettladley/wellscore/internal/xcontext"
	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/garrettladley/wellscore/internal/xslog"
)

// RateLimitKey names the bucket a request is counted against.
type RateLimitKey struct {
	Scope string
	By    func(*http.Request) (string, bool)
}

// ByIP buckets requests per client address within scope.
func ByIP(scope string) RateLimitKey {
	return RateLimitKey{Scope: scope, By: ipKey}
}

// ByUser buckets authenticated requests per user, falling back to the
// client address. It must run after APIKeyAuth.
func ByUser(scope string) RateLimitKey {
	return RateLimitKey{Scope: scope, By: func(r *http.Request) (string, bool) {
		if userID, ok := xcontext.GetUserID(r.Context()); ok {
			return "user:" + userID, true
		}
		return ipKey(r)
	}}
}

func ipKey(r *http.Request) (string, bool) {
	ip := xhttp.GetRequestIP(r)
	return "ip:" + ip, ip != ""
}

func RateLimit(limiter storage.RateLimiter, key RateLimitKey) func(http.Handler) http.Handler {
	reason := key.Scope + "_rate_limit"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, ok := key.By(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(ctx, key.Scope+":"+id)
			if err != nil {
				xslog.FromContext(ctx).ErrorContext(ctx, "rate limit check failed",
					xslog.ErrorGroup(err),
					xslog.IP(xhttp.GetRequestIP(r)),
				)
				xerrors.WriteError(ctx, w, xerrors.ServiceUnavailable(xerrors.WithMessage("rate limit check failed")))
				return
			}

			if !result.Allowed {
				xerrors.WriteError(ctx, w, xerrors.TooManyRequests(
					xerrors.WithRetryAfter(result.RetryAfter),
					xerrors.WithReason(reason),
				))
				return
			}

			w.Header().Set(xhttp.XRateLimitRemaining, strconv.Itoa(result.Remaining))
			next.ServeHTTP(w, r)
		})
	}
}
