package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garrettladley/wellscore/internal/storage"
	"github.com/garrettladley/wellscore/internal/xcontext"
	"github.com/garrettladley/wellscore/internal/xhttp"
)

type recordingLimiter struct {
	result storage.RateLimitResult
	err    error
	keys   chan string
}

func (l *recordingLimiter) Allow(_ context.Context, key string) (storage.RateLimitResult, error) {
	l.keys <- key
	return l.result, l.err
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		key           RateLimitKey
		userID        string
		result        storage.RateLimitResult
		err           error
		wantStatus    int
		wantKey       string
		wantReason    string
		wantRemaining string
	}{
		{
			name:          "allowed by ip",
			key:           ByIP("score"),
			result:        storage.RateLimitResult{Allowed: true, Remaining: 3},
			wantStatus:    http.StatusOK,
			wantKey:       "score:ip:192.0.2.1",
			wantRemaining: "3",
		},
		{
			name:       "limited by ip",
			key:        ByIP("score"),
			result:     storage.RateLimitResult{RetryAfter: 2 * time.Second},
			wantStatus: http.StatusTooManyRequests,
			wantKey:    "score:ip:192.0.2.1",
			wantReason: "score_rate_limit",
		},
		{
			name:          "by user",
			key:           ByUser("assessments"),
			userID:        "7",
			result:        storage.RateLimitResult{Allowed: true},
			wantStatus:    http.StatusOK,
			wantKey:       "assessments:user:7",
			wantRemaining: "0",
		},
		{
			name:       "by user without user",
			key:        ByUser("assessments"),
			result:     storage.RateLimitResult{},
			wantStatus: http.StatusTooManyRequests,
			wantKey:    "assessments:ip:192.0.2.1",
			wantReason: "assessments_rate_limit",
		},
		{
			name:       "backend error",
			key:        ByIP("score"),
			err:        errors.New("redis down"),
			wantStatus: http.StatusServiceUnavailable,
			wantKey:    "score:ip:192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			limiter := &recordingLimiter{result: tt.result, err: tt.err, keys: make(chan string, 1)}
			h := RateLimit(limiter, tt.key)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

			req := httptest.NewRequestWithContext(t.Context(), http.MethodPost, "/api/score", nil)
			if tt.userID != "" {
				req = req.WithContext(xcontext.SetUserID(req.Context(), tt.userID))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := <-limiter.keys; got != tt.wantKey {
				t.Errorf("key = %q, want %q", got, tt.wantKey)
			}
			if got := rec.Header().Get(xhttp.XRateLimitReason); got != tt.wantReason {
				t.Errorf("%s = %q, want %q", xhttp.XRateLimitReason, got, tt.wantReason)
			}
			if got := rec.Header().Get(xhttp.XRateLimitRemaining); got != tt.wantRemaining {
				t.Errorf("%s = %q, want %q", xhttp.XRateLimitRemaining, got, tt.wantRemaining)
			}
			if tt.wantStatus == http.StatusTooManyRequests && rec.Header().Get("Retry-After") != "2" && tt.result.RetryAfter > 0 {
				t.Errorf("Retry-After = %q, want 2", rec.Header().Get("Retry-After"))
			}
		})
	}
}
