package middleware

import (
	"net/http"

	"github.com/garrettladley/wellscore/internal/xcontext"
	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/google/uuid"
)

type RequestIDMiddleware struct {
	IDFunc func(*http.Request) string
}

type RequestIDOption func(*RequestIDMiddleware)

func WithIDFunc(f func(*http.Request) string) RequestIDOption {
	return func(m *RequestIDMiddleware) { m.IDFunc = f }
}

// defaultRequestID reuses an inbound X-Request-ID when it is a UUID so
// traces survive a proxy hop; anything else is replaced.
func defaultRequestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(xhttp.XRequestID)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	m := &RequestIDMiddleware{IDFunc: defaultRequestID}
	for _, opt := range opts {
		opt(m)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := m.IDFunc(r)
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
