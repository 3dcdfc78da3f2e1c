package middleware

import (
	"net/http"

	"github.com/garrettladley/wellscore/internal/xhttp"
)

const strictTransportSecurity = "Strict-Transport-Security"

// SecurityHeaders sets the baseline browser hardening headers. HSTS is only
// sent when hsts is true, i.e. behind TLS in production.
func SecurityHeaders(hsts bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(xhttp.XContentTypeOpts, "nosniff")
			h.Set(xhttp.XFrameOpts, "DENY")
			h.Set(xhttp.XXSSProtection, "1; mode=block")
			h.Set(xhttp.ReferrerPolicy, "strict-origin-when-cross-origin")
			if hsts {
				h.Set(strictTransportSecurity, "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
