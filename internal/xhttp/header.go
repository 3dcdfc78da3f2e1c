package xhttp

import (
	"net/http"
	"strconv"
	"time"
)

const (
	XForwardedFor       = "X-Forwarded-For"
	XContentTypeOpts    = "X-Content-Type-Options"
	XFrameOpts          = "X-Frame-Options"
	XXSSProtection      = "X-Xss-Protection"
	ReferrerPolicy      = "Referrer-Policy"
	XRateLimitReason    = "X-RateLimit-Reason"
	XRateLimitRemaining = "X-RateLimit-Remaining"
	XRequestID          = "X-Request-ID"
	XAPIKey             = "X-API-Key"
	Authorization       = "Authorization"
)

const (
	ContentType     = "Content-Type"
	ContentEncoding = "Content-Encoding"
	ContentLength   = "Content-Length"
	AcceptEncoding  = "Accept-Encoding"
	Vary            = "Vary"
	UserAgent       = "User-Agent"
)

const applicationJSON = "application/json"

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, applicationJSON)
}

func SetHeaderRetryAfter(w http.ResponseWriter, retryAfter time.Duration) {
	const retryAfterHeader = "Retry-After"
	seconds := int(retryAfter.Round(time.Second).Seconds())
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(retryAfterHeader, strconv.Itoa(seconds))
}

// GetRequestHeaderAPIKey reads X-API-Key, falling back to a
// "Bearer <key>" Authorization header.
func GetRequestHeaderAPIKey(r *http.Request) string {
	if key := r.Header.Get(XAPIKey); key != "" {
		return key
	}
	const bearerPrefix = "Bearer "
	if auth := r.Header.Get(Authorization); len(auth) > len(bearerPrefix) && auth[:len(bearerPrefix)] == bearerPrefix {
		return auth[len(bearerPrefix):]
	}
	return ""
}
