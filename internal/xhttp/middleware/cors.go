package middleware

import (
	"net/http"

	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/go-chi/cors"
)

// CORS allows browser clients from origins to call the API with an API key.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{xhttp.ContentType, xhttp.XAPIKey, xhttp.Authorization, xhttp.XRequestID},
		ExposedHeaders: []string{xhttp.XRequestID, xhttp.XRateLimitReason, "Retry-After"},
		MaxAge:         300,
	})
}
