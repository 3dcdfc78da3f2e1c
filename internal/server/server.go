// Package server wires the HTTP API: public scoring endpoints guarded by an
// IP rate limiter and API-key routes for saved assessments.
package server

import (
	"log/slog"
	"net/http"

	"github.com/garrettladley/wellscore/internal/server/handler"
	servermw "github.com/garrettladley/wellscore/internal/server/middleware"
	"github.com/garrettladley/wellscore/internal/service/user"
	"github.com/garrettladley/wellscore/internal/storage"
	"github.com/garrettladley/wellscore/internal/version"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xhttp/middleware"
)

type Deps struct {
	Logger      *slog.Logger
	Engines     *wellness.Holder
	Assessments handler.AssessmentService
	Users       user.Service
	RateLimiter storage.RateLimiter
	// Health lists the dependencies pinged by GET /health.
	Health         map[string]handler.Pinger
	AllowedOrigins []string
	HSTS           bool
	// Version is compared against X-Client-Version; defaults to this build.
	Version string
}

func NewHandler(d Deps) http.Handler {
	scoreHandler := handler.NewScore(d.Engines)
	assessmentsHandler := handler.NewAssessments(d.Assessments)
	healthHandler := handler.NewHealth(d.Health)

	serverVersion := d.Version
	if serverVersion == "" {
		serverVersion = version.Get()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.HandleHealth)

	// Public scoring, rate limited per IP
	publicMux := http.NewServeMux()
	publicMux.HandleFunc("POST /api/score", scoreHandler.HandleScore)
	publicMux.HandleFunc("GET /api/grade", scoreHandler.HandleGrade)
	public := middleware.Chain(publicMux,
		servermw.ClientVersion(serverVersion),
		servermw.RateLimit(d.RateLimiter, servermw.ByIP("score")),
	)
	mux.Handle("/api/score", public)
	mux.Handle("/api/grade", public)

	// Saved assessments, API key required and rate limited per user
	authedMux := http.NewServeMux()
	authedMux.HandleFunc("POST /api/assessments", assessmentsHandler.HandleCreate)
	authedMux.HandleFunc("GET /api/assessments", assessmentsHandler.HandleList)
	authedMux.HandleFunc("GET /api/assessments/{id}", assessmentsHandler.HandleGet)
	authedMux.HandleFunc("DELETE /api/assessments/{id}", assessmentsHandler.HandleDelete)
	authed := middleware.Chain(authedMux,
		servermw.ClientVersion(serverVersion),
		servermw.APIKeyAuth(d.Users),
		servermw.RateLimit(d.RateLimiter, servermw.ByUser("assessments")),
	)
	mux.Handle("/api/assessments", authed)
	mux.Handle("/api/assessments/", authed)

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery,
		middleware.Logging,
		middleware.SecurityHeaders(d.HSTS),
		middleware.CORS(d.AllowedOrigins),
		middleware.Gzip(middleware.GzipExclude("/health")),
	)
}
