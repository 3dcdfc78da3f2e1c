package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/garrettladley/wellscore/internal/xslog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	checks map[string]Pinger
}

func NewHealth(checks map[string]Pinger) *Health {
	return &Health{checks: checks}
}

const healthTimeout = 2 * time.Second

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealth handles GET /health requests. Any failing dependency makes
// the whole check 503.
func (h *Health) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			xslog.FromContext(ctx).WarnContext(ctx, "health check failed",
				slog.String("check", name),
				xslog.ErrorGroup(err))
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	xhttp.WriteJSON(w, status, resp)
}
