package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/wellscore/internal/xcontext"
	"github.com/garrettladley/wellscore/internal/xhttp"
	"github.com/garrettladley/wellscore/internal/xslog"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mws := []func(http.Handler) http.Handler{mark("a"), mark("b"), mark("c")}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mws...)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if diff := cmp.Diff([]string{"a", "b", "c", "handler"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if len(mws) != 3 {
		t.Errorf("Chain modified its argument")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	valid := uuid.NewString()

	tests := []struct {
		name    string
		inbound string
		reuse   bool
	}{
		{name: "generated when missing", inbound: "", reuse: false},
		{name: "inbound uuid reused", inbound: valid, reuse: true},
		{name: "inbound garbage replaced", inbound: "<script>", reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = xcontext.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.inbound != "" {
				req.Header.Set(xhttp.XRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if _, err := uuid.Parse(seen); err != nil {
				t.Fatalf("request id %q is not a uuid", seen)
			}
			if got := rec.Header().Get(xhttp.XRequestID); got != seen {
				t.Errorf("header = %q, context = %q", got, seen)
			}
			if tt.reuse && seen != tt.inbound {
				t.Errorf("request id = %q, want %q", seen, tt.inbound)
			}
			if !tt.reuse && seen == tt.inbound {
				t.Errorf("inbound id %q should have been replaced", tt.inbound)
			}
		})
	}
}

func TestRequestID_WithIDFunc(t *testing.T) {
	t.Parallel()

	h := RequestID(WithIDFunc(func(*http.Request) string { return "fixed" }))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get(xhttp.XRequestID); got != "fixed" {
		t.Errorf("X-Request-ID = %q, want fixed", got)
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/score", nil)
	req = req.WithContext(xslog.WithLogger(req.Context(), logger))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("log output missing panic record: %s", buf.String())
	}
}

func TestLogging_CapturesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: `"level":"INFO"`},
		{name: "client error", status: http.StatusNotFound, wantLevel: `"level":"INFO"`},
		{name: "server error", status: http.StatusBadGateway, wantLevel: `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/score", nil)
			req = req.WithContext(xslog.WithLogger(req.Context(), logger))
			h.ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log = %s, want %s", out, tt.wantLevel)
			}
			if !strings.Contains(out, `"http request"`) {
				t.Errorf("log = %s, missing message", out)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	for _, hsts := range []bool{false, true} {
		h := SecurityHeaders(hsts)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if got := rec.Header().Get(xhttp.XContentTypeOpts); got != "nosniff" {
			t.Errorf("X-Content-Type-Options = %q", got)
		}
		if got := rec.Header().Get(xhttp.XFrameOpts); got != "DENY" {
			t.Errorf("X-Frame-Options = %q", got)
		}
		if got := rec.Header().Get(strictTransportSecurity) != ""; got != hsts {
			t.Errorf("hsts=%v but Strict-Transport-Security set=%v", hsts, got)
		}
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	const allowed = "https://app.example.com"

	tests := []struct {
		name       string
		method     string
		origin     string
		preflight  bool
		wantOrigin string
		wantNext   bool
	}{
		{name: "allowed origin", method: http.MethodPost, origin: allowed, wantOrigin: allowed, wantNext: true},
		{name: "unknown origin", method: http.MethodPost, origin: "https://evil.example.com", wantOrigin: "", wantNext: true},
		{name: "preflight", method: http.MethodOptions, origin: allowed, preflight: true, wantOrigin: allowed, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			h := CORS([]string{allowed})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(tt.method, "/api/score", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
				req.Header.Set("Access-Control-Request-Headers", xhttp.XAPIKey)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if called != tt.wantNext {
				t.Errorf("next called = %v, want %v", called, tt.wantNext)
			}
		})
	}
}
