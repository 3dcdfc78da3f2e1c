package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/db"
	"github.com/garrettladley/wellscore/internal/server/handler"
	"github.com/garrettladley/wellscore/internal/service/user"
	"github.com/garrettladley/wellscore/internal/storage"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xhttp"
	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

const (
	aliceKey = "wsk_alice"
	bobKey   = "wsk_bob"
)

type fakeUsers struct{}

func (fakeUsers) ValidateAPIKey(_ context.Context, key string) (*user.ValidatedUser, error) {
	switch key {
	case aliceKey:
		return &user.ValidatedUser{UserID: 1, APIKeyID: 10}, nil
	case bobKey:
		return &user.ValidatedUser{UserID: 2, APIKeyID: 20}, nil
	case "wsk_revoked":
		return nil, user.ErrAPIKeyRevoked
	case "wsk_banned":
		return nil, user.ErrUserBanned
	default:
		return nil, user.ErrAPIKeyNotFound
	}
}

func (fakeUsers) CreateUser(context.Context, string) (*user.CreatedUser, error) {
	return nil, errors.New("not implemented")
}
func (fakeUsers) UpdateAPIKeyLastUsed(context.Context, int64) error { return nil }
func (fakeUsers) RevokeAPIKey(context.Context, int64) error         { return nil }
func (fakeUsers) IsBanned(context.Context, int64) (bool, error)     { return false, nil }

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (storage.RateLimitResult, error) {
	return storage.RateLimitResult{Allowed: false}, nil
}

func newTestHandler(t *testing.T, limiter storage.RateLimiter, health map[string]handler.Pinger) http.Handler {
	t.Helper()

	sqlDB, _, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "server.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if limiter == nil {
		mem := storage.NewMemoryBackend(1000, 1000)
		t.Cleanup(func() { _ = mem.Close() })
		limiter = mem
	}

	engines := wellness.NewHolder(wellness.DefaultEngine())
	return NewHandler(Deps{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Engines:        engines,
		Assessments:    assessment.NewService(assessment.NewSQLiteStore(sqlDB), engines),
		Users:          fakeUsers{},
		RateLimiter:    limiter,
		Health:         health,
		AllowedOrigins: []string{"*"},
	})
}

func do(t *testing.T, h http.Handler, method, path, apiKey string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := go_json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if apiKey != "" {
		req.Header.Set(xhttp.XAPIKey, apiKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := go_json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestScore(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, nil)
	s, _ := wellness.ScenarioByKey("healthyYoungMale")

	rec := do(t, h, http.MethodPost, "/api/score", "", s.Input)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	got := decodeBody[handler.ScoreResponse](t, rec)
	want := handler.ScoreResponse{
		Scores: wellness.Scores{Metabolic: 97, VO2Max: 100, GripStrength: 100, BodyComposition: 98, Total: 98},
		Grade:  wellness.GradeFromScore(98),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
	if rec.Header().Get(xhttp.XRequestID) == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestScore_BadBodies(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, nil)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "empty", body: "", want: http.StatusBadRequest},
		{name: "malformed", body: "{", want: http.StatusBadRequest},
		{name: "wrong type", body: `{"age": 30}`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/score", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestScore_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestHandler(t, nil, nil), http.MethodGet, "/api/score", "", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestGrade(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, nil)

	tests := []struct {
		query     string
		wantCode  int
		wantGrade string
	}{
		{query: "90", wantCode: http.StatusOK, wantGrade: "A+"},
		{query: "89.999", wantCode: http.StatusOK, wantGrade: "A"},
		{query: "49.999", wantCode: http.StatusOK, wantGrade: "F"},
		{query: "", wantCode: http.StatusBadRequest},
		{query: "NaN", wantCode: http.StatusBadRequest},
		{query: "abc", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			rec := do(t, h, http.MethodGet, "/api/grade?score="+tt.query, "", nil)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK {
				if g := decodeBody[wellness.Grade](t, rec); g.Grade != tt.wantGrade {
					t.Errorf("grade = %q, want %q", g.Grade, tt.wantGrade)
				}
			}
		})
	}
}

func TestRateLimited(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestHandler(t, denyAll{}, nil), http.MethodGet, "/api/grade?score=50", "", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get(xhttp.XRateLimitReason); got != "score_rate_limit" {
		t.Errorf("%s = %q", xhttp.XRateLimitReason, got)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
}

func TestAssessments_Auth(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, nil)

	tests := []struct {
		name string
		key  string
		want int
	}{
		{name: "missing", key: "", want: http.StatusUnauthorized},
		{name: "unknown", key: "wsk_nope", want: http.StatusUnauthorized},
		{name: "revoked", key: "wsk_revoked", want: http.StatusUnauthorized},
		{name: "banned", key: "wsk_banned", want: http.StatusForbidden},
		{name: "valid", key: aliceKey, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if rec := do(t, h, http.MethodGet, "/api/assessments", tt.key, nil); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

type assessmentEnvelope struct {
	Assessment assessment.Assessment `json:"assessment"`
}

type listEnvelope struct {
	Assessments []assessment.Assessment `json:"assessments"`
}

func TestAssessments_Lifecycle(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, nil)
	s, _ := wellness.ScenarioByKey("unhealthyMale")

	// client-supplied scores are ignored
	body := map[string]any{
		"title":    "baseline",
		"formData": s.Input,
		"scores":   map[string]int{"total": 100},
	}
	rec := do(t, h, http.MethodPost, "/api/assessments", aliceKey, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body)
	}
	created := decodeBody[assessmentEnvelope](t, rec).Assessment
	if created.Scores.Total != 50 || created.Grade.Grade != "D" {
		t.Errorf("created scored %d/%s, want 50/D", created.Scores.Total, created.Grade.Grade)
	}
	path := "/api/assessments/" + created.ID.String()

	rec = do(t, h, http.MethodGet, path, aliceKey, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if got := decodeBody[assessmentEnvelope](t, rec).Assessment; got.Title != "baseline" || got.Input != s.Input {
		t.Errorf("get = %+v", got)
	}

	if rec := do(t, h, http.MethodGet, path, bobKey, nil); rec.Code != http.StatusNotFound {
		t.Errorf("foreign get status = %d, want 404", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/api/assessments/not-a-uuid", aliceKey, nil); rec.Code != http.StatusNotFound {
		t.Errorf("malformed id status = %d, want 404", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/api/assessments", aliceKey, nil)
	if list := decodeBody[listEnvelope](t, rec).Assessments; len(list) != 1 {
		t.Errorf("alice list len = %d, want 1", len(list))
	}
	rec = do(t, h, http.MethodGet, "/api/assessments", bobKey, nil)
	if list := decodeBody[listEnvelope](t, rec).Assessments; list == nil || len(list) != 0 {
		t.Errorf("bob list = %#v, want empty array", list)
	}

	if rec := do(t, h, http.MethodDelete, path, bobKey, nil); rec.Code != http.StatusNotFound {
		t.Errorf("foreign delete status = %d, want 404", rec.Code)
	}
	if rec := do(t, h, http.MethodDelete, path, aliceKey, nil); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, path, aliceKey, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestAssessments_Validation(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil, nil)
	body := map[string]any{"formData": map[string]string{"sex": "unknown"}}

	rec := do(t, h, http.MethodPost, "/api/assessments", aliceKey, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", rec.Code, rec.Body)
	}
	got := decodeBody[struct {
		Fields map[string]string `json:"fields"`
	}](t, rec)
	if _, ok := got.Fields["formData.sex"]; !ok {
		t.Errorf("fields = %v, want formData.sex", got.Fields)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("down") })

	tests := []struct {
		name   string
		checks map[string]handler.Pinger
		want   int
	}{
		{name: "no checks", checks: nil, want: http.StatusOK},
		{name: "all up", checks: map[string]handler.Pinger{"postgres": ok, "ratelimit": ok}, want: http.StatusOK},
		{name: "one down", checks: map[string]handler.Pinger{"postgres": ok, "ratelimit": down}, want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := do(t, newTestHandler(t, denyAll{}, tt.checks), http.MethodGet, "/health", "", nil)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestHandler(t, nil, nil), http.MethodGet, "/health", "", nil)
	if got := rec.Header().Get(xhttp.XContentTypeOpts); got != "nosniff" {
		t.Errorf("%s = %q", xhttp.XContentTypeOpts, got)
	}
}
