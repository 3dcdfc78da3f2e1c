// Package wellscore is a client for the wellscore HTTP API.
package wellscore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/garrettladley/wellscore/internal/assessment"
	"github.com/garrettladley/wellscore/internal/wellness"
	"github.com/garrettladley/wellscore/internal/xhttp"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type clientConfig struct {
	apiKey  string
	timeout time.Duration
	base    http.RoundTripper
}

type Option func(*clientConfig)

func WithAPIKey(apiKey string) Option {
	return func(cfg *clientConfig) { cfg.apiKey = apiKey }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithTransport replaces the underlying round tripper, e.g. in tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.base = rt }
}

func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		timeout: defaultTimeout,
		base:    xhttp.NewTransport(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &apiKeyTransport{base: cfg.base, apiKey: cfg.apiKey},
			Timeout:   cfg.timeout,
		},
	}
}

type ScoreResult struct {
	Scores wellness.Scores `json:"scores"`
	Grade  wellness.Grade  `json:"grade"`
}

func (c *Client) Score(ctx context.Context, in wellness.MetricInput) (*ScoreResult, error) {
	var out ScoreResult
	if err := c.do(ctx, http.MethodPost, "/api/score", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Grade(ctx context.Context, score float64) (*wellness.Grade, error) {
	q := url.Values{"score": {strconv.FormatFloat(score, 'f', -1, 64)}}
	var out wellness.Grade
	if err := c.do(ctx, http.MethodGet, "/api/grade", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAssessment(ctx context.Context, req assessment.CreateRequest) (*assessment.Assessment, error) {
	var out struct {
		Assessment *assessment.Assessment `json:"assessment"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/assessments", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Assessment, nil
}

func (c *Client) ListAssessments(ctx context.Context) ([]assessment.Assessment, error) {
	var out struct {
		Assessments []assessment.Assessment `json:"assessments"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/assessments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Assessments, nil
}

func (c *Client) GetAssessment(ctx context.Context, id uuid.UUID) (*assessment.Assessment, error) {
	var out struct {
		Assessment *assessment.Assessment `json:"assessment"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/assessments/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Assessment, nil
}

func (c *Client) DeleteAssessment(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/assessments/"+id.String(), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set(xhttp.ContentType, "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		if err := go_json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("decoding response: %w\nbody: %s", err, string(raw))
		}
	}

	return nil
}

type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

var _ http.RoundTripper = (*apiKeyTransport)(nil)

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/json")
	if t.apiKey != "" {
		req.Header.Set(xhttp.XAPIKey, t.apiKey)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
