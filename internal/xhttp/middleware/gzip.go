package middleware

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/garrettladley/wellscore/internal/xhttp"
)

const gzipEncoding = "gzip"

type gzipConfig struct {
	minSize  int
	level    int
	excluded map[string]struct{}
}

type GzipOption func(*gzipConfig)

// GzipMinSize sets how many bytes are buffered before deciding to compress.
func GzipMinSize(n int) GzipOption {
	return func(c *gzipConfig) {
		if n > 0 {
			c.minSize = n
		}
	}
}

func GzipLevel(level int) GzipOption {
	return func(c *gzipConfig) {
		if level >= gzip.HuffmanOnly && level <= gzip.BestCompression {
			c.level = level
		}
	}
}

// GzipExclude skips compression for exact path matches.
func GzipExclude(paths ...string) GzipOption {
	return func(c *gzipConfig) {
		for _, p := range paths {
			c.excluded[p] = struct{}{}
		}
	}
}

// Gzip compresses text and JSON responses once they reach the minimum size
// (1KB unless overridden). Smaller bodies pass through untouched.
func Gzip(opts ...GzipOption) func(http.Handler) http.Handler {
	cfg := gzipConfig{
		minSize:  1024,
		level:    gzip.DefaultCompression,
		excluded: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool := &sync.Pool{
		New: func() any {
			w, _ := gzip.NewWriterLevel(nil, cfg.level)
			return w
		},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, skip := cfg.excluded[r.URL.Path]; skip || !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add(xhttp.Vary, xhttp.AcceptEncoding)

			gw := &gzipResponseWriter{
				ResponseWriter: w,
				pool:           pool,
				minSize:        cfg.minSize,
				status:         http.StatusOK,
			}
			defer gw.Close() //nolint:errcheck // flushes whatever is still buffered

			next.ServeHTTP(gw, r)
		})
	}
}

type gzipState int

const (
	gzipBuffering gzipState = iota
	gzipPassthrough
	gzipCompressing
)

type gzipResponseWriter struct {
	http.ResponseWriter
	pool    *sync.Pool
	minSize int
	status  int
	state   gzipState
	buf     bytes.Buffer
	zw      *gzip.Writer
}

var (
	_ http.ResponseWriter = (*gzipResponseWriter)(nil)
	_ http.Flusher        = (*gzipResponseWriter)(nil)
	_ io.Closer           = (*gzipResponseWriter)(nil)
)

func (g *gzipResponseWriter) WriteHeader(code int) {
	if g.state == gzipBuffering {
		g.status = code
	}
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	switch g.state {
	case gzipCompressing:
		n, err := g.zw.Write(b)
		if err != nil {
			return n, fmt.Errorf("failed to write gzip: %w", err)
		}
		return n, nil
	case gzipPassthrough:
		n, err := g.ResponseWriter.Write(b)
		if err != nil {
			return n, fmt.Errorf("failed to write response: %w", err)
		}
		return n, nil
	}

	g.buf.Write(b)
	if g.buf.Len() < g.minSize {
		return len(b), nil
	}

	if err := g.decide(); err != nil {
		return 0, err
	}
	return len(b), nil
}

// decide commits the headers and drains the buffer in either mode.
func (g *gzipResponseWriter) decide() error {
	h := g.ResponseWriter.Header()
	if g.buf.Len() >= g.minSize && h.Get(xhttp.ContentEncoding) == "" && compressible(h.Get(xhttp.ContentType)) {
		g.state = gzipCompressing
		h.Set(xhttp.ContentEncoding, gzipEncoding)
		h.Del(xhttp.ContentLength)
		g.ResponseWriter.WriteHeader(g.status)

		g.zw = g.pool.Get().(*gzip.Writer)
		g.zw.Reset(g.ResponseWriter)
		if _, err := g.zw.Write(g.buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write to gzip writer: %w", err)
		}
	} else {
		g.state = gzipPassthrough
		g.ResponseWriter.WriteHeader(g.status)
		if _, err := g.ResponseWriter.Write(g.buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write buffered response: %w", err)
		}
	}
	g.buf.Reset()
	return nil
}

func (g *gzipResponseWriter) Close() error {
	if g.state == gzipBuffering {
		return g.decide()
	}
	if g.zw == nil {
		return nil
	}

	err := g.zw.Close()
	g.pool.Put(g.zw)
	g.zw = nil
	if err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}

// Flush forces a decision so streamed bytes reach the client.
func (g *gzipResponseWriter) Flush() {
	if g.state == gzipBuffering {
		if err := g.decide(); err != nil {
			return
		}
	}
	if g.zw != nil {
		_ = g.zw.Flush()
	}
	if flusher, ok := g.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (g *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return g.ResponseWriter
}

func acceptsGzip(r *http.Request) bool {
	for part := range strings.SplitSeq(r.Header.Get(xhttp.AcceptEncoding), ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), gzipEncoding) {
			continue
		}
		return strings.ReplaceAll(strings.TrimSpace(params), " ", "") != "q=0"
	}
	return false
}

// compressible reports whether a response of contentType benefits from gzip.
// An unset type is sniffed by net/http later and treated as text.
func compressible(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(mediaType)
	return strings.HasPrefix(mediaType, "text/") ||
		mediaType == "application/json" ||
		strings.HasSuffix(mediaType, "+json")
}
