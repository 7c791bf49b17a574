package provider

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestHTTPSource(fn roundTripFunc) *HTTPSource {
	src := NewHTTPSource(trace.NewNoopTracerProvider().Tracer("test"), "http://example/data/market_data.json", time.Second)
	src.client = &http.Client{Transport: fn}
	return src
}

func TestHTTPSourceFetch(t *testing.T) {
	t.Parallel()

	src := newTestHTTPSource(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/data/market_data.json" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		body := `{"metadata":{"totalDays":1},"ohlcv":[{"date":"2024-01-02","close":2500}]}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	snap, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Metadata.TotalDays != 1 || snap.OHLCV[0].Close.Float64 != 2500 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestHTTPSourceStatusError(t *testing.T) {
	t.Parallel()

	src := newTestHTTPSource(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found",
			Body:       io.NopCloser(strings.NewReader("missing")),
			Header:     make(http.Header),
		}, nil
	})

	_, err := src.Fetch(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if err.Error() != "HTTP 404: Not Found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestHTTPSourceStatusTextFallback(t *testing.T) {
	t.Parallel()

	src := newTestHTTPSource(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     make(http.Header),
		}, nil
	})

	_, err := src.Fetch(context.Background())
	if err == nil || err.Error() != "HTTP 503: Service Unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPSourceParseError(t *testing.T) {
	t.Parallel()

	src := newTestHTTPSource(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"signals":[{"type":"HOLD"}]}`)),
			Header:     make(http.Header),
		}, nil
	})

	_, err := src.Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode market data") || !strings.Contains(err.Error(), "HOLD") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "market_data.json")
	if err := os.WriteFile(path, []byte(`{"range52w":{"high":2800,"low":2400,"current":2600}}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src := NewFileSource(trace.NewNoopTracerProvider().Tracer("test"), path)
	snap, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Range52W == nil || snap.Range52W.High.Float64 != 2800 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	missing := NewFileSource(trace.NewNoopTracerProvider().Tracer("test"), filepath.Join(dir, "nope.json"))
	if _, err := missing.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
