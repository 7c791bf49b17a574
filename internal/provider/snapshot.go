// Package provider fetches the market_data.json snapshot over HTTP or from disk.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"kospi-dashboard/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StatusError reports a non-2xx response as "HTTP <code>: <status text>".
type StatusError struct {
	Code       int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.StatusText)
}

// Decode parses a snapshot document. Unknown enum values fail the decode.
func Decode(r io.Reader) (*domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode market data: %w", err)
	}
	return &snap, nil
}

// HTTPSource issues a single GET for the snapshot.
type HTTPSource struct {
	client *http.Client
	url    string
	tracer trace.Tracer
}

func NewHTTPSource(tracer trace.Tracer, url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
		tracer: tracer,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (*domain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "provider.fetch-snapshot")
	defer span.End()
	span.SetAttributes(attribute.String("snapshot.url", s.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch market data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, StatusText: statusText(resp)}
	}
	return Decode(resp.Body)
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// FileSource reads the snapshot from a local path.
type FileSource struct {
	path   string
	tracer trace.Tracer
}

func NewFileSource(tracer trace.Tracer, path string) *FileSource {
	return &FileSource{path: path, tracer: tracer}
}

func (s *FileSource) Fetch(ctx context.Context) (*domain.Snapshot, error) {
	_, span := s.tracer.Start(ctx, "provider.read-snapshot")
	defer span.End()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open market data: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
