// Package loader fetches the snapshot once per session and exposes the
// loading, success and failure states.
package loader

import (
	"context"
	"errors"
	"sync"
	"time"

	"kospi-dashboard/internal/domain"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// ErrNotLoaded is returned while the snapshot request is in flight.
var ErrNotLoaded = errors.New("snapshot is still loading")

// LoadError is the terminal failure. Its message is shown to the user as is.
type LoadError struct {
	Message string
}

func (e *LoadError) Error() string { return e.Message }

// Source fetches and decodes the snapshot document.
type Source interface {
	Fetch(ctx context.Context) (*domain.Snapshot, error)
}

// Recorder observes the outcome of the load.
type Recorder interface {
	ObserveLoad(result string, elapsed time.Duration)
}

type Status struct {
	State State  `json:"status"`
	Error string `json:"error,omitempty"`
}

// Loader moves from loading to exactly one of success or failure and never
// leaves that state. There is no retry.
type Loader struct {
	tracer   trace.Tracer
	source   Source
	recorder Recorder

	once sync.Once
	done chan struct{}

	mu       sync.RWMutex
	state    State
	snapshot *domain.Snapshot
	message  string
}

func New(tracer trace.Tracer, source Source, recorder Recorder) *Loader {
	return &Loader{
		tracer:   tracer,
		source:   source,
		recorder: recorder,
		done:     make(chan struct{}),
		state:    StateLoading,
	}
}

// Start runs Load in the background.
func (l *Loader) Start(ctx context.Context) {
	go l.Load(ctx)
}

// Load issues the single request and records the result. Later calls do not
// fetch again; they wait for and return the first outcome.
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() { l.load(ctx) })
	<-l.done
	_, err := l.Snapshot()
	return err
}

func (l *Loader) load(ctx context.Context) {
	defer close(l.done)

	ctx, span := l.tracer.Start(ctx, "loader.load")
	defer span.End()

	started := time.Now()
	snap, err := l.source.Fetch(ctx)
	if err == nil && snap == nil {
		err = errors.New("empty snapshot document")
	}
	// Only the session's own context ending counts as a cancellation; a
	// transport timeout keeps its message.
	if ctx.Err() != nil {
		snap, err = nil, errors.New("snapshot load cancelled")
	}

	l.mu.Lock()
	if err != nil {
		l.state, l.message = StateFailure, err.Error()
	} else {
		l.state, l.snapshot = StateSuccess, snap
	}
	l.mu.Unlock()

	result := string(StateSuccess)
	if err != nil {
		result = string(StateFailure)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("snapshot load failed", "err", err)
	} else {
		span.SetAttributes(attribute.Int("snapshot.days", len(snap.OHLCV)))
		log.Info("snapshot loaded", "days", len(snap.OHLCV), "signals", len(snap.Signals), "lastUpdated", snap.Metadata.LastUpdated)
	}
	if l.recorder != nil {
		l.recorder.ObserveLoad(result, time.Since(started))
	}
}

// Done is closed once the loader reaches a terminal state.
func (l *Loader) Done() <-chan struct{} { return l.done }

func (l *Loader) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Status{State: l.state, Error: l.message}
}

// Snapshot returns the loaded document, ErrNotLoaded while loading, or the
// terminal *LoadError.
func (l *Loader) Snapshot() (*domain.Snapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	switch l.state {
	case StateSuccess:
		return l.snapshot, nil
	case StateFailure:
		return nil, &LoadError{Message: l.message}
	}
	return nil, ErrNotLoaded
}
