package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/dashboard"
	"kospi-dashboard/internal/domain"
	"kospi-dashboard/internal/loader"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultCacheTTL = 5 * time.Minute

// SnapshotLoader is the read side of the loader.
type SnapshotLoader interface {
	Snapshot() (*domain.Snapshot, error)
	Status() loader.Status
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Recorder observes view model builds and cache lookups.
type Recorder interface {
	ObserveBuild(days int, elapsed time.Duration)
	CacheRequest(result string)
}

// DashboardService turns the loaded snapshot into the dashboard view model,
// caching the result in Redis keyed by the snapshot's lastUpdated stamp.
type DashboardService struct {
	tracer   trace.Tracer
	loader   SnapshotLoader
	redis    RedisClient
	theme    chart.Theme
	recorder Recorder
	cacheTTL time.Duration
}

func NewDashboardService(
	tracer trace.Tracer,
	snapshots SnapshotLoader,
	redisClient RedisClient,
	theme chart.Theme,
	recorder Recorder,
	cacheTTL time.Duration,
) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &DashboardService{
		tracer:   tracer,
		loader:   snapshots,
		redis:    redisClient,
		theme:    theme,
		recorder: recorder,
		cacheTTL: cacheTTL,
	}
}

// Status reports the loader state.
func (s *DashboardService) Status() loader.Status {
	return s.loader.Status()
}

// View returns the dashboard view model. It returns loader.ErrNotLoaded while
// the snapshot is loading and *loader.LoadError after a failed load.
func (s *DashboardService) View(ctx context.Context) (*dashboard.Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard-service.view")
	defer span.End()

	snap, err := s.loader.Snapshot()
	if err != nil {
		return nil, err
	}

	key := cacheKey(snap)
	span.SetAttributes(attribute.String("cache.key", key))
	if s.redis != nil {
		cached, err := s.getViewCache(ctx, key)
		if err != nil {
			log.Warn("redis cache read error", "err", err)
			s.countCache("error")
		}
		if cached != nil {
			s.countCache("hit")
			return cached, nil
		}
		if err == nil {
			s.countCache("miss")
		}
	}

	started := time.Now()
	view := dashboard.Build(snap, s.theme)
	if s.recorder != nil {
		s.recorder.ObserveBuild(len(snap.OHLCV), time.Since(started))
	}

	if s.redis != nil {
		if err := s.setViewCache(ctx, key, view); err != nil {
			log.Warn("redis cache write error", "err", err)
		}
	}
	return view, nil
}

func (s *DashboardService) countCache(result string) {
	if s.recorder != nil {
		s.recorder.CacheRequest(result)
	}
}

func cacheKey(snap *domain.Snapshot) string {
	stamp := snap.Metadata.LastUpdated
	if stamp == "" {
		stamp = fmt.Sprintf("%s_%d", snap.Metadata.DataEnd, len(snap.OHLCV))
	}
	return "dashboard:view:" + stamp
}

func (s *DashboardService) getViewCache(ctx context.Context, key string) (*dashboard.Dashboard, error) {
	val, err := s.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var view dashboard.Dashboard
	if err := json.Unmarshal([]byte(val), &view); err != nil {
		return nil, fmt.Errorf("decode cached view: %w", err)
	}
	return &view, nil
}

func (s *DashboardService) setViewCache(ctx context.Context, key string, view *dashboard.Dashboard) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, key, data, s.cacheTTL).Err()
}
