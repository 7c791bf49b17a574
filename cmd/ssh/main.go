package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"kospi-dashboard/internal/cache"
	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/config"
	"kospi-dashboard/internal/loader"
	"kospi-dashboard/internal/provider"
	"kospi-dashboard/internal/service"
	"kospi-dashboard/internal/tui"
	"kospi-dashboard/pkg/tracing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/joho/godotenv"
	gossh "golang.org/x/crypto/ssh"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "kospi-dashboard-ssh"

var (
	loadEnvFunc           = godotenv.Load
	loadConfigFunc        = config.Load
	initRedisFunc         = cache.InitRedis
	initTracerFunc        = tracing.InitTracer
	newSnapshotSourceFunc = func(tracer trace.Tracer, cfg *config.Config) loader.Source {
		if cfg.SnapshotURL != "" {
			return provider.NewHTTPSource(tracer, cfg.SnapshotURL, cfg.SnapshotTimeout())
		}
		return provider.NewFileSource(tracer, cfg.SnapshotPath)
	}
	startLoaderFunc   = func(l *loader.Loader, ctx context.Context) { l.Start(ctx) }
	newWishServerFunc = wish.NewServer
	setupSignalNotify = ossignal.Notify
	waitForSignalFunc = func(quit <-chan os.Signal) { <-quit }
)

func main() {
	if err := loadEnvFunc(); err != nil {
		log.Debug("no .env file loaded", "err", err)
	}
	cfg := loadConfigFunc()
	log.SetLevel(cfg.Level())
	if err := cfg.Validate(); err != nil {
		log.Fatal("configuration error", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx, serviceName)
	if err != nil {
		log.Fatal("failed to initialize tracer", "err", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("error shutting down tracer provider", "err", err)
		}
	}()

	var viewCache service.RedisClient
	redisClient, err := initRedisFunc(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, view cache disabled", "err", err)
	}
	if redisClient != nil {
		viewCache = redisClient
		defer redisClient.Close()
	}

	snapshots := loader.New(tracer, newSnapshotSourceFunc(tracer, cfg), nil)
	startLoaderFunc(snapshots, ctx)

	theme := chart.DefaultTheme()
	dashboards := service.NewDashboardService(tracer, snapshots, viewCache, theme, nil, cfg.CacheTTL())

	// Build Wish SSH server
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.SSHPort)
	auth := wish.WithPublicKeyAuth(acceptPublicKey)
	if cfg.SSHAuthorizedKeys != "" {
		auth = wish.WithAuthorizedKeys(cfg.SSHAuthorizedKeys)
	}

	srv, err := newWishServerFunc(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		auth,
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler(dashboards, theme)),
			logging.Middleware(),
		),
	)
	if err != nil {
		log.Fatal("failed to create SSH server", "err", err)
	}

	if srv != nil {
		go func() {
			log.Info("SSH server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
				log.Error("SSH server stopped", "err", err)
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info("Shutting down SSH server...")

	cancel()

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("SSH server shutdown error", "err", err)
		}
	}

	log.Info("SSH server exited")
}

// acceptPublicKey lets any key in and logs its fingerprint.
func acceptPublicKey(_ ssh.Context, key ssh.PublicKey) bool {
	log.Info("SSH auth accepted", "fingerprint", gossh.FingerprintSHA256(key))
	return true
}

func teaHandler(source tui.Source, theme chart.Theme) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		model := tui.New(source, theme)
		pty, _, _ := s.Pty()
		model.SetSize(pty.Window.Width, pty.Window.Height)
		return model, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
