package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kospi-dashboard/internal/bot"
	"kospi-dashboard/internal/cache"
	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/config"
	"kospi-dashboard/internal/handler"
	"kospi-dashboard/internal/loader"
	"kospi-dashboard/internal/metrics"
	"kospi-dashboard/internal/provider"
	"kospi-dashboard/internal/service"
	"kospi-dashboard/pkg/tracing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "kospi-dashboard/docs"
)

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
	startLoaderFunc        = func(l *loader.Loader, ctx context.Context) { l.Start(ctx) }
	startTelegramBotFunc   = func(token string, viewer bot.Viewer) error { return bot.StartTelegramBot(token, viewer) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           KOSPI Dashboard API
// @version         1.0
// @description     Render-ready KOSPI market dashboard: aligned chart series, summary metrics and the decision panel.

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
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
	tp, tracer, err := initTracerFunc(ctx, tracing.DefaultServiceName)
	if err != nil {
		log.Fatal("failed to initialize tracer", "err", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("error shutting down tracer provider", "err", err)
		}
	}()

	// Redis is optional; without it every request rebuilds the view model.
	var viewCache service.RedisClient
	redisClient, err := initRedisFunc(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, view cache disabled", "err", err)
	}
	if redisClient != nil {
		viewCache = redisClient
		defer redisClient.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(reg)

	// Load the snapshot once in the background
	snapshots := loader.New(tracer, newSnapshotSourceFunc(tracer, cfg), recorder)
	startLoaderFunc(snapshots, ctx)

	theme := chart.DefaultTheme()
	dashboards := service.NewDashboardService(tracer, snapshots, viewCache, theme, recorder, cfg.CacheTTL())

	if err := startTelegramBotFunc(cfg.TelegramBotToken, dashboards); err != nil {
		log.Error("telegram bot disabled", "err", err)
	}

	h := newHandlerFunc(tracer, dashboards, theme, cfg.APIKey)

	r := newRouterFunc()
	r.Use(otelgin.Middleware(tracing.DefaultServiceName))

	h.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", "err", err)
	}

	log.Info("Server exiting")
}
