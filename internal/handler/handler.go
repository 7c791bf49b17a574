package handler

import (
	"context"
	"errors"
	"net/http"

	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/dashboard"
	"kospi-dashboard/internal/loader"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// DashboardService is the read API the handlers serve.
type DashboardService interface {
	View(ctx context.Context) (*dashboard.Dashboard, error)
	Status() loader.Status
}

type Handler struct {
	tracer     trace.Tracer
	dashboards DashboardService
	theme      chart.Theme
	apiKey     string
}

func New(tracer trace.Tracer, dashboards DashboardService, theme chart.Theme, apiKey string) *Handler {
	return &Handler{
		tracer:     tracer,
		dashboards: dashboards,
		theme:      theme,
		apiKey:     apiKey,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api", APIKeyAuth(h.apiKey))
	api.GET("/status", h.Status)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/summary", h.GetSummary)
	api.GET("/decision", h.GetDecision)
	api.GET("/signals", h.GetSignals)
	api.GET("/charts/:chart", h.GetChart)
	api.GET("/render/:chart", h.RenderChart)
}

// view loads the dashboard or writes the error response. 503 while the
// snapshot is loading, 502 with the load error once it has failed.
func (h *Handler) view(c *gin.Context, ctx context.Context) (*dashboard.Dashboard, bool) {
	view, err := h.dashboards.View(ctx)
	if err == nil {
		return view, true
	}

	var loadErr *loader.LoadError
	switch {
	case errors.Is(err, loader.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot is still loading"})
	case errors.As(err, &loadErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": loadErr.Message})
	default:
		log.Error("dashboard view failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
	return nil, false
}
