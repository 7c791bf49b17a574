package handler

import (
	"net/http"

	"kospi-dashboard/internal/dashboard"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

const defaultSignalLimit = 20

type signalsQuery struct {
	Order string `form:"order" binding:"omitempty,oneof=asc desc"`
	Limit *int   `form:"limit" binding:"omitempty,min=0,max=500"`
}

// GetDashboard godoc
// @Summary      Full dashboard view model
// @Description  Returns the header, metric cards, decision panel, every chart and the signal table
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboard.Dashboard
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-dashboard")
	defer span.End()

	view, ok := h.view(c, ctx)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetSummary godoc
// @Summary      Market summary
// @Description  Returns the header strip and the backtest metric cards
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboard.Summary
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-summary")
	defer span.End()

	view, ok := h.view(c, ctx)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, view.Summary())
}

// GetDecision godoc
// @Summary      Decision panel
// @Description  Returns the normalized decision state with its indicator, level and tree rows
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  summary.DecisionPanel
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/decision [get]
func (h *Handler) GetDecision(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-decision")
	defer span.End()

	view, ok := h.view(c, ctx)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, view.Decision)
}

// GetSignals godoc
// @Summary      Recent trading signals
// @Description  Returns signal rows, newest first by default
// @Tags         dashboard
// @Produce      json
// @Param        order  query  string  false  "Sort order (asc, desc)"  default(desc)
// @Param        limit  query  int     false  "Maximum rows, 0 for all (max 500)"  default(20)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/signals [get]
func (h *Handler) GetSignals(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-signals")
	defer span.End()

	var q signalsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Order == "" {
		q.Order = "desc"
	}
	limit := defaultSignalLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	span.SetAttributes(attribute.String("order", q.Order), attribute.Int("limit", limit))

	view, ok := h.view(c, ctx)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":   q.Order,
		"total":   len(view.Signals),
		"signals": view.RecentSignals(q.Order, limit),
	})
}

// GetChart godoc
// @Summary      Chart series
// @Description  Returns the aligned series and annotations of one chart
// @Tags         charts
// @Produce      json
// @Param        chart  path  string  true  "Chart name (main, rsi, macd, volume, comparison, correlation, flows)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/charts/{chart} [get]
func (h *Handler) GetChart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-chart")
	defer span.End()

	name := c.Param("chart")
	span.SetAttributes(attribute.String("chart", name))

	view, ok := h.view(c, ctx)
	if !ok {
		return
	}
	data, found := view.Chart(name)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "unknown chart: " + name,
			"charts": dashboard.ChartNames,
		})
		return
	}
	c.JSON(http.StatusOK, data)
}
