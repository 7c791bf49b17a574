package handler

import (
	"bytes"
	"errors"
	"net/http"

	"kospi-dashboard/internal/render"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type renderQuery struct {
	Width  int `form:"width" binding:"omitempty,min=200,max=2400"`
	Height int `form:"height" binding:"omitempty,min=150,max=1600"`
}

// RenderChart godoc
// @Summary      Chart image
// @Description  Renders one chart as a PNG image
// @Tags         charts
// @Produce      png
// @Param        chart   path   string  true   "Chart name (main, rsi, volume, comparison)"
// @Param        width   query  int     false  "Image width in pixels"   default(1200)
// @Param        height  query  int     false  "Image height in pixels"  default(500)
// @Success      200  {file}    binary
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/render/{chart} [get]
func (h *Handler) RenderChart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.render-chart")
	defer span.End()

	name := c.Param("chart")
	span.SetAttributes(attribute.String("chart", name))

	var q renderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, ok := h.view(c, ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	err := render.PNG(&buf, view, name, h.theme, render.Options{Width: q.Width, Height: q.Height})
	switch {
	case errors.Is(err, render.ErrUnknownChart):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown chart: " + name, "charts": render.Names})
		return
	case errors.Is(err, render.ErrNoData):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
