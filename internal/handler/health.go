package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Health check
// @Description  Liveness probe, independent of the snapshot load
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Status godoc
// @Summary      Snapshot load status
// @Description  Reports whether the market snapshot is loading, loaded, or failed
// @Tags         health
// @Produce      json
// @Success      200  {object}  loader.Status
// @Router       /api/status [get]
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboards.Status())
}
