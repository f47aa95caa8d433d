package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"infinityqr-go/internal/service"
	"infinityqr-go/response"
)

// DashboardHandler serves the session-gated overview: aggregate counters,
// the mapping table and per-code daily stats.
type DashboardHandler struct {
	dashboard *service.DashboardService
	redirects *service.RedirectService
	stats     *service.StatsService
}

func NewDashboardHandler(dashboard *service.DashboardService, redirects *service.RedirectService, stats *service.StatsService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, redirects: redirects, stats: stats}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.dashboard.Summary(c.Request.Context()), "success"))
}

func (h *DashboardHandler) ListMappings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	result, err := h.redirects.ListMappings(c.Request.Context(), page, size)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(result, "success"))
}

func (h *DashboardHandler) StatsByCode(c *gin.Context) {
	stats, err := h.stats.StatsByShortCode(c.Param("code"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(stats, "success"))
}
