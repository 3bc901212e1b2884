package handlers

import (
	"net/http"

	"furytails/services/dashboard"
	"furytails/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the console's live counters.
type DashboardHandler struct {
	Svc dashboard.DashboardService
}

// StatsHandler handles GET /dashboard/stats.
func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute dashboard stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
