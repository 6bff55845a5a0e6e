package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/analytics"
)

// DashboardStats handles GET /api/dashboard/stats.
func (h *Handler) DashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	properties, err := h.Properties.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.Maintenance.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics.ComputeDashboardStats(properties, items, time.Now().UTC()))
}

// DashboardTrends handles GET /api/dashboard/trends: the trailing
// six-month maintenance series.
func (h *Handler) DashboardTrends(c *gin.Context) {
	items, err := h.Maintenance.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics.MonthlyTrend(items, time.Now().UTC()))
}

// DashboardDistribution handles GET /api/dashboard/distribution: property
// type and maintenance type breakdowns for the dashboard charts.
func (h *Handler) DashboardDistribution(c *gin.Context) {
	ctx := c.Request.Context()

	properties, err := h.Properties.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.Maintenance.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"properties":        analytics.PropertyDistribution(properties),
		"maintenanceByType": analytics.MaintenanceByType(items),
	})
}
