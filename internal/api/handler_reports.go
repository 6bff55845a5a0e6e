package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blockfix-backend/internal/model"
	"blockfix-backend/internal/notification"
)

type generateReportRequest struct {
	Category model.ReportCategory `json:"category" binding:"required"`
}

// ListReports handles GET /api/reports.
func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.Reports.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if reports == nil {
		reports = []model.Report{}
	}
	c.JSON(http.StatusOK, reports)
}

// GenerateReport handles POST /api/reports: computes the category
// aggregate and freezes it into a new report.
func (h *Handler) GenerateReport(c *gin.Context) {
	var req generateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.ReportGen.Generate(c.Request.Context(), req.Category)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notify(notification.EventReportGenerated,
		fmt.Sprintf("Report generated: %s", report.Title))
	c.JSON(http.StatusCreated, report)
}

// DeleteReport handles DELETE /api/reports/:id.
func (h *Handler) DeleteReport(c *gin.Context) {
	if err := h.Reports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadReport handles GET /api/reports/:id/download, serving the frozen
// snapshot data as a JSON attachment.
func (h *Handler) DownloadReport(c *gin.Context) {
	report, err := h.Reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	filename := strings.ToLower(strings.ReplaceAll(report.Title, " ", "-")) + ".json"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, report.Data)
}
