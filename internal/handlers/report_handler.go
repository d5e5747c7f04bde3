package handlers

import (
	"net/http"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ExportWeeklySummary handles POST /reports/weekly-summary
func (h *ReportHandler) ExportWeeklySummary(c *gin.Context) {
	var req struct {
		WeekStart string `json:"weekStart" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekStart, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week start format (YYYY-MM-DD)"})
		return
	}

	rows, err := h.reportService.ExportWeeklySummary(c, weekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
