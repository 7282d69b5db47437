package handlers

import (
	"errors"
	"net/http"

	"github.com/Marco-XM/arixyDashboardBack/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles issue report requests
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler instance
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportRequest represents the public report form body
type ReportRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	MobileNumber1 string `json:"mobile_number1"`
	MobileNumber2 string `json:"mobile_number2"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
}

// CreateReport stores a report submitted from the public website
// POST /api/reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	report, err := h.reportService.CreateReport(services.CreateReportInput{
		Name:          req.Name,
		Email:         req.Email,
		MobileNumber1: req.MobileNumber1,
		MobileNumber2: req.MobileNumber2,
		Subject:       req.Subject,
		Message:       req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidReportData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Report submitted successfully",
		"report":  report,
	})
}

// GetReports returns all reports, newest first
// GET /api/reports
func (h *ReportHandler) GetReports(c *gin.Context) {
	reports, err := h.reportService.GetReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// DeleteReport removes a report
// DELETE /api/reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reportService.DeleteReport(id); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// CountReports returns the number of reports
// GET /api/reports/count
func (h *ReportHandler) CountReports(c *gin.Context) {
	count, err := h.reportService.CountReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
