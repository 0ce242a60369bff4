package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/phetoho/backend/internal/application/report"
)

// ReportHandler handles business reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes mounts admin reporting routes on the given group
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/admin/reports")
	{
		reports.GET("", h.FullReport)
		reports.POST("/insights", h.Insights)
	}
}

// FullReport godoc
// @Summary      Business report
// @Description  Returns sales, customer, inventory, and chat metrics
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response{data=reportapp.FullReportResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/reports [get]
func (h *ReportHandler) FullReport(c *gin.Context) {
	report, err := h.reportService.FullReport(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// Insights godoc
// @Summary      Generate business insights
// @Description  Generates assistant-written insights from current metrics.
// @Description  Degrades to an empty list when the assistant is unavailable.
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.Response{data=reportapp.InsightsResponse}
// @Router       /admin/reports/insights [post]
func (h *ReportHandler) Insights(c *gin.Context) {
	h.Success(c, h.reportService.AIInsights(c.Request.Context()))
}
