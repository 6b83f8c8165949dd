package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reportingsvc "github.com/cyclehub/inventoryman/internal/service/reporting"
)

// ReportHandler handles the sales and stock report pages.
type ReportHandler struct {
	svc    *reportingsvc.Service
	logger *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc *reportingsvc.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Summary returns the landing-page collection counts.
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.svc.HomeSummary(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type salesFilterRequest struct {
	TimeType  string `form:"time_type" json:"timeType" binding:"required"`
	Dimension string `form:"filter_type" json:"dimension" binding:"required"`
	Month     string `form:"selected_month" json:"month"`
	Year      string `form:"selected_year" json:"year" binding:"required"`
}

// SalesFilter runs a monthly or yearly sales report.
func (h *ReportHandler) SalesFilter(c *gin.Context) {
	var req salesFilterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time_type, filter_type and selected_year are required"})
		return
	}

	switch req.TimeType {
	case "month":
		report, err := h.svc.MonthlySales(c.Request.Context(), req.Month, req.Year, req.Dimension)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, report)
	case "year":
		report, err := h.svc.YearlySales(c.Request.Context(), req.Year, req.Dimension)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, report)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "time_type must be month or year"})
	}
}

type stockFilterRequest struct {
	Dimension string `form:"filter_type" json:"dimension" binding:"required"`
}

// StockFilter rolls up current stock by brand or category.
func (h *ReportHandler) StockFilter(c *gin.Context) {
	var req stockFilterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter_type is required"})
		return
	}

	rows, totalItems, err := h.svc.StockSummary(c.Request.Context(), req.Dimension)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":       rows,
		"totalItems": totalItems,
		"dimension":  req.Dimension,
	})
}
