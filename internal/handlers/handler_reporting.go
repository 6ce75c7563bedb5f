package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler serves Z-Reports and closing previews.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(reportingService portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes sets up the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)
	reports := rg.Group("/reports")
	{
		reports.GET("/shifts/:shiftID/zreport", h.getZReport)
		reports.GET("/shifts/:shiftID/closing-preview", h.getClosingPreview)
	}
}

// getZReport godoc
// @Summary Get the Z-Report for a closed shift
// @Description Rebuilds the audit summary from the shift's linked records; the same shift always yields the same report
// @Tags reports
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} domain.ZReport
// @Failure 400 {object} map[string]string "Shift is not closed"
// @Failure 404 {object} map[string]string "Shift not found"
// @Router /reports/shifts/{shiftID}/zreport [get]
func (h *reportingHandler) getZReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	report, err := h.reportingService.ZReport(c.Request.Context(), shiftID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to build Z-Report", slog.String("error", err.Error()), slog.String("shift_id", shiftID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// getClosingPreview godoc
// @Summary Preview reconciliation for a shift in closing
// @Description Builds the same summary as the Z-Report against a provisional counted amount so the operator can review the variance before confirming
// @Tags reports
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param actualCash query string true "Provisional counted cash, e.g. 10250.50"
// @Success 200 {object} domain.ZReport
// @Failure 400 {object} map[string]string "Invalid counted amount"
// @Failure 409 {object} map[string]string "Shift is not in closing"
// @Router /reports/shifts/{shiftID}/closing-preview [get]
func (h *reportingHandler) getClosingPreview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	actualCash, err := decimal.NewFromString(c.Query("actualCash"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actualCash must be a decimal amount"})
		return
	}

	report, err := h.reportingService.ClosingPreview(c.Request.Context(), shiftID, actualCash)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrShiftNotClosing):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to build closing preview", slog.String("error", err.Error()), slog.String("shift_id", shiftID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build closing preview"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}
