package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/dukapoint/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shiftHandler handles HTTP requests for the shift lifecycle.
type shiftHandler struct {
	shiftService portssvc.ShiftSvcFacade
}

func newShiftHandler(shiftService portssvc.ShiftSvcFacade) *shiftHandler {
	return &shiftHandler{shiftService: shiftService}
}

// registerShiftRoutes sets up the shift lifecycle routes.
func registerShiftRoutes(rg *gin.RouterGroup, shiftService portssvc.ShiftSvcFacade) {
	h := newShiftHandler(shiftService)
	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.startShift)
		shifts.GET("", h.listShifts)
		shifts.GET("/active", h.getActiveShift)
		shifts.GET("/:shiftID", h.getShift)
		shifts.POST("/expenses", h.recordExpense)
		shifts.POST("/supplier-payments", h.recordSupplierPayment)
		shifts.POST("/deposits", h.recordBankDeposit)
		shifts.POST("/close/request", h.requestClose)
		shifts.POST("/close/cancel", h.cancelClose)
		shifts.POST("/close/confirm", h.confirmClose)
	}
}

// mapShiftError translates shift lifecycle errors to HTTP responses.
func mapShiftError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidFloat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoActiveShift), errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrShiftNotActive),
		errors.Is(err, apperrors.ErrShiftNotClosing),
		errors.Is(err, apperrors.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Shift operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// startShift godoc
// @Summary Open a new shift
// @Description Opens a shift with the counted starting float; a cashier holds at most one non-closed shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body dto.StartShiftRequest true "Starting float"
// @Success 201 {object} domain.Shift
// @Failure 400 {object} map[string]string "Negative starting float"
// @Failure 409 {object} map[string]string "Cashier already has an open shift"
// @Router /shifts [post]
func (h *shiftHandler) startShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.StartShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.StartShift(c.Request.Context(), userID, req)
	if err != nil {
		mapShiftError(c, logger, err, "start shift")
		return
	}

	logger.Info("Shift started", slog.String("shift_id", shift.ShiftID))
	c.JSON(http.StatusCreated, shift)
}

// listShifts godoc
// @Summary List the cashier's shifts
// @Tags shifts
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} domain.Shift
// @Router /shifts [get]
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shifts, err := h.shiftService.ListShifts(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list shifts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// getActiveShift godoc
// @Summary Get the cashier's current shift
// @Tags shifts
// @Produce json
// @Success 200 {object} domain.Shift
// @Failure 404 {object} map[string]string "No active shift"
// @Router /shifts/active [get]
func (h *shiftHandler) getActiveShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.GetActiveShift(c.Request.Context(), userID)
	if err != nil {
		mapShiftError(c, logger, err, "get active shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}

// getShift godoc
// @Summary Get a shift by ID
// @Tags shifts
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} domain.Shift
// @Failure 404 {object} map[string]string "Shift not found"
// @Router /shifts/{shiftID} [get]
func (h *shiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	shift, err := h.shiftService.GetShiftByID(c.Request.Context(), shiftID)
	if err != nil {
		mapShiftError(c, logger, err, "get shift")
		return
	}

	c.JSON(http.StatusOK, shift)
}

// recordExpense godoc
// @Summary Record a cash-out against the active shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param expense body dto.RecordExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} map[string]string "Non-positive amount"
// @Failure 404 {object} map[string]string "No active shift"
// @Failure 409 {object} map[string]string "Shift is not active"
// @Router /shifts/expenses [post]
func (h *shiftHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expense, err := h.shiftService.RecordExpense(c.Request.Context(), userID, req)
	if err != nil {
		mapShiftError(c, logger, err, "record expense")
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, expense)
}

// recordSupplierPayment godoc
// @Summary Record a supplier payout against the active shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param payment body dto.RecordSupplierPaymentRequest true "Supplier payment details"
// @Success 201 {object} domain.SupplierPayment
// @Failure 400 {object} map[string]string "Non-positive amount"
// @Failure 404 {object} map[string]string "No active shift"
// @Failure 409 {object} map[string]string "Shift is not active"
// @Router /shifts/supplier-payments [post]
func (h *shiftHandler) recordSupplierPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordSupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.shiftService.RecordSupplierPayment(c.Request.Context(), userID, req)
	if err != nil {
		mapShiftError(c, logger, err, "record supplier payment")
		return
	}

	logger.Info("Supplier payment recorded", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, payment)
}

// recordBankDeposit godoc
// @Summary Record cash banked from the drawer
// @Tags shifts
// @Accept json
// @Produce json
// @Param deposit body dto.RecordBankDepositRequest true "Deposit details"
// @Success 201 {object} domain.BankDeposit
// @Failure 400 {object} map[string]string "Non-positive amount"
// @Failure 404 {object} map[string]string "No active shift"
// @Failure 409 {object} map[string]string "Shift is not active"
// @Router /shifts/deposits [post]
func (h *shiftHandler) recordBankDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordBankDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	deposit, err := h.shiftService.RecordBankDeposit(c.Request.Context(), userID, req)
	if err != nil {
		mapShiftError(c, logger, err, "record bank deposit")
		return
	}

	logger.Info("Bank deposit recorded", slog.String("deposit_id", deposit.DepositID))
	c.JSON(http.StatusCreated, deposit)
}

// requestClose godoc
// @Summary Freeze the active shift for reconciliation
// @Tags shifts
// @Produce json
// @Success 200 {object} domain.Shift
// @Failure 404 {object} map[string]string "No active shift"
// @Failure 409 {object} map[string]string "Shift is not active"
// @Router /shifts/close/request [post]
func (h *shiftHandler) requestClose(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.RequestClose(c.Request.Context(), userID)
	if err != nil {
		mapShiftError(c, logger, err, "request close")
		return
	}

	logger.Info("Shift close requested", slog.String("shift_id", shift.ShiftID))
	c.JSON(http.StatusOK, shift)
}

// cancelClose godoc
// @Summary Abort reconciliation and resume selling
// @Tags shifts
// @Produce json
// @Success 200 {object} domain.Shift
// @Failure 409 {object} map[string]string "Shift is not in closing"
// @Router /shifts/close/cancel [post]
func (h *shiftHandler) cancelClose(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.CancelClose(c.Request.Context(), userID)
	if err != nil {
		mapShiftError(c, logger, err, "cancel close")
		return
	}

	logger.Info("Shift close cancelled", slog.String("shift_id", shift.ShiftID))
	c.JSON(http.StatusOK, shift)
}

// confirmClose godoc
// @Summary Reconcile and close the shift
// @Description Reconciles the drawer against the counted cash and finalizes the shift; the close is terminal
// @Tags shifts
// @Accept json
// @Produce json
// @Param close body dto.ConfirmCloseRequest true "Counted cash and notes"
// @Success 200 {object} domain.Shift
// @Failure 400 {object} map[string]string "Negative counted cash"
// @Failure 409 {object} map[string]string "Shift is not in closing"
// @Router /shifts/close/confirm [post]
func (h *shiftHandler) confirmClose(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConfirmCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.ConfirmClose(c.Request.Context(), userID, req)
	if err != nil {
		mapShiftError(c, logger, err, "confirm close")
		return
	}

	logger.Info("Shift closed",
		slog.String("shift_id", shift.ShiftID),
		slog.String("variance", shift.Variance.String()),
	)
	c.JSON(http.StatusOK, shift)
}
