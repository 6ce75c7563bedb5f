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

// checkoutHandler handles HTTP requests for totals previews, sale
// finalization and returns.
type checkoutHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

func newCheckoutHandler(checkoutService portssvc.CheckoutSvcFacade) *checkoutHandler {
	return &checkoutHandler{checkoutService: checkoutService}
}

// registerCheckoutRoutes sets up the checkout routes.
func registerCheckoutRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade) {
	h := newCheckoutHandler(checkoutService)
	checkout := rg.Group("/checkout")
	{
		checkout.POST("/totals", h.previewTotals)
		checkout.POST("/sales", h.finalizeSale)
		checkout.POST("/returns", h.returnSale)
		checkout.GET("/sales/:saleID", h.getSale)
	}
}

// previewTotals godoc
// @Summary Compute a totals preview for a cart
// @Description Computes the discount and VAT breakdown for the cart as it stands, without side effects
// @Tags checkout
// @Accept json
// @Produce json
// @Param cart body dto.ComputeTotalsRequest true "Cart lines and discounts"
// @Success 200 {object} domain.TotalsBreakdown
// @Failure 400 {object} map[string]string "Invalid cart"
// @Router /checkout/totals [post]
func (h *checkoutHandler) previewTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ComputeTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	breakdown, err := h.checkoutService.PreviewTotals(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to compute totals preview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// finalizeSale godoc
// @Summary Finalize a sale
// @Description Validates tenders and loyalty redemption, persists the sale and attributes it to the cashier's active shift atomically
// @Tags checkout
// @Accept json
// @Produce json
// @Param sale body dto.FinalizeSaleRequest true "Cart, tenders and loyalty redemption"
// @Success 201 {object} domain.Sale
// @Failure 400 {object} map[string]string "Invalid request or tender"
// @Failure 402 {object} map[string]string "Insufficient payment"
// @Failure 409 {object} map[string]string "No active shift or concurrent shift update"
// @Router /checkout/sales [post]
func (h *checkoutHandler) finalizeSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sale, err := h.checkoutService.FinalizeSale(c.Request.Context(), req, cashierID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientPayment):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRedemptionExceedsBalance),
			errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoActiveShift),
			errors.Is(err, apperrors.ErrShiftNotActive),
			errors.Is(err, apperrors.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to finalize sale", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize sale"})
		}
		return
	}

	logger.Info("Sale finalized", slog.String("sale_id", sale.SaleID), slog.String("shift_id", sale.ShiftID))
	c.JSON(http.StatusCreated, sale)
}

// returnSale godoc
// @Summary Record a return against a prior sale
// @Description Creates a new Return sale with the original breakdown negated; the original sale is never mutated
// @Tags checkout
// @Accept json
// @Produce json
// @Param return body dto.ReturnSaleRequest true "Original sale reference"
// @Success 201 {object} domain.Sale
// @Failure 400 {object} map[string]string "Original is not a plain sale"
// @Failure 404 {object} map[string]string "Original sale not found"
// @Failure 409 {object} map[string]string "No active shift"
// @Router /checkout/returns [post]
func (h *checkoutHandler) returnSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReturnSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	refund, err := h.checkoutService.ReturnSale(c.Request.Context(), req, cashierID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Original sale not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoActiveShift),
			errors.Is(err, apperrors.ErrShiftNotActive),
			errors.Is(err, apperrors.ErrVersionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record return", slog.String("error", err.Error()), slog.String("original_sale_id", req.OriginalSaleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record return"})
		}
		return
	}

	logger.Info("Return recorded", slog.String("sale_id", refund.SaleID), slog.String("original_sale_id", req.OriginalSaleID))
	c.JSON(http.StatusCreated, refund)
}

// getSale godoc
// @Summary Get a sale by ID
// @Tags checkout
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 404 {object} map[string]string "Sale not found"
// @Router /checkout/sales/{saleID} [get]
func (h *checkoutHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("saleID")

	sale, err := h.checkoutService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		logger.Error("Failed to get sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		return
	}

	c.JSON(http.StatusOK, sale)
}
