package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/dukapoint/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler fronts the mobile money gateway.
type paymentHandler struct {
	gateway portssvc.PaymentGatewaySvc
}

func newPaymentHandler(gateway portssvc.PaymentGatewaySvc) *paymentHandler {
	return &paymentHandler{gateway: gateway}
}

// registerPaymentRoutes sets up the mobile payment routes.
func registerPaymentRoutes(rg *gin.RouterGroup, gateway portssvc.PaymentGatewaySvc) {
	h := newPaymentHandler(gateway)
	payments := rg.Group("/payments")
	{
		payments.POST("/mobile", h.initiateMobilePayment)
	}
}

// initiateMobilePayment godoc
// @Summary Initiate a mobile money charge
// @Description Sends an STK push to the customer's phone; the confirmation reference goes on the sale's tender entry
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.MobilePaymentRequest true "Phone and amount"
// @Success 200 {object} dto.MobilePaymentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 502 {object} map[string]string "Gateway error"
// @Router /payments/mobile [post]
func (h *paymentHandler) initiateMobilePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MobilePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	result, err := h.gateway.InitiateMobilePayment(c.Request.Context(), req.Phone, req.Amount)
	if err != nil {
		logger.Error("Mobile payment failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway unavailable"})
		return
	}

	logger.Info("Mobile payment initiated", slog.String("reference", result.Reference))
	c.JSON(http.StatusOK, dto.MobilePaymentResponse{
		Success:   result.Success,
		Reference: result.Reference,
	})
}
