package dto

import "github.com/shopspring/decimal"

// MobilePaymentRequest initiates an STK push to the customer's phone.
type MobilePaymentRequest struct {
	Phone  string          `json:"phone" binding:"required,msisdn"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// MobilePaymentResponse reports the gateway outcome.
type MobilePaymentResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
}
