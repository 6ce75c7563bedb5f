package services

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentGatewaySvc is the narrow contract with the mobile money provider.
// The core treats a successful result as one Payment entry; retries,
// timeouts and polling belong to the adapter behind this interface.
type PaymentGatewaySvc interface {
	// InitiateMobilePayment asks the gateway to charge the phone the given
	// amount and reports the confirmation reference on success.
	InitiateMobilePayment(ctx context.Context, phone string, amount decimal.Decimal) (*domain.PaymentResult, error)
}
