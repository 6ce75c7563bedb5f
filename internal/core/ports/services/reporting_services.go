package services

import (
	"context"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvc builds Z-Reports. The aggregation is a pure projection of a
// shift and its linked records: the same shift always produces the same
// report, whether requested at close time or months later.
type ReportingSvc interface {
	// ZReport assembles the audit summary for a closed shift using its
	// stamped cash count.
	ZReport(ctx context.Context, shiftID string) (*domain.ZReport, error)

	// ClosingPreview assembles the same summary for a shift still in
	// Closing, against a provisional counted amount, so the operator can
	// review the variance before confirming.
	ClosingPreview(ctx context.Context, shiftID string, actualCash decimal.Decimal) (*domain.ZReport, error)
}
