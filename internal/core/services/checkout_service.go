package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/dto"
	"github.com/dukapoint/pos_backend/internal/platform/config"
	"github.com/dukapoint/pos_backend/internal/utils/checkout"
	"github.com/shopspring/decimal"
)

// checkoutService computes cart totals and finalizes sales against the
// cashier's active shift.
type checkoutService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryFacade
	shiftRepo   portsrepo.ShiftRepositoryFacade
	customerSvc portssvc.CustomerSvcFacade

	vatRate              decimal.Decimal
	redemptionRate       decimal.Decimal
	maxRedemptionPercent decimal.Decimal
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(saleRepo portsrepo.SaleRepositoryFacade, shiftRepo portsrepo.ShiftRepositoryFacade, customerSvc portssvc.CustomerSvcFacade, cfg *config.Config) portssvc.CheckoutSvcFacade {
	return &checkoutService{
		saleRepo:             saleRepo,
		shiftRepo:            shiftRepo,
		customerSvc:          customerSvc,
		vatRate:              cfg.VATRate,
		redemptionRate:       cfg.LoyaltyRedemptionRate,
		maxRedemptionPercent: cfg.LoyaltyMaxRedemptionPercent,
	}
}

var _ portssvc.CheckoutSvcFacade = (*checkoutService)(nil)

// effectiveVATRate picks the request override when present.
func (s *checkoutService) effectiveVATRate(override *decimal.Decimal) (decimal.Decimal, error) {
	if override == nil {
		return s.vatRate, nil
	}
	if override.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: VAT rate must not be negative", apperrors.ErrValidation)
	}
	return *override, nil
}

// PreviewTotals computes the breakdown for the submitted cart without side
// effects. Implements portssvc.TotalsPreviewSvc.
func (s *checkoutService) PreviewTotals(ctx context.Context, req dto.ComputeTotalsRequest) (*domain.TotalsBreakdown, error) {
	lines, err := dto.ToDomainLines(req.Lines)
	if err != nil {
		return nil, err
	}
	vatRate, err := s.effectiveVATRate(req.VATRate)
	if err != nil {
		return nil, err
	}
	breakdown := checkout.Compute(lines, req.CartDiscount.ToDomainDiscount(), vatRate)
	return &breakdown, nil
}

// FinalizeSale validates payment and loyalty redemption, persists the sale
// and the updated shift atomically, and reports the change due.
// Implements portssvc.SaleFinalizerSvc.
func (s *checkoutService) FinalizeSale(ctx context.Context, req dto.FinalizeSaleRequest, cashierID string) (*domain.Sale, error) {
	logger := s.GetLogger(ctx)

	lines, err := dto.ToDomainLines(req.Lines)
	if err != nil {
		return nil, err
	}
	vatRate, err := s.effectiveVATRate(req.VATRate)
	if err != nil {
		return nil, err
	}
	breakdown := checkout.Compute(lines, req.CartDiscount.ToDomainDiscount(), vatRate)

	shift, err := s.shiftRepo.FindActiveShiftByUser(ctx, cashierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoActiveShift
		}
		return nil, fmt.Errorf("failed to find active shift: %w", err)
	}
	if shift.Status != domain.ShiftActive {
		return nil, apperrors.ErrShiftNotActive
	}

	// Deposits reduce the balance before loyalty and tender checks.
	if req.DepositApplied.IsNegative() || req.DepositApplied.GreaterThan(breakdown.Total) {
		return nil, fmt.Errorf("%w: deposit must be between zero and the sale total", apperrors.ErrValidation)
	}
	balanceDue := breakdown.Total.Sub(req.DepositApplied)

	pointsValue, err := s.redeemPoints(ctx, req, balanceDue)
	if err != nil {
		return nil, err
	}
	balanceDue = balanceDue.Sub(pointsValue)

	payments := dto.ToDomainPayments(req.Payments)
	change, err := validateTender(payments, balanceDue)
	if err != nil {
		return nil, err
	}
	if pointsValue.IsPositive() {
		payments = append(payments, domain.Payment{Method: domain.PaymentPoints, Amount: pointsValue})
	}

	now := time.Now().UTC()
	sale := domain.Sale{
		SaleID:         uuid.NewString(),
		ShiftID:        shift.ShiftID,
		CustomerID:     req.CustomerID,
		Type:           domain.SaleTypeSale,
		Lines:          lines,
		Breakdown:      breakdown,
		Payments:       payments,
		Change:         change,
		PointsUsed:     req.PointsRequested,
		PointsValue:    pointsValue,
		DepositApplied: req.DepositApplied,
		Timestamp:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierID,
		},
	}

	if err := s.attachSaleToShift(ctx, sale, *shift, cashierID, now); err != nil {
		return nil, err
	}

	if pointsValue.IsPositive() && req.CustomerID != nil {
		if err := s.customerSvc.DeductPoints(ctx, *req.CustomerID, req.PointsRequested, cashierID); err != nil {
			// The sale is already committed; surface the imbalance loudly
			// instead of failing the checkout.
			s.LogError(ctx, err, "Failed to deduct redeemed loyalty points",
				slog.String("sale_id", sale.SaleID),
				slog.String("customer_id", *req.CustomerID))
		}
	}

	logger.Info("Sale finalized",
		slog.String("sale_id", sale.SaleID),
		slog.String("shift_id", sale.ShiftID),
		slog.String("total", breakdown.Total.String()),
		slog.String("change", change.String()))
	return &sale, nil
}

// redeemPoints validates a loyalty redemption request and returns its
// monetary value. Requests over the redeemable cap are rejected outright,
// never silently clamped.
func (s *checkoutService) redeemPoints(ctx context.Context, req dto.FinalizeSaleRequest, balanceDue decimal.Decimal) (decimal.Decimal, error) {
	if req.PointsRequested.IsZero() {
		return decimal.Zero, nil
	}
	if req.PointsRequested.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: points requested must not be negative", apperrors.ErrValidation)
	}
	if req.CustomerID == nil {
		return decimal.Zero, fmt.Errorf("%w: points redemption requires a customer", apperrors.ErrValidation)
	}

	customer, err := s.customerSvc.GetCustomerByID(ctx, *req.CustomerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load customer for redemption: %w", err)
	}
	if req.PointsRequested.GreaterThan(customer.LoyaltyPoints) {
		return decimal.Zero, apperrors.ErrRedemptionExceedsBalance
	}

	pointsValue := req.PointsRequested.Mul(s.redemptionRate)
	redeemable := balanceDue.Mul(s.maxRedemptionPercent).Div(decimal.NewFromInt(100))
	if pointsValue.GreaterThan(redeemable) {
		return decimal.Zero, apperrors.ErrRedemptionExceedsBalance
	}
	return checkout.RoundMoney(pointsValue), nil
}

// validateTender enforces the tender policy: electronic tenders may not
// exceed the balance due, cash covers the remainder, and change comes only
// from cash.
func validateTender(payments []domain.Payment, balanceDue decimal.Decimal) (decimal.Decimal, error) {
	cash := decimal.Zero
	electronic := decimal.Zero
	for _, p := range payments {
		if !p.Amount.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: payment amounts must be positive", apperrors.ErrValidation)
		}
		if p.Method == domain.PaymentCash {
			cash = cash.Add(p.Amount)
		} else {
			electronic = electronic.Add(p.Amount)
		}
	}
	if electronic.GreaterThan(balanceDue) {
		return decimal.Zero, fmt.Errorf("%w: electronic tender exceeds balance due", apperrors.ErrValidation)
	}
	remainder := balanceDue.Sub(electronic)
	if cash.LessThan(remainder) {
		return decimal.Zero, apperrors.ErrInsufficientPayment
	}
	return checkout.RoundMoney(cash.Sub(remainder)), nil
}

// attachSaleToShift folds the sale into a copy of the shift and persists
// both in one transaction under the shift's version guard.
func (s *checkoutService) attachSaleToShift(ctx context.Context, sale domain.Sale, shift domain.Shift, cashierID string, now time.Time) error {
	expectedVersion := shift.Version
	if err := shift.RecordSale(sale); err != nil {
		return err
	}
	shift.Version = expectedVersion + 1
	shift.LastUpdatedAt = now
	shift.LastUpdatedBy = cashierID

	if err := s.saleRepo.SaveSale(ctx, sale, shift, expectedVersion); err != nil {
		if errors.Is(err, apperrors.ErrVersionConflict) {
			return apperrors.ErrVersionConflict
		}
		return fmt.Errorf("failed to persist sale: %w", err)
	}
	return nil
}

// ReturnSale records a correction as a new Return sale referencing the
// original. The original record is never mutated.
// Implements portssvc.SaleFinalizerSvc.
func (s *checkoutService) ReturnSale(ctx context.Context, req dto.ReturnSaleRequest, cashierID string) (*domain.Sale, error) {
	original, err := s.saleRepo.FindSaleByID(ctx, req.OriginalSaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load original sale: %w", err)
	}
	if original.Type != domain.SaleTypeSale {
		return nil, fmt.Errorf("%w: only regular sales can be returned", apperrors.ErrValidation)
	}

	shift, err := s.shiftRepo.FindActiveShiftByUser(ctx, cashierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoActiveShift
		}
		return nil, fmt.Errorf("failed to find active shift: %w", err)
	}
	if shift.Status != domain.ShiftActive {
		return nil, apperrors.ErrShiftNotActive
	}

	now := time.Now().UTC()
	refund := domain.Sale{
		SaleID:         uuid.NewString(),
		ShiftID:        shift.ShiftID,
		CustomerID:     original.CustomerID,
		Type:           domain.SaleTypeReturn,
		OriginalSaleID: &original.SaleID,
		Lines:          original.Lines,
		Breakdown:      negateBreakdown(original.Breakdown),
		Payments: []domain.Payment{
			// Refunds are paid out of the drawer in cash.
			{Method: domain.PaymentCash, Amount: original.Breakdown.Total.Neg()},
		},
		Timestamp: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierID,
		},
	}

	if err := s.attachSaleToShift(ctx, refund, *shift, cashierID, now); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Return recorded",
		slog.String("sale_id", refund.SaleID),
		slog.String("original_sale_id", original.SaleID),
		slog.String("refund", original.Breakdown.Total.String()))
	return &refund, nil
}

// negateBreakdown mirrors a breakdown for a return so shift and report
// aggregates net out.
func negateBreakdown(b domain.TotalsBreakdown) domain.TotalsBreakdown {
	return domain.TotalsBreakdown{
		GrossSubtotal:      b.GrossSubtotal.Neg(),
		LineDiscountTotal:  b.LineDiscountTotal.Neg(),
		CartDiscountAmount: b.CartDiscountAmount.Neg(),
		TaxableAmount:      b.TaxableAmount.Neg(),
		Tax:                b.Tax.Neg(),
		Total:              b.Total.Neg(),
	}
}

// GetSaleByID retrieves a sale. Implements portssvc.SaleFinalizerSvc.
func (s *checkoutService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}
	return sale, nil
}
