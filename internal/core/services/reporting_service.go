package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/dukapoint/pos_backend/internal/core/domain"
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/utils/reconciliation"
	"github.com/shopspring/decimal"
)

// reportingService assembles Z-Reports. The report is a pure projection of
// the shift and its linked records, so replaying it from history yields the
// same figures that were shown at close time.
type reportingService struct {
	BaseService
	shiftRepo    portsrepo.ShiftRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	cashflowRepo portsrepo.CashflowRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(shiftRepo portsrepo.ShiftRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, cashflowRepo portsrepo.CashflowRepositoryFacade) portssvc.ReportingSvc {
	return &reportingService{
		shiftRepo:    shiftRepo,
		saleRepo:     saleRepo,
		cashflowRepo: cashflowRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// ZReport assembles the audit summary for a closed shift using its stamped
// cash count. Implements portssvc.ReportingSvc.
func (s *reportingService) ZReport(ctx context.Context, shiftID string) (*domain.ZReport, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift for report: %w", err)
	}
	if shift.Status != domain.ShiftClosed {
		return nil, fmt.Errorf("%w: Z-Report requires a closed shift", apperrors.ErrValidation)
	}
	return s.buildReport(ctx, *shift, shift.ActualCash)
}

// ClosingPreview assembles the same summary for a shift still in Closing,
// against a provisional counted amount. Implements portssvc.ReportingSvc.
func (s *reportingService) ClosingPreview(ctx context.Context, shiftID string, actualCash decimal.Decimal) (*domain.ZReport, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift for preview: %w", err)
	}
	if shift.Status != domain.ShiftClosing {
		return nil, apperrors.ErrShiftNotClosing
	}
	return s.buildReport(ctx, *shift, actualCash)
}

func (s *reportingService) buildReport(ctx context.Context, shift domain.Shift, actualCash decimal.Decimal) (*domain.ZReport, error) {
	sales, err := s.saleRepo.ListSalesByShift(ctx, shift.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for report: %w", err)
	}
	expenses, err := s.cashflowRepo.ListExpensesByShift(ctx, shift.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for report: %w", err)
	}
	supplierPayments, err := s.cashflowRepo.ListSupplierPaymentsByShift(ctx, shift.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier payments for report: %w", err)
	}
	bankDeposits, err := s.cashflowRepo.ListBankDepositsByShift(ctx, shift.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank deposits for report: %w", err)
	}

	return &domain.ZReport{
		Shift:         shift,
		Sales:         summarizeSales(sales),
		PaymentTotals: foldPaymentTotals(sales),
		Payouts:       collectPayouts(expenses, supplierPayments, bankDeposits),
		Cash:          reconciliation.Reconcile(shift, sales, expenses, supplierPayments, bankDeposits, actualCash),
	}, nil
}

// summarizeSales aggregates the sales side of the report. Returns carry
// negated breakdowns, so plain summation nets them out.
func summarizeSales(sales []domain.Sale) domain.SalesSummary {
	summary := domain.SalesSummary{
		GrossSales:    decimal.Zero,
		LineDiscounts: decimal.Zero,
		CartDiscounts: decimal.Zero,
		VAT:           decimal.Zero,
		NetSales:      decimal.Zero,
	}
	for _, sale := range sales {
		if sale.Type == domain.SaleTypeReturn {
			summary.ReturnCount++
		} else {
			summary.SaleCount++
		}
		summary.GrossSales = summary.GrossSales.Add(sale.Breakdown.GrossSubtotal)
		summary.LineDiscounts = summary.LineDiscounts.Add(sale.Breakdown.LineDiscountTotal)
		summary.CartDiscounts = summary.CartDiscounts.Add(sale.Breakdown.CartDiscountAmount)
		summary.VAT = summary.VAT.Add(sale.Breakdown.Tax)
		summary.NetSales = summary.NetSales.Add(sale.Breakdown.Total)
	}
	return summary
}

func foldPaymentTotals(sales []domain.Sale) map[domain.PaymentMethod]decimal.Decimal {
	totals := make(map[domain.PaymentMethod]decimal.Decimal)
	for _, sale := range sales {
		for _, p := range sale.Payments {
			totals[p.Method] = totals[p.Method].Add(p.Amount)
		}
	}
	return totals
}

// collectPayouts flattens every cash-out into one chronological listing.
func collectPayouts(expenses []domain.Expense, supplierPayments []domain.SupplierPayment, bankDeposits []domain.BankDeposit) []domain.PayoutLine {
	payouts := make([]domain.PayoutLine, 0, len(expenses)+len(supplierPayments)+len(bankDeposits))
	for _, e := range expenses {
		payouts = append(payouts, domain.PayoutLine{
			Kind:        "EXPENSE",
			Description: e.Description,
			Amount:      e.Amount,
			Timestamp:   e.Timestamp,
		})
	}
	for _, p := range supplierPayments {
		payouts = append(payouts, domain.PayoutLine{
			Kind:        "SUPPLIER_PAYMENT",
			Description: fmt.Sprintf("Supplier %s", p.SupplierID),
			Amount:      p.Amount,
			Timestamp:   p.Timestamp,
		})
	}
	for _, d := range bankDeposits {
		payouts = append(payouts, domain.PayoutLine{
			Kind:        "BANK_DEPOSIT",
			Description: d.Reference,
			Amount:      d.Amount,
			Timestamp:   d.Timestamp,
		})
	}
	sort.Slice(payouts, func(i, j int) bool {
		return payouts[i].Timestamp.Before(payouts[j].Timestamp)
	})
	return payouts
}
