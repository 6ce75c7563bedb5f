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
	"github.com/dukapoint/pos_backend/internal/utils/reconciliation"
	"github.com/shopspring/decimal"
)

// shiftService drives the shift lifecycle: open, record cash-outs, and the
// two-step close with reconciliation. All writes to one shift go through the
// repository's optimistic version check.
type shiftService struct {
	BaseService
	shiftRepo    portsrepo.ShiftRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
	cashflowRepo portsrepo.CashflowRepositoryFacade
}

// NewShiftService creates a new shift service.
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, cashflowRepo portsrepo.CashflowRepositoryFacade) portssvc.ShiftSvcFacade {
	return &shiftService{
		shiftRepo:    shiftRepo,
		saleRepo:     saleRepo,
		cashflowRepo: cashflowRepo,
	}
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// GetShiftByID retrieves a specific shift. Implements portssvc.ShiftReaderSvc.
func (s *shiftService) GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return shift, nil
}

// GetActiveShift retrieves the cashier's current non-closed shift.
// Implements portssvc.ShiftReaderSvc.
func (s *shiftService) GetActiveShift(ctx context.Context, userID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindActiveShiftByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoActiveShift
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}
	return shift, nil
}

// ListShifts retrieves a paginated list of the cashier's shifts.
// Implements portssvc.ShiftReaderSvc.
func (s *shiftService) ListShifts(ctx context.Context, userID string, params dto.ListShiftsParams) ([]domain.Shift, error) {
	shifts, err := s.shiftRepo.ListShiftsByUser(ctx, userID, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	if shifts == nil {
		return []domain.Shift{}, nil
	}
	return shifts, nil
}

// StartShift opens a shift with the cash placed in the drawer. A cashier may
// hold at most one non-closed shift. Implements portssvc.ShiftWriterSvc.
func (s *shiftService) StartShift(ctx context.Context, userID string, req dto.StartShiftRequest) (*domain.Shift, error) {
	existing, err := s.shiftRepo.FindActiveShiftByUser(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for active shift: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: cashier already has an open shift", apperrors.ErrDuplicate)
	}

	now := time.Now().UTC()
	shift, err := domain.NewShift(uuid.NewString(), userID, req.StartingFloat, now)
	if err != nil {
		return nil, err
	}
	shift.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}

	s.LogInfo(ctx, "Shift started",
		slog.String("shift_id", shift.ShiftID),
		slog.String("starting_float", shift.StartingFloat.String()))
	return &shift, nil
}

// RecordExpense records a cash-out against the cashier's active shift. The
// expense and the updated shift are persisted in one transaction.
// Implements portssvc.ShiftWriterSvc.
func (s *shiftService) RecordExpense(ctx context.Context, userID string, req dto.RecordExpenseRequest) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	shift, err := s.GetActiveShift(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		ShiftID:     &shift.ShiftID,
		Description: req.Description,
		Amount:      req.Amount,
		Source:      domain.CashSource(req.Source),
		Timestamp:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	updated := *shift
	expectedVersion := shift.Version
	if err := updated.RecordExpense(expense.ExpenseID); err != nil {
		return nil, err
	}
	updated.Version = expectedVersion + 1
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.cashflowRepo.SaveExpense(ctx, expense, updated, expectedVersion); err != nil {
		return nil, fmt.Errorf("failed to persist expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("shift_id", shift.ShiftID),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

// RecordSupplierPayment records a payout to a supplier against the cashier's
// active shift. Unlike expenses the shift row itself is untouched; the
// reconciler picks the payment up by shift id.
// Implements portssvc.ShiftWriterSvc.
func (s *shiftService) RecordSupplierPayment(ctx context.Context, userID string, req dto.RecordSupplierPaymentRequest) (*domain.SupplierPayment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: supplier payment amount must be positive", apperrors.ErrValidation)
	}

	shift, err := s.GetActiveShift(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift.Status != domain.ShiftActive {
		return nil, apperrors.ErrShiftNotActive
	}

	now := time.Now().UTC()
	payment := domain.SupplierPayment{
		PaymentID:  uuid.NewString(),
		ShiftID:    &shift.ShiftID,
		SupplierID: req.SupplierID,
		Amount:     req.Amount,
		Method:     domain.CashSource(req.Method),
		Timestamp:  now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cashflowRepo.SaveSupplierPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to persist supplier payment: %w", err)
	}

	s.LogInfo(ctx, "Supplier payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("shift_id", shift.ShiftID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

// RecordBankDeposit records cash banked from the drawer against the
// cashier's active shift. Implements portssvc.ShiftWriterSvc.
func (s *shiftService) RecordBankDeposit(ctx context.Context, userID string, req dto.RecordBankDepositRequest) (*domain.BankDeposit, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	shift, err := s.GetActiveShift(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift.Status != domain.ShiftActive {
		return nil, apperrors.ErrShiftNotActive
	}

	now := time.Now().UTC()
	deposit := domain.BankDeposit{
		DepositID: uuid.NewString(),
		ShiftID:   &shift.ShiftID,
		Amount:    req.Amount,
		Reference: req.Reference,
		Timestamp: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.cashflowRepo.SaveBankDeposit(ctx, deposit); err != nil {
		return nil, fmt.Errorf("failed to persist bank deposit: %w", err)
	}

	s.LogInfo(ctx, "Bank deposit recorded",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("shift_id", shift.ShiftID),
		slog.String("amount", deposit.Amount.String()))
	return &deposit, nil
}

// transition applies a domain state change to the cashier's current shift
// and persists it under the version guard.
func (s *shiftService) transition(ctx context.Context, userID string, apply func(*domain.Shift) error) (*domain.Shift, error) {
	shift, err := s.GetActiveShift(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *shift
	expectedVersion := shift.Version
	if err := apply(&updated); err != nil {
		return nil, err
	}
	updated.Version = expectedVersion + 1
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = userID

	if err := s.shiftRepo.UpdateShift(ctx, updated, expectedVersion); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	return &updated, nil
}

// RequestClose freezes the shift for reconciliation (Active -> Closing).
// Implements portssvc.ShiftWriterSvc.
func (s *shiftService) RequestClose(ctx context.Context, userID string) (*domain.Shift, error) {
	shift, err := s.transition(ctx, userID, func(sh *domain.Shift) error {
		return sh.RequestClose()
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Shift close requested", slog.String("shift_id", shift.ShiftID))
	return shift, nil
}

// CancelClose aborts reconciliation and resumes taking sales
// (Closing -> Active). Implements portssvc.ShiftWriterSvc.
func (s *shiftService) CancelClose(ctx context.Context, userID string) (*domain.Shift, error) {
	shift, err := s.transition(ctx, userID, func(sh *domain.Shift) error {
		return sh.CancelClose()
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Shift close cancelled", slog.String("shift_id", shift.ShiftID))
	return shift, nil
}

// ConfirmClose reconciles the drawer against the counted cash and finalizes
// the shift (Closing -> Closed). Implements portssvc.ShiftWriterSvc.
func (s *shiftService) ConfirmClose(ctx context.Context, userID string, req dto.ConfirmCloseRequest) (*domain.Shift, error) {
	if req.ActualCash.IsNegative() {
		return nil, fmt.Errorf("%w: counted cash must not be negative", apperrors.ErrValidation)
	}

	shift, err := s.GetActiveShift(ctx, userID)
	if err != nil {
		return nil, err
	}
	if shift.Status != domain.ShiftClosing {
		return nil, apperrors.ErrShiftNotClosing
	}

	report, totalPayouts, err := s.reconcile(ctx, *shift, req.ActualCash)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updated := *shift
	expectedVersion := shift.Version
	if err := updated.ConfirmClose(report, totalPayouts, req.Notes, now); err != nil {
		return nil, err
	}
	updated.Version = expectedVersion + 1
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.shiftRepo.UpdateShift(ctx, updated, expectedVersion); err != nil {
		return nil, fmt.Errorf("failed to close shift: %w", err)
	}

	s.LogInfo(ctx, "Shift closed",
		slog.String("shift_id", updated.ShiftID),
		slog.String("expected_cash", report.ExpectedCash.String()),
		slog.String("actual_cash", report.ActualCash.String()),
		slog.String("variance", report.Variance.String()),
		slog.String("variance_status", string(report.Status)))
	return &updated, nil
}

// reconcile loads the shift's linked records and computes the cash report
// and the total drawer payouts.
func (s *shiftService) reconcile(ctx context.Context, shift domain.Shift, actualCash decimal.Decimal) (domain.CashReport, decimal.Decimal, error) {
	sales, err := s.saleRepo.ListSalesByShift(ctx, shift.ShiftID)
	if err != nil {
		return domain.CashReport{}, decimal.Zero, fmt.Errorf("failed to list sales for reconciliation: %w", err)
	}
	expenses, err := s.cashflowRepo.ListExpensesByShift(ctx, shift.ShiftID)
	if err != nil {
		return domain.CashReport{}, decimal.Zero, fmt.Errorf("failed to list expenses for reconciliation: %w", err)
	}
	supplierPayments, err := s.cashflowRepo.ListSupplierPaymentsByShift(ctx, shift.ShiftID)
	if err != nil {
		return domain.CashReport{}, decimal.Zero, fmt.Errorf("failed to list supplier payments for reconciliation: %w", err)
	}
	bankDeposits, err := s.cashflowRepo.ListBankDepositsByShift(ctx, shift.ShiftID)
	if err != nil {
		return domain.CashReport{}, decimal.Zero, fmt.Errorf("failed to list bank deposits for reconciliation: %w", err)
	}

	report := reconciliation.Reconcile(shift, sales, expenses, supplierPayments, bankDeposits, actualCash)
	totalPayouts := report.CashExpenses.Add(report.CashSupplierPayments).Add(report.CashBanked)
	return report, totalPayouts, nil
}
