package domain

import (
	"time"

	"github.com/dukapoint/pos_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ShiftStatus is the state of a cashier's working session.
// Lifecycle: Active -> Closing -> Closed. Closed is terminal; a new shift is
// always a new instance.
type ShiftStatus string

const (
	ShiftActive  ShiftStatus = "ACTIVE"
	ShiftClosing ShiftStatus = "CLOSING"
	ShiftClosed  ShiftStatus = "CLOSED"
)

// Shift is a cashier's bounded working session. Every sale and expense
// recorded while it is Active is attributed to its drawer. Once Closed the
// record is immutable; historical reports re-derive their figures from the
// linked records rather than trusting stored aggregates alone.
//
// Version supports optimistic concurrency on writes so a racing sale cannot
// land after the close is confirmed.
type Shift struct {
	ShiftID          string                          `json:"shiftID"`
	UserID           string                          `json:"userID"`
	StartTime        time.Time                       `json:"startTime"`
	EndTime          *time.Time                      `json:"endTime,omitempty"`
	Status           ShiftStatus                     `json:"status"`
	StartingFloat    decimal.Decimal                 `json:"startingFloat"`
	SaleIDs          []string                        `json:"saleIDs"`
	ExpenseIDs       []string                        `json:"expenseIDs"`
	PaymentBreakdown map[PaymentMethod]decimal.Decimal `json:"paymentBreakdown"`
	ChangeGiven      decimal.Decimal                 `json:"changeGiven"`
	TotalSales       decimal.Decimal                 `json:"totalSales"`
	TotalPayouts     decimal.Decimal                 `json:"totalPayouts"`
	ExpectedCash     decimal.Decimal                 `json:"expectedCash"`
	ActualCash       decimal.Decimal                 `json:"actualCash"`
	Variance         decimal.Decimal                 `json:"variance"`
	Notes            string                          `json:"notes"`
	Version          int64                           `json:"version"`
	AuditFields
}

// NewShift opens a shift for a cashier with the given drawer float.
func NewShift(shiftID, userID string, startingFloat decimal.Decimal, now time.Time) (Shift, error) {
	if startingFloat.IsNegative() {
		return Shift{}, apperrors.ErrInvalidFloat
	}
	return Shift{
		ShiftID:          shiftID,
		UserID:           userID,
		StartTime:        now,
		Status:           ShiftActive,
		StartingFloat:    startingFloat,
		SaleIDs:          []string{},
		ExpenseIDs:       []string{},
		PaymentBreakdown: map[PaymentMethod]decimal.Decimal{},
		Version:          1,
	}, nil
}

// RecordSale appends a sale to the shift and folds its payments into the
// running breakdown. Valid only while the shift is Active.
func (s *Shift) RecordSale(sale Sale) error {
	if s.Status != ShiftActive {
		return apperrors.ErrShiftNotActive
	}
	s.SaleIDs = append(s.SaleIDs, sale.SaleID)
	if s.PaymentBreakdown == nil {
		s.PaymentBreakdown = map[PaymentMethod]decimal.Decimal{}
	}
	for _, p := range sale.Payments {
		s.PaymentBreakdown[p.Method] = s.PaymentBreakdown[p.Method].Add(p.Amount)
	}
	s.ChangeGiven = s.ChangeGiven.Add(sale.Change)
	s.TotalSales = s.TotalSales.Add(sale.Breakdown.Total)
	return nil
}

// RecordExpense appends an expense reference. Valid only while Active.
func (s *Shift) RecordExpense(expenseID string) error {
	if s.Status != ShiftActive {
		return apperrors.ErrShiftNotActive
	}
	s.ExpenseIDs = append(s.ExpenseIDs, expenseID)
	return nil
}

// RequestClose freezes acceptance of new sales without computing figures,
// so the operator can review the reconciliation before committing.
func (s *Shift) RequestClose() error {
	if s.Status != ShiftActive {
		return apperrors.ErrShiftNotActive
	}
	s.Status = ShiftClosing
	return nil
}

// CancelClose aborts reconciliation and resumes taking sales. It is safe to
// call repeatedly while the shift is Closing.
func (s *Shift) CancelClose() error {
	switch s.Status {
	case ShiftClosing:
		s.Status = ShiftActive
		return nil
	case ShiftActive:
		// Already back to Active; repeated cancellation is a no-op.
		return nil
	default:
		return apperrors.ErrShiftNotClosing
	}
}

// ConfirmClose finalizes the shift with the reconciled figures. Valid only
// from Closing; the shift is immutable afterwards.
func (s *Shift) ConfirmClose(report CashReport, totalPayouts decimal.Decimal, notes string, now time.Time) error {
	if s.Status != ShiftClosing {
		return apperrors.ErrShiftNotClosing
	}
	s.Status = ShiftClosed
	s.EndTime = &now
	s.ExpectedCash = report.ExpectedCash
	s.ActualCash = report.ActualCash
	s.Variance = report.Variance
	s.TotalPayouts = totalPayouts
	s.Notes = notes
	return nil
}
