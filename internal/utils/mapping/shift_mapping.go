package mapping

import (
	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	breakdown := make(map[string]decimal.Decimal, len(d.PaymentBreakdown))
	for method, amount := range d.PaymentBreakdown {
		breakdown[string(method)] = amount
	}
	return models.Shift{
		ShiftID:          d.ShiftID,
		UserID:           d.UserID,
		StartTime:        d.StartTime,
		EndTime:          d.EndTime,
		Status:           string(d.Status),
		StartingFloat:    d.StartingFloat,
		SaleIDs:          d.SaleIDs,
		ExpenseIDs:       d.ExpenseIDs,
		PaymentBreakdown: breakdown,
		ChangeGiven:      d.ChangeGiven,
		TotalSales:       d.TotalSales,
		TotalPayouts:     d.TotalPayouts,
		ExpectedCash:     d.ExpectedCash,
		ActualCash:       d.ActualCash,
		Variance:         d.Variance,
		Notes:            d.Notes,
		Version:          d.Version,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	breakdown := make(map[domain.PaymentMethod]decimal.Decimal, len(m.PaymentBreakdown))
	for method, amount := range m.PaymentBreakdown {
		breakdown[domain.PaymentMethod(method)] = amount
	}
	return domain.Shift{
		ShiftID:          m.ShiftID,
		UserID:           m.UserID,
		StartTime:        m.StartTime,
		EndTime:          m.EndTime,
		Status:           domain.ShiftStatus(m.Status),
		StartingFloat:    m.StartingFloat,
		SaleIDs:          m.SaleIDs,
		ExpenseIDs:       m.ExpenseIDs,
		PaymentBreakdown: breakdown,
		ChangeGiven:      m.ChangeGiven,
		TotalSales:       m.TotalSales,
		TotalPayouts:     m.TotalPayouts,
		ExpectedCash:     m.ExpectedCash,
		ActualCash:       m.ActualCash,
		Variance:         m.Variance,
		Notes:            m.Notes,
		Version:          m.Version,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShiftSlice converts a slice of model Shifts to a slice of domain Shifts
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
