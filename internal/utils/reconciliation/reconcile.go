package reconciliation

import (
	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/utils/checkout"
	"github.com/shopspring/decimal"
)

// Reconcile computes a shift's expected drawer cash and the variance against
// the counted amount:
//
//	expectedCash = startingFloat + cashSales - changeGiven
//	             - cashExpenses - cashSupplierPayments - cashBanked
//
// Every term is filtered to records belonging to the shift, and expenses and
// supplier payments only count when they were paid from the cash drawer.
// The function is pure and total: re-running it with the same inputs yields
// the same report, which is what lets historical Z-Reports be re-derived
// instead of stored as opaque blobs.
func Reconcile(
	shift domain.Shift,
	sales []domain.Sale,
	expenses []domain.Expense,
	supplierPayments []domain.SupplierPayment,
	bankDeposits []domain.BankDeposit,
	actualCash decimal.Decimal,
) domain.CashReport {
	cashSales := decimal.Zero
	changeGiven := decimal.Zero
	for _, sale := range sales {
		if sale.ShiftID != shift.ShiftID {
			continue
		}
		cashSales = cashSales.Add(sale.CashTendered())
		changeGiven = changeGiven.Add(sale.Change)
	}

	cashExpenses := decimal.Zero
	for _, e := range expenses {
		if !belongsToShift(e.ShiftID, shift.ShiftID) || e.Source != domain.SourceCashDrawer {
			continue
		}
		cashExpenses = cashExpenses.Add(e.Amount)
	}

	cashSupplierPayments := decimal.Zero
	for _, p := range supplierPayments {
		if !belongsToShift(p.ShiftID, shift.ShiftID) || p.Method != domain.SourceCashDrawer {
			continue
		}
		cashSupplierPayments = cashSupplierPayments.Add(p.Amount)
	}

	cashBanked := decimal.Zero
	for _, d := range bankDeposits {
		if !belongsToShift(d.ShiftID, shift.ShiftID) {
			continue
		}
		cashBanked = cashBanked.Add(d.Amount)
	}

	expectedCash := shift.StartingFloat.
		Add(cashSales).
		Sub(changeGiven).
		Sub(cashExpenses).
		Sub(cashSupplierPayments).
		Sub(cashBanked)
	expectedCash = checkout.RoundMoney(expectedCash)
	actualCash = checkout.RoundMoney(actualCash)
	variance := actualCash.Sub(expectedCash)

	return domain.CashReport{
		ShiftID:              shift.ShiftID,
		StartingFloat:        shift.StartingFloat,
		CashSales:            checkout.RoundMoney(cashSales),
		ChangeGiven:          checkout.RoundMoney(changeGiven),
		CashExpenses:         checkout.RoundMoney(cashExpenses),
		CashSupplierPayments: checkout.RoundMoney(cashSupplierPayments),
		CashBanked:           checkout.RoundMoney(cashBanked),
		ExpectedCash:         expectedCash,
		ActualCash:           actualCash,
		Variance:             variance,
		Status:               classify(variance),
	}
}

func classify(variance decimal.Decimal) domain.VarianceStatus {
	switch {
	case variance.IsPositive():
		return domain.VarianceOverage
	case variance.IsNegative():
		return domain.VarianceShortage
	default:
		return domain.VarianceBalanced
	}
}

func belongsToShift(shiftID *string, want string) bool {
	return shiftID != nil && *shiftID == want
}
