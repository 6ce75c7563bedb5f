package domain

import "github.com/shopspring/decimal"

// TotalsBreakdown is the auditable output of the totals computation.
// All fields are rounded to 2 decimal places on output only; intermediate
// arithmetic keeps full precision so rounding error never compounds across
// lines. Invariant: TaxableAmount + Tax == Total.
type TotalsBreakdown struct {
	GrossSubtotal      decimal.Decimal `json:"grossSubtotal"`
	LineDiscountTotal  decimal.Decimal `json:"lineDiscountTotal"`
	CartDiscountAmount decimal.Decimal `json:"cartDiscountAmount"`
	TaxableAmount      decimal.Decimal `json:"taxableAmount"`
	Tax                decimal.Decimal `json:"tax"`
	Total              decimal.Decimal `json:"total"`
}
