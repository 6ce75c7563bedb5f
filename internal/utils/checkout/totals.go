package checkout

import (
	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountAmount computes the effective discount for a base amount, clamped
// to [0, base]. Out-of-range values (negative, or above the base) are
// clamped rather than rejected; the totals computation never fails.
func DiscountAmount(base decimal.Decimal, d *domain.Discount) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	var amount decimal.Decimal
	switch d.Kind {
	case domain.Percentage:
		amount = base.Mul(d.Value).Div(hundred)
	case domain.Fixed:
		amount = d.Value
	default:
		return decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(base) {
		return base
	}
	return amount
}

// RoundMoney rounds a monetary value to 2 decimal places, half away from
// zero. Applied only to returned aggregates, never mid-calculation.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// Compute turns a cart into an auditable totals breakdown. It is pure and
// deterministic; the order of operations below is fixed:
//
//  1. per-line gross totals are accumulated into the gross subtotal;
//  2. line discounts are applied and clamped per line;
//  3. the cart discount is applied to the subtotal after line discounts;
//  4. the cart discount is redistributed across lines in proportion to each
//     line's net total, so per-line tax derivation sees the price actually
//     paid for that line;
//  5. base and tax are derived per line from its pricing type.
//
// If every line nets to zero there is no subtotal to distribute the cart
// discount over; the cart discount is reported as zero and no division by
// zero occurs.
//
// All arithmetic keeps full precision; only the returned aggregate fields
// are rounded to 2 decimal places.
func Compute(lines []domain.LineItem, cartDiscount *domain.Discount, vatRate decimal.Decimal) domain.TotalsBreakdown {
	grossSubtotal := decimal.Zero
	lineDiscountTotal := decimal.Zero
	netLineTotals := make([]decimal.Decimal, len(lines))

	for i, line := range lines {
		gross := line.GrossTotal()
		grossSubtotal = grossSubtotal.Add(gross)

		lineDiscount := DiscountAmount(gross, line.Discount)
		lineDiscountTotal = lineDiscountTotal.Add(lineDiscount)
		netLineTotals[i] = gross.Sub(lineDiscount)
	}

	subtotalAfterLineDiscounts := grossSubtotal.Sub(lineDiscountTotal)
	cartDiscountAmount := DiscountAmount(subtotalAfterLineDiscounts, cartDiscount)

	taxableAmount := decimal.Zero
	tax := decimal.Zero
	onePlusVAT := decimal.NewFromInt(1).Add(vatRate)

	for i, line := range lines {
		finalLinePrice := netLineTotals[i]
		if subtotalAfterLineDiscounts.IsPositive() && netLineTotals[i].IsPositive() {
			share := netLineTotals[i].Div(subtotalAfterLineDiscounts)
			finalLinePrice = netLineTotals[i].Sub(cartDiscountAmount.Mul(share))
		}

		var base, lineTax decimal.Decimal
		switch line.PricingType {
		case domain.TaxInclusive:
			base = finalLinePrice.Div(onePlusVAT)
			lineTax = finalLinePrice.Sub(base)
		default: // TaxExclusive
			base = finalLinePrice
			lineTax = base.Mul(vatRate)
		}
		taxableAmount = taxableAmount.Add(base)
		tax = tax.Add(lineTax)
	}

	taxableAmount = RoundMoney(taxableAmount)
	tax = RoundMoney(tax)

	return domain.TotalsBreakdown{
		GrossSubtotal:      RoundMoney(grossSubtotal),
		LineDiscountTotal:  RoundMoney(lineDiscountTotal),
		CartDiscountAmount: RoundMoney(cartDiscountAmount),
		TaxableAmount:      taxableAmount,
		Tax:                tax,
		Total:              taxableAmount.Add(tax),
	}
}
