package checkout_test

import (
	"testing"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/utils/checkout"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func exclusiveLine(unitPrice, qty string, d *domain.Discount) domain.LineItem {
	return domain.LineItem{
		ProductID:   "p1",
		UnitPrice:   dec(unitPrice),
		Quantity:    dec(qty),
		PricingType: domain.TaxExclusive,
		Discount:    d,
	}
}

func inclusiveLine(unitPrice, qty string, d *domain.Discount) domain.LineItem {
	l := exclusiveLine(unitPrice, qty, d)
	l.PricingType = domain.TaxInclusive
	return l
}

func TestCompute_SingleExclusiveLineNoDiscounts(t *testing.T) {
	b := checkout.Compute([]domain.LineItem{exclusiveLine("100", "2", nil)}, nil, dec("0.16"))

	assert.True(t, b.GrossSubtotal.Equal(dec("200")), "gross: %s", b.GrossSubtotal)
	assert.True(t, b.Tax.Equal(dec("32")), "tax: %s", b.Tax)
	assert.True(t, b.Total.Equal(dec("232")), "total: %s", b.Total)
	assert.True(t, b.LineDiscountTotal.IsZero())
	assert.True(t, b.CartDiscountAmount.IsZero())
}

func TestCompute_LineAndCartDiscounts(t *testing.T) {
	line := exclusiveLine("100", "2", &domain.Discount{Kind: domain.Fixed, Value: dec("20")})
	cart := &domain.Discount{Kind: domain.Percentage, Value: dec("10")}

	b := checkout.Compute([]domain.LineItem{line}, cart, dec("0.16"))

	assert.True(t, b.LineDiscountTotal.Equal(dec("20")), "line discounts: %s", b.LineDiscountTotal)
	assert.True(t, b.CartDiscountAmount.Equal(dec("18")), "cart discount: %s", b.CartDiscountAmount)
	assert.True(t, b.TaxableAmount.Equal(dec("162")), "taxable: %s", b.TaxableAmount)
	assert.True(t, b.Tax.Equal(dec("25.92")), "tax: %s", b.Tax)
	assert.True(t, b.Total.Equal(dec("187.92")), "total: %s", b.Total)
	assert.True(t, b.TaxableAmount.Add(b.Tax).Equal(b.Total))
}

func TestCompute_InclusivePricingSplitsTaxOut(t *testing.T) {
	b := checkout.Compute([]domain.LineItem{inclusiveLine("116", "1", nil)}, nil, dec("0.16"))

	assert.True(t, b.TaxableAmount.Equal(dec("100")), "taxable: %s", b.TaxableAmount)
	assert.True(t, b.Tax.Equal(dec("16")), "tax: %s", b.Tax)
	assert.True(t, b.Total.Equal(dec("116")), "total: %s", b.Total)
}

func TestCompute_FractionalQuantity(t *testing.T) {
	// 1.5 kg at 50/kg, VAT exclusive.
	b := checkout.Compute([]domain.LineItem{exclusiveLine("50", "1.5", nil)}, nil, dec("0.16"))

	assert.True(t, b.GrossSubtotal.Equal(dec("75")))
	assert.True(t, b.Tax.Equal(dec("12")))
	assert.True(t, b.Total.Equal(dec("87")))
}

func TestCompute_DiscountClampedToBase(t *testing.T) {
	// Nominal fixed discount above the line total must clamp, never go negative.
	line := exclusiveLine("100", "1", &domain.Discount{Kind: domain.Fixed, Value: dec("150")})
	b := checkout.Compute([]domain.LineItem{line}, nil, dec("0.16"))

	assert.True(t, b.LineDiscountTotal.Equal(dec("100")), "clamped discount: %s", b.LineDiscountTotal)
	assert.True(t, b.Total.IsZero(), "total: %s", b.Total)

	// Same for a >100% cart discount.
	cart := &domain.Discount{Kind: domain.Percentage, Value: dec("150")}
	b = checkout.Compute([]domain.LineItem{exclusiveLine("100", "1", nil)}, cart, dec("0.16"))
	assert.True(t, b.CartDiscountAmount.Equal(dec("100")), "clamped cart discount: %s", b.CartDiscountAmount)
	assert.True(t, b.Total.IsZero())
}

func TestCompute_ZeroSubtotalGuard(t *testing.T) {
	// Every line fully discounted: no cart discount is distributed and no
	// division by zero occurs.
	lines := []domain.LineItem{
		exclusiveLine("100", "1", &domain.Discount{Kind: domain.Percentage, Value: dec("100")}),
		exclusiveLine("40", "2", &domain.Discount{Kind: domain.Fixed, Value: dec("80")}),
	}
	cart := &domain.Discount{Kind: domain.Percentage, Value: dec("10")}

	b := checkout.Compute(lines, cart, dec("0.16"))

	assert.True(t, b.CartDiscountAmount.IsZero(), "cart discount: %s", b.CartDiscountAmount)
	assert.True(t, b.TaxableAmount.IsZero())
	assert.True(t, b.Tax.IsZero())
	assert.True(t, b.Total.IsZero())
}

func TestCompute_ProportionalRedistribution(t *testing.T) {
	// Two exclusive lines netting 150 and 50; a fixed cart discount of 40
	// must be split 3:1 across them.
	lines := []domain.LineItem{
		exclusiveLine("150", "1", nil),
		exclusiveLine("50", "1", nil),
	}
	cart := &domain.Discount{Kind: domain.Fixed, Value: dec("40")}

	b := checkout.Compute(lines, cart, dec("0.16"))

	// Final line prices: 150-30=120 and 50-10=40 -> taxable 160.
	assert.True(t, b.TaxableAmount.Equal(dec("160")), "taxable: %s", b.TaxableAmount)
	assert.True(t, b.Tax.Equal(dec("25.6")), "tax: %s", b.Tax)
	assert.True(t, b.Total.Equal(dec("185.6")), "total: %s", b.Total)
}

func TestCompute_Conservation(t *testing.T) {
	vat := dec("0.16")
	cart := &domain.Discount{Kind: domain.Percentage, Value: dec("7.5")}

	// Inclusive cart: discounted shelf prices already contain VAT, so what
	// the customer pays equals taxable + tax within a cent.
	inc := []domain.LineItem{
		inclusiveLine("116", "3", &domain.Discount{Kind: domain.Percentage, Value: dec("5")}),
		inclusiveLine("33.33", "2", &domain.Discount{Kind: domain.Fixed, Value: dec("10")}),
		inclusiveLine("19.99", "1.75", nil),
	}
	bi := checkout.Compute(inc, cart, vat)
	require.True(t, bi.TaxableAmount.Add(bi.Tax).Equal(bi.Total))
	paid := bi.GrossSubtotal.Sub(bi.LineDiscountTotal).Sub(bi.CartDiscountAmount)
	diff := paid.Sub(bi.Total).Abs()
	assert.True(t, diff.LessThanOrEqual(dec("0.01")), "conservation drift: %s", diff)

	// Exclusive cart: tax is added on top, so the discounted subtotal equals
	// the taxable amount and the total exceeds it by exactly the tax.
	exc := []domain.LineItem{
		exclusiveLine("99.99", "1.25", nil),
		exclusiveLine("3.33", "11", &domain.Discount{Kind: domain.Percentage, Value: dec("12.5")}),
	}
	be := checkout.Compute(exc, cart, vat)
	require.True(t, be.TaxableAmount.Add(be.Tax).Equal(be.Total))
	paidExc := be.GrossSubtotal.Sub(be.LineDiscountTotal).Sub(be.CartDiscountAmount)
	diffExc := paidExc.Sub(be.TaxableAmount).Abs()
	assert.True(t, diffExc.LessThanOrEqual(dec("0.01")), "conservation drift: %s", diffExc)
}

func TestCompute_Deterministic(t *testing.T) {
	lines := []domain.LineItem{
		inclusiveLine("19.99", "7", &domain.Discount{Kind: domain.Percentage, Value: dec("12.5")}),
		exclusiveLine("3.33", "11", nil),
	}
	cart := &domain.Discount{Kind: domain.Fixed, Value: dec("13.37")}

	first := checkout.Compute(lines, cart, dec("0.16"))
	second := checkout.Compute(lines, cart, dec("0.16"))
	assert.Equal(t, first, second)
}
