package mapping

import (
	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/models"
)

// ToModelDiscount converts a domain Discount to a model Discount
func ToModelDiscount(d *domain.Discount) *models.Discount {
	if d == nil {
		return nil
	}
	return &models.Discount{
		Kind:  string(d.Kind),
		Value: d.Value,
	}
}

// ToDomainDiscount converts a model Discount to a domain Discount
func ToDomainDiscount(m *models.Discount) *domain.Discount {
	if m == nil {
		return nil
	}
	return &domain.Discount{
		Kind:  domain.DiscountKind(m.Kind),
		Value: m.Value,
	}
}

// ToModelLineItems converts a slice of domain LineItems to model LineItems
func ToModelLineItems(ds []domain.LineItem) []models.LineItem {
	ms := make([]models.LineItem, len(ds))
	for i, d := range ds {
		ms[i] = models.LineItem{
			ProductID:   d.ProductID,
			Description: d.Description,
			UnitPrice:   d.UnitPrice,
			Quantity:    d.Quantity,
			PricingType: string(d.PricingType),
			Discount:    ToModelDiscount(d.Discount),
		}
	}
	return ms
}

// ToDomainLineItems converts a slice of model LineItems to domain LineItems
func ToDomainLineItems(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.LineItem{
			ProductID:   m.ProductID,
			Description: m.Description,
			UnitPrice:   m.UnitPrice,
			Quantity:    m.Quantity,
			PricingType: domain.PricingType(m.PricingType),
			Discount:    ToDomainDiscount(m.Discount),
		}
	}
	return ds
}

// ToModelPayments converts a slice of domain Payments to model Payments
func ToModelPayments(ds []domain.Payment) []models.Payment {
	ms := make([]models.Payment, len(ds))
	for i, d := range ds {
		ms[i] = models.Payment{
			Method:    string(d.Method),
			Amount:    d.Amount,
			Reference: d.Reference,
		}
	}
	return ms
}

// ToDomainPayments converts a slice of model Payments to domain Payments
func ToDomainPayments(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = domain.Payment{
			Method:    domain.PaymentMethod(m.Method),
			Amount:    m.Amount,
			Reference: m.Reference,
		}
	}
	return ds
}

// ToModelTotalsBreakdown converts a domain TotalsBreakdown to a model TotalsBreakdown
func ToModelTotalsBreakdown(d domain.TotalsBreakdown) models.TotalsBreakdown {
	return models.TotalsBreakdown{
		GrossSubtotal:      d.GrossSubtotal,
		LineDiscountTotal:  d.LineDiscountTotal,
		CartDiscountAmount: d.CartDiscountAmount,
		TaxableAmount:      d.TaxableAmount,
		Tax:                d.Tax,
		Total:              d.Total,
	}
}

// ToDomainTotalsBreakdown converts a model TotalsBreakdown to a domain TotalsBreakdown
func ToDomainTotalsBreakdown(m models.TotalsBreakdown) domain.TotalsBreakdown {
	return domain.TotalsBreakdown{
		GrossSubtotal:      m.GrossSubtotal,
		LineDiscountTotal:  m.LineDiscountTotal,
		CartDiscountAmount: m.CartDiscountAmount,
		TaxableAmount:      m.TaxableAmount,
		Tax:                m.Tax,
		Total:              m.Total,
	}
}

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:         d.SaleID,
		ShiftID:        d.ShiftID,
		CustomerID:     d.CustomerID,
		Type:           string(d.Type),
		OriginalSaleID: d.OriginalSaleID,
		Lines:          ToModelLineItems(d.Lines),
		Breakdown:      ToModelTotalsBreakdown(d.Breakdown),
		Payments:       ToModelPayments(d.Payments),
		Change:         d.Change,
		PointsUsed:     d.PointsUsed,
		PointsValue:    d.PointsValue,
		DepositApplied: d.DepositApplied,
		Timestamp:      d.Timestamp,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:         m.SaleID,
		ShiftID:        m.ShiftID,
		CustomerID:     m.CustomerID,
		Type:           domain.SaleType(m.Type),
		OriginalSaleID: m.OriginalSaleID,
		Lines:          ToDomainLineItems(m.Lines),
		Breakdown:      ToDomainTotalsBreakdown(m.Breakdown),
		Payments:       ToDomainPayments(m.Payments),
		Change:         m.Change,
		PointsUsed:     m.PointsUsed,
		PointsValue:    m.PointsValue,
		DepositApplied: m.DepositApplied,
		Timestamp:      m.Timestamp,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSaleSlice converts a slice of model Sales to a slice of domain Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
