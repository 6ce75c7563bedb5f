package mapping

import (
	"github.com/dukapoint/pos_backend/internal/core/domain"
	"github.com/dukapoint/pos_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		ShiftID:     d.ShiftID,
		Description: d.Description,
		Amount:      d.Amount,
		Source:      string(d.Source),
		Timestamp:   d.Timestamp,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		ShiftID:     m.ShiftID,
		Description: m.Description,
		Amount:      m.Amount,
		Source:      domain.CashSource(m.Source),
		Timestamp:   m.Timestamp,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelSupplierPayment converts a domain SupplierPayment to a model SupplierPayment
func ToModelSupplierPayment(d domain.SupplierPayment) models.SupplierPayment {
	return models.SupplierPayment{
		PaymentID:   d.PaymentID,
		ShiftID:     d.ShiftID,
		SupplierID:  d.SupplierID,
		Amount:      d.Amount,
		Method:      string(d.Method),
		Timestamp:   d.Timestamp,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplierPayment converts a model SupplierPayment to a domain SupplierPayment
func ToDomainSupplierPayment(m models.SupplierPayment) domain.SupplierPayment {
	return domain.SupplierPayment{
		PaymentID:   m.PaymentID,
		ShiftID:     m.ShiftID,
		SupplierID:  m.SupplierID,
		Amount:      m.Amount,
		Method:      domain.CashSource(m.Method),
		Timestamp:   m.Timestamp,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierPaymentSlice converts a slice of model SupplierPayments to domain SupplierPayments
func ToDomainSupplierPaymentSlice(ms []models.SupplierPayment) []domain.SupplierPayment {
	ds := make([]domain.SupplierPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplierPayment(m)
	}
	return ds
}

// ToModelBankDeposit converts a domain BankDeposit to a model BankDeposit
func ToModelBankDeposit(d domain.BankDeposit) models.BankDeposit {
	return models.BankDeposit{
		DepositID:   d.DepositID,
		ShiftID:     d.ShiftID,
		Amount:      d.Amount,
		Reference:   d.Reference,
		Timestamp:   d.Timestamp,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankDeposit converts a model BankDeposit to a domain BankDeposit
func ToDomainBankDeposit(m models.BankDeposit) domain.BankDeposit {
	return domain.BankDeposit{
		DepositID:   m.DepositID,
		ShiftID:     m.ShiftID,
		Amount:      m.Amount,
		Reference:   m.Reference,
		Timestamp:   m.Timestamp,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankDepositSlice converts a slice of model BankDeposits to domain BankDeposits
func ToDomainBankDepositSlice(ms []models.BankDeposit) []domain.BankDeposit {
	ds := make([]domain.BankDeposit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankDeposit(m)
	}
	return ds
}
