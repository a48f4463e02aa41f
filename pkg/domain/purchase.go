package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPurchaseDescription is used when a migrated transaction carries no
// description of its own.
const DefaultPurchaseDescription = "Migrated transaction"

// Purchase is a credit-card purchase. It is the authoritative record for
// credit-card expenses; TransactionID back-references the ledger row a
// purchase was migrated from (at most one purchase per migrated row).
type Purchase struct {
	ID                uuid.UUID
	CardID            uuid.UUID
	Description       string
	Amount            decimal.Decimal
	PurchaseDate      time.Time
	Installments      int
	InstallmentAmount decimal.Decimal
	IsInstallment     bool
	CategoryID        *uuid.UUID
	TransactionID     *uuid.UUID
	CreatedAt         time.Time
}

// NewPurchaseFromTransaction builds the purchase equivalent of a flagged
// credit-card expense. Single installment, amount and date carried over,
// description defaulted when absent.
func NewPurchaseFromTransaction(t *Transaction) *Purchase {
	desc := t.Description
	if desc == "" {
		desc = DefaultPurchaseDescription
	}
	txID := t.ID
	return &Purchase{
		ID:                uuid.New(),
		CardID:            *t.CreditCardID,
		Description:       desc,
		Amount:            t.Amount,
		PurchaseDate:      t.Date,
		Installments:      1,
		InstallmentAmount: t.Amount,
		IsInstallment:     false,
		CategoryID:        t.CategoryID,
		TransactionID:     &txID,
	}
}
