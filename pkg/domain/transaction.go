// Package domain holds the core entities of the credit-card transaction
// subsystem: ledger transactions, credit-card purchases, cards, bills and
// the invariants that tie them together.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes ledger entries.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a ledger entry in the generic transaction store.
//
// Invariant: a Transaction must never carry both an expense type and a
// credit card reference. Credit-card expenses are modeled as a Purchase;
// the store-level guard rejects direct writes that violate this, and the
// repair service migrates legacy rows that predate the guard.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         TransactionType
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CategoryID   *uuid.UUID
	AccountID    *uuid.UUID
	CreditCardID *uuid.UUID
	GoalID       *uuid.UUID
	CreatedAt    time.Time
}

// IsCreditCardExpense reports whether the transaction violates the
// credit-card invariant and belongs in the purchase store instead.
func (t *Transaction) IsCreditCardExpense() bool {
	return t.Type == TransactionTypeExpense && t.CreditCardID != nil
}
