// Package model defines the GORM models backing the subsystem's tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finpal/finpal/pkg/domain"
)

// Transaction is a row in the generic transaction store.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(10);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Date         time.Time       `gorm:"not null"`
	Description  string          `gorm:"type:varchar(255)"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid"`
	AccountID    *uuid.UUID      `gorm:"type:uuid"`
	CreditCardID *uuid.UUID      `gorm:"type:uuid;index"`
	GoalID       *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// BeforeCreate is the insertion guard: the generic store rejects expenses
// carrying a credit card reference on every write path, the same way the
// historical database trigger did. It runs before any other validation so
// its guidance message is never masked.
func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.Type == string(domain.TransactionTypeExpense) && t.CreditCardID != nil {
		return domain.ErrCreditCardExpense
	}
	return nil
}

// Purchase is a credit-card purchase row. The unique index on
// TransactionID guarantees at most one purchase per migrated transaction,
// which makes concurrent repair re-runs idempotent.
type Purchase struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CardID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description       string          `gorm:"type:varchar(255);not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PurchaseDate      time.Time       `gorm:"not null"`
	Installments      int             `gorm:"not null;default:1"`
	InstallmentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsInstallment     bool            `gorm:"not null;default:false"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid"`
	TransactionID     *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	CreatedAt         time.Time
}

// Card is a credit card row. UsedLimit and AvailableLimit are derivative
// and only written by the limit recalculator.
type Card struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	TotalLimit     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	UsedLimit      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AvailableLimit decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt      time.Time
}

// Bill is a billing-cycle row, one per card and period.
type Bill struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CardID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bills_card_period"`
	Status          string          `gorm:"type:varchar(10);not null;default:'open'"`
	RemainingAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Period          time.Time       `gorm:"not null;uniqueIndex:idx_bills_card_period"`
	CreatedAt       time.Time
}

// Category classifies transactions and purchases.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(10);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
}

// Account is a money account row.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
}

// Goal is a savings goal row.
type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}
