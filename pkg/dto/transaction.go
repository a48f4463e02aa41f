// Package dto defines the data transfer objects exchanged between the
// service layer and the repositories.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is a DTO for inserting a row into the generic
// transaction store.
type TransactionCreate struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CategoryID   *uuid.UUID
	AccountID    *uuid.UUID
	CreditCardID *uuid.UUID
	GoalID       *uuid.UUID
}

// TransactionRead is a read-optimized DTO for transaction queries and
// API responses.
type TransactionRead struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	AccountID    *uuid.UUID      `json:"account_id,omitempty"`
	CreditCardID *uuid.UUID      `json:"credit_card_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// FlaggedTransaction is a TransactionRead enriched with card display fields
// for the repair report: the owning card's name and user.
type FlaggedTransaction struct {
	TransactionRead
	CardName   string    `json:"card_name"`
	CardUserID uuid.UUID `json:"card_user_id"`
}
