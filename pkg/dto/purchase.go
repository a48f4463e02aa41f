package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseCreate is a DTO for inserting a credit-card purchase.
type PurchaseCreate struct {
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
}

// PurchaseRead is a read-optimized DTO for purchase queries and API
// responses.
type PurchaseRead struct {
	ID                uuid.UUID       `json:"id"`
	CardID            uuid.UUID       `json:"card_id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	PurchaseDate      time.Time       `json:"purchase_date"`
	Installments      int             `json:"installments"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	IsInstallment     bool            `json:"is_installment"`
	CategoryID        *uuid.UUID      `json:"category_id,omitempty"`
	TransactionID     *uuid.UUID      `json:"transaction_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}
