package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies transactions and purchases. One category per user and
// type may be flagged as the default used when a request names none.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      TransactionType
	IsDefault bool
}

// Account is a money account transactions are booked against.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsDefault bool
}

// Goal is a savings goal. Income transactions linked to a goal advance
// CurrentAmount by their amount.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
}
