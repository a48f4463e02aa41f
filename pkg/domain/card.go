package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card is a credit card. UsedLimit and AvailableLimit are derivative state:
// they are only ever written by the limit recalculator, which keeps
// available_limit = total_limit - used_limit and
// used_limit = sum of remaining amounts over open/closed/overdue bills.
type Card struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	TotalLimit     decimal.Decimal
	UsedLimit      decimal.Decimal
	AvailableLimit decimal.Decimal
}

// BillStatus is the lifecycle state of a billing-cycle record.
type BillStatus string

const (
	BillStatusOpen    BillStatus = "open"
	BillStatusClosed  BillStatus = "closed"
	BillStatusOverdue BillStatus = "overdue"
	BillStatusPaid    BillStatus = "paid"
)

// Outstanding reports whether the bill still counts against the card limit.
func (s BillStatus) Outstanding() bool {
	return s == BillStatusOpen || s == BillStatusClosed || s == BillStatusOverdue
}

// Bill is a billing-cycle aggregate of purchases for a card. Bills are
// created and mutated exclusively by the bill generator.
type Bill struct {
	ID              uuid.UUID
	CardID          uuid.UUID
	Status          BillStatus
	RemainingAmount decimal.Decimal
	// Period is the first day of the billing month the bill covers.
	Period time.Time
}
