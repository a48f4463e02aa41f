// Package repository defines the data access contracts of the subsystem.
// Implementations live in infra/repository; services depend only on these
// interfaces so the repair logic is unit-testable without a live database.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
)

// TransactionRepository defines data access for the generic transaction
// store.
type TransactionRepository interface {
	Create(ctx context.Context, create dto.TransactionCreate) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListFlagged returns credit-card expenses that have no corresponding
	// purchase, ordered by transaction id, enriched with card display fields.
	ListFlagged(ctx context.Context) ([]*dto.FlaggedTransaction, error)
	// ListLinkedCardIDs returns the distinct cards still referenced by any
	// credit-card-linked transaction.
	ListLinkedCardIDs(ctx context.Context) ([]uuid.UUID, error)
}

// PurchaseRepository defines data access for credit-card purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, create dto.PurchaseCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseRead, error)
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*dto.PurchaseRead, error)
}

// CardRepository defines data access for credit cards.
type CardRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	// UpdateLimits persists recomputed used/available limits for a card.
	UpdateLimits(ctx context.Context, id uuid.UUID, used, available decimal.Decimal) error
}

// BillRepository defines data access for billing-cycle records.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	// GetByPeriod returns the bill covering the given period for a card, or
	// domain.ErrNotFound when none exists yet.
	GetByPeriod(ctx context.Context, cardID uuid.UUID, period time.Time) (*domain.Bill, error)
	AddToRemaining(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	// SumOutstanding returns the sum of remaining amounts over the card's
	// open, closed and overdue bills.
	SumOutstanding(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error)
}

// CategoryRepository defines the category lookups the creation entry point
// needs.
type CategoryRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Category, error)
	GetDefault(ctx context.Context, userID uuid.UUID, txType domain.TransactionType) (*domain.Category, error)
}

// AccountRepository defines the account lookups the creation entry point
// needs.
type AccountRepository interface {
	GetDefault(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
}

// GoalRepository defines data access for savings goals.
type GoalRepository interface {
	AddProgress(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}
