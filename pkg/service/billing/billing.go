// Package billing maintains the billing-cycle records and derivative limit
// fields of credit cards. The repair and transaction services consume it
// through the BillGenerator and LimitRecalculator interfaces and treat both
// operations as opaque.
package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/repository"
)

// BillGenerator ensures billing-cycle records reflect a new purchase.
type BillGenerator interface {
	// EnsureBill finds or creates the bill covering purchaseDate for the
	// card and adds amount to its remaining balance.
	EnsureBill(ctx context.Context, cardID uuid.UUID, purchaseDate time.Time, amount decimal.Decimal) error
}

// LimitRecalculator recomputes a card's derivative limit fields from its
// outstanding bills.
type LimitRecalculator interface {
	Recalculate(ctx context.Context, cardID uuid.UUID) error
}

// Service implements BillGenerator and LimitRecalculator over the injected
// unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a billing service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// billPeriod normalizes a purchase date to the billing period it falls in,
// the first day of its month in UTC.
func billPeriod(purchaseDate time.Time) time.Time {
	y, m, _ := purchaseDate.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// EnsureBill implements BillGenerator.
func (s *Service) EnsureBill(
	ctx context.Context,
	cardID uuid.UUID,
	purchaseDate time.Time,
	amount decimal.Decimal,
) error {
	period := billPeriod(purchaseDate)
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		bills, err := uow.BillRepository()
		if err != nil {
			return err
		}
		bill, err := bills.GetByPeriod(ctx, cardID, period)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return bills.Create(ctx, &domain.Bill{
				ID:              uuid.New(),
				CardID:          cardID,
				Status:          domain.BillStatusOpen,
				RemainingAmount: amount,
				Period:          period,
			})
		case err != nil:
			return fmt.Errorf("lookup bill for card %s: %w", cardID, err)
		}
		return bills.AddToRemaining(ctx, bill.ID, amount)
	})
}

// Recalculate implements LimitRecalculator. It recomputes used_limit from
// the card's outstanding bills and derives available_limit from the total.
func (s *Service) Recalculate(ctx context.Context, cardID uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		cards, err := uow.CardRepository()
		if err != nil {
			return err
		}
		bills, err := uow.BillRepository()
		if err != nil {
			return err
		}
		card, err := cards.Get(ctx, cardID)
		if err != nil {
			return fmt.Errorf("load card %s: %w", cardID, err)
		}
		used, err := bills.SumOutstanding(ctx, cardID)
		if err != nil {
			return fmt.Errorf("sum outstanding bills for card %s: %w", cardID, err)
		}
		available := card.TotalLimit.Sub(used)
		s.logger.Info("recalculated card limits",
			"card_id", cardID, "used_limit", used, "available_limit", available)
		return cards.UpdateLimits(ctx, cardID, used, available)
	})
}
