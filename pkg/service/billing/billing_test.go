package billing_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpal/finpal/internal/fixtures"
	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/service/billing"
)

func TestEnsureBill_CreatesBillForNewPeriod(t *testing.T) {
	uow := fixtures.NewUnitOfWork()
	svc := billing.NewService(uow, slog.Default())
	cardID := uuid.New()

	err := svc.EnsureBill(context.Background(), cardID,
		time.Date(2025, 9, 14, 13, 45, 0, 0, time.UTC), decimal.NewFromInt(80))
	require.NoError(t, err)

	require.Len(t, uow.BillRows, 1)
	b := uow.BillRows[0]
	assert.Equal(t, cardID, b.CardID)
	assert.Equal(t, domain.BillStatusOpen, b.Status)
	assert.True(t, b.RemainingAmount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), b.Period)
}

func TestEnsureBill_AccumulatesIntoExistingPeriod(t *testing.T) {
	uow := fixtures.NewUnitOfWork()
	svc := billing.NewService(uow, slog.Default())
	cardID := uuid.New()

	for _, amount := range []int64{80, 20} {
		err := svc.EnsureBill(context.Background(), cardID,
			time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(amount))
		require.NoError(t, err)
	}

	require.Len(t, uow.BillRows, 1, "same period reuses the bill")
	assert.True(t, uow.BillRows[0].RemainingAmount.Equal(decimal.NewFromInt(100)))
}

func TestRecalculate_SumsOutstandingBillsOnly(t *testing.T) {
	uow := fixtures.NewUnitOfWork()
	svc := billing.NewService(uow, slog.Default())
	cardID := uuid.New()
	uow.AddCard(&domain.Card{
		ID: cardID, Name: "Visa", TotalLimit: decimal.NewFromInt(1000),
	})
	uow.BillRows = []*domain.Bill{
		{ID: uuid.New(), CardID: cardID, Status: domain.BillStatusOpen, RemainingAmount: decimal.NewFromInt(100)},
		{ID: uuid.New(), CardID: cardID, Status: domain.BillStatusOverdue, RemainingAmount: decimal.NewFromInt(50)},
		{ID: uuid.New(), CardID: cardID, Status: domain.BillStatusPaid, RemainingAmount: decimal.NewFromInt(999)},
	}

	err := svc.Recalculate(context.Background(), cardID)
	require.NoError(t, err)

	card := uow.CardRows[cardID]
	assert.True(t, card.UsedLimit.Equal(decimal.NewFromInt(150)), "paid bills do not count")
	assert.True(t, card.AvailableLimit.Equal(decimal.NewFromInt(850)))
}

func TestRecalculate_UnknownCard(t *testing.T) {
	uow := fixtures.NewUnitOfWork()
	svc := billing.NewService(uow, slog.Default())

	err := svc.Recalculate(context.Background(), uuid.New())
	require.Error(t, err)
}
