// Package bill implements the bill repository over GORM.
package bill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finpal/finpal/infra/repository/model"
	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a bill repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.BillRepository {
	return &repo{db: db}
}

// Create implements repository.BillRepository.
func (r *repo) Create(ctx context.Context, bill *domain.Bill) error {
	b := model.Bill{
		ID:              bill.ID,
		CardID:          bill.CardID,
		Status:          string(bill.Status),
		RemainingAmount: bill.RemainingAmount,
		Period:          bill.Period,
	}
	return r.db.WithContext(ctx).Create(&b).Error
}

// GetByPeriod implements repository.BillRepository.
func (r *repo) GetByPeriod(
	ctx context.Context,
	cardID uuid.UUID,
	period time.Time,
) (*domain.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).
		Where("card_id = ? AND period = ?", cardID, period).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.Bill{
		ID:              b.ID,
		CardID:          b.CardID,
		Status:          domain.BillStatus(b.Status),
		RemainingAmount: b.RemainingAmount,
		Period:          b.Period,
	}, nil
}

// AddToRemaining implements repository.BillRepository.
func (r *repo) AddToRemaining(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&model.Bill{}).
		Where("id = ?", id).
		Update("remaining_amount", gorm.Expr("remaining_amount + ?", amount)).Error
}

// SumOutstanding implements repository.BillRepository.
func (r *repo) SumOutstanding(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.Bill{}).
		Select("SUM(remaining_amount)").
		Where("card_id = ?", cardID).
		Where("status IN ?", []string{
			string(domain.BillStatusOpen),
			string(domain.BillStatusClosed),
			string(domain.BillStatusOverdue),
		}).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
