// Package card implements the card repository over GORM.
package card

import (
	"context"
	"errors"

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

// New creates a card repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.CardRepository {
	return &repo{db: db}
}

// Get implements repository.CardRepository.
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var c model.Card
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.Card{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		TotalLimit:     c.TotalLimit,
		UsedLimit:      c.UsedLimit,
		AvailableLimit: c.AvailableLimit,
	}, nil
}

// UpdateLimits implements repository.CardRepository.
func (r *repo) UpdateLimits(
	ctx context.Context,
	id uuid.UUID,
	used, available decimal.Decimal,
) error {
	return r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"used_limit":      used,
			"available_limit": available,
		}).Error
}
