// Package goal implements the goal repository over GORM.
package goal

import (
	"context"
	"fmt"

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

// New creates a goal repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.GoalRepository {
	return &repo{db: db}
}

// AddProgress implements repository.GoalRepository.
func (r *repo) AddProgress(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Goal{}).
		Where("id = ?", id).
		Update("current_amount", gorm.Expr("current_amount + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
