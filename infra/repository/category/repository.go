// Package category implements the category repository over GORM.
package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpal/finpal/infra/repository/model"
	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a category repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.CategoryRepository {
	return &repo{db: db}
}

// Get implements repository.CategoryRepository.
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return mapModelToDomain(&c), nil
}

// GetByName implements repository.CategoryRepository.
func (r *repo) GetByName(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&c).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return mapModelToDomain(&c), nil
}

// GetDefault implements repository.CategoryRepository.
func (r *repo) GetDefault(
	ctx context.Context,
	userID uuid.UUID,
	txType domain.TransactionType,
) (*domain.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND is_default = ?", userID, string(txType), true).
		First(&c).Error
	if err != nil {
		return nil, mapErr(err)
	}
	return mapModelToDomain(&c), nil
}

func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func mapModelToDomain(c *model.Category) *domain.Category {
	return &domain.Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      domain.TransactionType(c.Type),
		IsDefault: c.IsDefault,
	}
}
