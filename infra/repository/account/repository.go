// Package account implements the account repository over GORM.
package account

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

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.AccountRepository {
	return &repo{db: db}
}

// GetDefault implements repository.AccountRepository.
func (r *repo) GetDefault(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	var a model.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.Account{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		IsDefault: a.IsDefault,
	}, nil
}
