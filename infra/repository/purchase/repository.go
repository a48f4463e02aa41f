// Package purchase implements the purchase repository over GORM.
package purchase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpal/finpal/infra/repository/model"
	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
	"github.com/finpal/finpal/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a purchase repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.PurchaseRepository {
	return &repo{db: db}
}

// Create implements repository.PurchaseRepository.
func (r *repo) Create(ctx context.Context, create dto.PurchaseCreate) error {
	p := model.Purchase{
		ID:                create.ID,
		CardID:            create.CardID,
		Description:       create.Description,
		Amount:            create.Amount,
		PurchaseDate:      create.PurchaseDate,
		Installments:      create.Installments,
		InstallmentAmount: create.InstallmentAmount,
		IsInstallment:     create.IsInstallment,
		CategoryID:        create.CategoryID,
		TransactionID:     create.TransactionID,
	}
	return r.db.WithContext(ctx).Create(&p).Error
}

// Get implements repository.PurchaseRepository.
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseRead, error) {
	var p model.Purchase
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapModelToReadDTO(&p), nil
}

// GetByTransactionID implements repository.PurchaseRepository.
func (r *repo) GetByTransactionID(
	ctx context.Context,
	transactionID uuid.UUID,
) (*dto.PurchaseRead, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapModelToReadDTO(&p), nil
}

func mapModelToReadDTO(p *model.Purchase) *dto.PurchaseRead {
	return &dto.PurchaseRead{
		ID:                p.ID,
		CardID:            p.CardID,
		Description:       p.Description,
		Amount:            p.Amount,
		PurchaseDate:      p.PurchaseDate,
		Installments:      p.Installments,
		InstallmentAmount: p.InstallmentAmount,
		IsInstallment:     p.IsInstallment,
		CategoryID:        p.CategoryID,
		TransactionID:     p.TransactionID,
		CreatedAt:         p.CreatedAt,
	}
}
