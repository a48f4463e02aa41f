// Package transaction implements the transaction repository over GORM.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finpal/finpal/infra/repository/model"
	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
	"github.com/finpal/finpal/pkg/repository"
)

type repo struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repository.TransactionRepository {
	return &repo{db: db}
}

// Create implements repository.TransactionRepository. The insertion guard
// on the model rejects credit-card expenses here.
func (r *repo) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := model.Transaction{
		ID:           create.ID,
		UserID:       create.UserID,
		Type:         create.Type,
		Amount:       create.Amount,
		Date:         create.Date,
		Description:  create.Description,
		CategoryID:   create.CategoryID,
		AccountID:    create.AccountID,
		CreditCardID: create.CreditCardID,
		GoalID:       create.GoalID,
	}
	return r.db.WithContext(ctx).Create(&tx).Error
}

// Get implements repository.TransactionRepository.
func (r *repo) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var tx model.Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mapModelToDomain(&tx), nil
}

// Delete implements repository.TransactionRepository. Deleting a row that
// is already gone is an error so two concurrent repairs cannot both count
// the same migration.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// flaggedRow is the scanner's join projection.
type flaggedRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CategoryID   *uuid.UUID
	AccountID    *uuid.UUID
	CreditCardID *uuid.UUID
	CreatedAt    time.Time
	CardName     string
	CardUserID   uuid.UUID
}

// ListFlagged implements repository.TransactionRepository: credit-card
// expenses with no corresponding purchase, ordered by id for reproducible
// batch processing, joined with the owning card for display.
func (r *repo) ListFlagged(ctx context.Context) ([]*dto.FlaggedTransaction, error) {
	var rows []flaggedRow
	err := r.db.WithContext(ctx).
		Table("transactions AS t").
		Select("t.*, c.name AS card_name, c.user_id AS card_user_id").
		Joins("JOIN cards c ON c.id = t.credit_card_id").
		Where("t.type = ?", string(domain.TransactionTypeExpense)).
		Where("t.credit_card_id IS NOT NULL").
		Where("NOT EXISTS (SELECT 1 FROM purchases p WHERE p.transaction_id = t.id)").
		Order("t.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	flagged := make([]*dto.FlaggedTransaction, 0, len(rows))
	for i := range rows {
		flagged = append(flagged, mapRowToFlaggedDTO(&rows[i]))
	}
	return flagged, nil
}

// ListLinkedCardIDs implements repository.TransactionRepository.
func (r *repo) ListLinkedCardIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Distinct().
		Where("credit_card_id IS NOT NULL").
		Pluck("credit_card_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// --- Mappers ---

func mapModelToDomain(tx *model.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:           tx.ID,
		UserID:       tx.UserID,
		Type:         domain.TransactionType(tx.Type),
		Amount:       tx.Amount,
		Date:         tx.Date,
		Description:  tx.Description,
		CategoryID:   tx.CategoryID,
		AccountID:    tx.AccountID,
		CreditCardID: tx.CreditCardID,
		GoalID:       tx.GoalID,
		CreatedAt:    tx.CreatedAt,
	}
}

func mapRowToFlaggedDTO(row *flaggedRow) *dto.FlaggedTransaction {
	return &dto.FlaggedTransaction{
		TransactionRead: dto.TransactionRead{
			ID:           row.ID,
			UserID:       row.UserID,
			Type:         row.Type,
			Amount:       row.Amount,
			Date:         row.Date,
			Description:  row.Description,
			CategoryID:   row.CategoryID,
			AccountID:    row.AccountID,
			CreditCardID: row.CreditCardID,
			CreatedAt:    row.CreatedAt,
		},
		CardName:   row.CardName,
		CardUserID: row.CardUserID,
	}
}
