// Package transaction implements the creation entry point for financial
// events coming from external integrations. Credit-card expenses are routed
// to the purchase store, everything else lands in the generic transaction
// store where the insertion guard applies.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
	"github.com/finpal/finpal/pkg/repository"
	"github.com/finpal/finpal/pkg/service/billing"
)

// CreateInput describes a new financial event. CategoryID wins over
// CategoryName; when both are absent the user's default category for the
// transaction type is resolved.
type CreateInput struct {
	UserID       uuid.UUID
	Type         domain.TransactionType
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	CategoryID   *uuid.UUID
	CategoryName string
	AccountID    *uuid.UUID
	CreditCardID *uuid.UUID
	GoalID       *uuid.UUID
}

// Result kinds reported to the caller.
const (
	KindCreditCardPurchase = "credit_card_purchase"
	KindTransaction        = "transaction"
)

// CreateResult reports which store the event landed in and the created
// record's id.
type CreateResult struct {
	Kind          string
	PurchaseID    uuid.UUID
	TransactionID uuid.UUID
}

// Service is the transaction-creation entry point.
type Service struct {
	uow    repository.UnitOfWork
	bills  billing.BillGenerator
	logger *slog.Logger
}

// NewService creates a transaction service.
func NewService(uow repository.UnitOfWork, bills billing.BillGenerator, logger *slog.Logger) *Service {
	return &Service{uow: uow, bills: bills, logger: logger}
}

// Create records a new financial event. Credit-card expenses become
// purchases directly, bypassing the generic store and its insertion guard;
// this is the only sanctioned path for them.
func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, in.Type)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC()
	}

	if in.Type == domain.TransactionTypeExpense && in.CreditCardID != nil {
		return s.createPurchase(ctx, in)
	}
	return s.createTransaction(ctx, in)
}

func (s *Service) createPurchase(ctx context.Context, in CreateInput) (*CreateResult, error) {
	cardID := *in.CreditCardID
	purchaseID := uuid.New()
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		cards, err := uow.CardRepository()
		if err != nil {
			return err
		}
		card, err := cards.Get(ctx, cardID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrCardOwnership
			}
			return fmt.Errorf("load card %s: %w", cardID, err)
		}
		if card.UserID != in.UserID {
			return domain.ErrCardOwnership
		}
		purchases, err := uow.PurchaseRepository()
		if err != nil {
			return err
		}
		desc := in.Description
		if desc == "" {
			desc = domain.DefaultPurchaseDescription
		}
		return purchases.Create(ctx, dto.PurchaseCreate{
			ID:                purchaseID,
			CardID:            cardID,
			Description:       desc,
			Amount:            in.Amount,
			PurchaseDate:      in.Date,
			Installments:      1,
			InstallmentAmount: in.Amount,
			IsInstallment:     false,
			CategoryID:        in.CategoryID,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := s.bills.EnsureBill(ctx, cardID, in.Date, in.Amount); err != nil {
		s.logger.Warn("bill generation failed for new purchase",
			"purchase_id", purchaseID, "card_id", cardID, "error", err)
	}

	s.logger.Info("created credit card purchase",
		"purchase_id", purchaseID, "card_id", cardID, "user_id", in.UserID)
	return &CreateResult{Kind: KindCreditCardPurchase, PurchaseID: purchaseID}, nil
}

func (s *Service) createTransaction(ctx context.Context, in CreateInput) (*CreateResult, error) {
	txID := uuid.New()
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categoryID, err := s.resolveCategory(ctx, uow, in)
		if err != nil {
			return err
		}
		accountID, err := s.resolveAccount(ctx, uow, in)
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if err := txs.Create(ctx, dto.TransactionCreate{
			ID:           txID,
			UserID:       in.UserID,
			Type:         string(in.Type),
			Amount:       in.Amount,
			Date:         in.Date,
			Description:  in.Description,
			CategoryID:   categoryID,
			AccountID:    accountID,
			CreditCardID: in.CreditCardID,
			GoalID:       in.GoalID,
		}); err != nil {
			return err
		}
		if in.Type == domain.TransactionTypeIncome && in.GoalID != nil {
			goals, err := uow.GoalRepository()
			if err != nil {
				return err
			}
			if err := goals.AddProgress(ctx, *in.GoalID, in.Amount); err != nil {
				return fmt.Errorf("advance goal %s: %w", *in.GoalID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created transaction",
		"transaction_id", txID, "user_id", in.UserID, "type", in.Type)
	return &CreateResult{Kind: KindTransaction, TransactionID: txID}, nil
}

// resolveCategory returns the explicit category, a lookup by name, or the
// user's default for the transaction type, in that order.
func (s *Service) resolveCategory(
	ctx context.Context,
	uow repository.UnitOfWork,
	in CreateInput,
) (*uuid.UUID, error) {
	if in.CategoryID != nil {
		return in.CategoryID, nil
	}
	categories, err := uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	if in.CategoryName != "" {
		c, err := categories.GetByName(ctx, in.UserID, in.CategoryName)
		if err == nil {
			return &c.ID, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	c, err := categories.GetDefault(ctx, in.UserID, in.Type)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoCategory
		}
		return nil, err
	}
	return &c.ID, nil
}

// resolveAccount falls back to the user's default account. A user without
// one books the transaction with no account reference.
func (s *Service) resolveAccount(
	ctx context.Context,
	uow repository.UnitOfWork,
	in CreateInput,
) (*uuid.UUID, error) {
	if in.AccountID != nil {
		return in.AccountID, nil
	}
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	a, err := accounts.GetDefault(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a.ID, nil
}
