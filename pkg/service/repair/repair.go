// Package repair detects and fixes transactions that were written into the
// generic transaction store when they should have been recorded as
// credit-card purchases. Each flagged row is migrated in its own
// transaction boundary so one bad row never aborts the batch.
package repair

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
	"github.com/finpal/finpal/pkg/repository"
	"github.com/finpal/finpal/pkg/service/billing"
)

// Result aggregates a repair run. Errors holds one message per row that
// could not be migrated, in processing order.
type Result struct {
	FixedTransactions int      `json:"fixed_transactions"`
	CreatedPurchases  int      `json:"created_purchases"`
	Errors            []string `json:"errors"`
}

// Service drives consistency checks and batch repairs.
type Service struct {
	uow    repository.UnitOfWork
	bills  billing.BillGenerator
	limits billing.LimitRecalculator
	logger *slog.Logger
}

// NewService creates a repair service.
func NewService(
	uow repository.UnitOfWork,
	bills billing.BillGenerator,
	limits billing.LimitRecalculator,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, bills: bills, limits: limits, logger: logger}
}

// Check runs the consistency scanner in reporting mode: it returns every
// credit-card expense lacking a corresponding purchase, enriched with the
// owning card's name and user. Read-only and safe to call repeatedly.
func (s *Service) Check(ctx context.Context) ([]*dto.FlaggedTransaction, error) {
	txRepo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	flagged, err := txRepo.ListFlagged(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan for flagged transactions: %w", err)
	}
	return flagged, nil
}

// Repair migrates every flagged transaction into a purchase, deleting the
// source row, and finishes with a limit-recalculation sweep. Per-row
// failures are collected into the result; only a failure to enumerate the
// candidates is fatal.
func (s *Service) Repair(ctx context.Context) (*Result, error) {
	flagged, err := s.Check(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: []string{}}
	touched := make(map[uuid.UUID]struct{})

	for _, ft := range flagged {
		cardID, err := s.migrate(ctx, ft)
		if err != nil {
			s.logger.Error("failed to migrate transaction",
				"transaction_id", ft.ID, "error", err)
			result.Errors = append(result.Errors,
				fmt.Sprintf("transaction %s: %v", ft.ID, err))
			continue
		}
		result.CreatedPurchases++
		result.FixedTransactions++
		touched[cardID] = struct{}{}

		// Bill regeneration failure after the migration committed is
		// non-fatal: the misfiled row is gone and the purchase exists.
		if err := s.bills.EnsureBill(ctx, cardID, ft.Date, ft.Amount); err != nil {
			s.logger.Warn("bill regeneration failed after migration",
				"transaction_id", ft.ID, "card_id", cardID, "error", err)
		}
	}

	s.sweepLimits(ctx, touched)
	return result, nil
}

// migrate converts one flagged transaction into a purchase and deletes the
// source row as a single atomic unit. It returns the card the purchase was
// booked against.
func (s *Service) migrate(ctx context.Context, ft *dto.FlaggedTransaction) (uuid.UUID, error) {
	if ft.CreditCardID == nil {
		return uuid.Nil, fmt.Errorf("flagged transaction %s has no credit card", ft.ID)
	}
	cardID := *ft.CreditCardID

	tx := domain.Transaction{
		ID:           ft.ID,
		UserID:       ft.UserID,
		Type:         domain.TransactionType(ft.Type),
		Amount:       ft.Amount,
		Date:         ft.Date,
		Description:  ft.Description,
		CategoryID:   ft.CategoryID,
		CreditCardID: ft.CreditCardID,
	}
	p := domain.NewPurchaseFromTransaction(&tx)

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		purchases, err := uow.PurchaseRepository()
		if err != nil {
			return err
		}
		txs, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if err := purchases.Create(ctx, dto.PurchaseCreate{
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
		}); err != nil {
			// No purchase, no deletion: the source row must survive.
			return fmt.Errorf("create purchase: %w", err)
		}
		if err := txs.Delete(ctx, ft.ID); err != nil {
			return fmt.Errorf("delete source transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("migrated transaction to purchase",
		"transaction_id", ft.ID, "purchase_id", p.ID, "card_id", cardID)
	return cardID, nil
}

// sweepLimits recalculates limits for every card still referenced by a
// credit-card-linked transaction, plus the cards touched by this batch.
// The broad sweep mirrors the historical repair behavior; recalculating a
// card with nothing left to fix is harmless. Failures are logged only.
func (s *Service) sweepLimits(ctx context.Context, touched map[uuid.UUID]struct{}) {
	txRepo, err := s.uow.TransactionRepository()
	if err == nil {
		linked, err := txRepo.ListLinkedCardIDs(ctx)
		if err != nil {
			s.logger.Warn("could not enumerate linked cards for limit sweep", "error", err)
		} else {
			for _, id := range linked {
				touched[id] = struct{}{}
			}
		}
	}
	for id := range touched {
		if err := s.limits.Recalculate(ctx, id); err != nil {
			s.logger.Warn("limit recalculation failed", "card_id", id, "error", err)
		}
	}
}
