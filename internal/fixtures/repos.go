package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
)

type transactionRepo struct{ u *UnitOfWork }

func (r *transactionRepo) Create(_ context.Context, create dto.TransactionCreate) error {
	if r.u.TransactionCreateErr != nil {
		return r.u.TransactionCreateErr
	}
	// Insertion guard, same predicate as the real store.
	if create.Type == string(domain.TransactionTypeExpense) && create.CreditCardID != nil {
		return domain.ErrCreditCardExpense
	}
	r.u.TransactionRows = append(r.u.TransactionRows, &domain.Transaction{
		ID:           create.ID,
		UserID:       create.UserID,
		Type:         domain.TransactionType(create.Type),
		Amount:       create.Amount,
		Date:         create.Date,
		Description:  create.Description,
		CategoryID:   create.CategoryID,
		AccountID:    create.AccountID,
		CreditCardID: create.CreditCardID,
		GoalID:       create.GoalID,
	})
	return nil
}

func (r *transactionRepo) Get(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	for _, tx := range r.u.TransactionRows {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *transactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.u.TransactionDeleteErr != nil {
		return r.u.TransactionDeleteErr
	}
	for i, tx := range r.u.TransactionRows {
		if tx.ID == id {
			r.u.TransactionRows = append(
				r.u.TransactionRows[:i:i], r.u.TransactionRows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
}

func (r *transactionRepo) ListFlagged(_ context.Context) ([]*dto.FlaggedTransaction, error) {
	if r.u.ListFlaggedErr != nil {
		return nil, r.u.ListFlaggedErr
	}
	var flagged []*dto.FlaggedTransaction
	for _, tx := range r.u.TransactionRows {
		if !tx.IsCreditCardExpense() {
			continue
		}
		if r.u.PurchaseByTransactionID(tx.ID) != nil {
			continue
		}
		ft := &dto.FlaggedTransaction{
			TransactionRead: dto.TransactionRead{
				ID:           tx.ID,
				UserID:       tx.UserID,
				Type:         string(tx.Type),
				Amount:       tx.Amount,
				Date:         tx.Date,
				Description:  tx.Description,
				CategoryID:   tx.CategoryID,
				AccountID:    tx.AccountID,
				CreditCardID: tx.CreditCardID,
			},
		}
		if card, ok := r.u.CardRows[*tx.CreditCardID]; ok {
			ft.CardName = card.Name
			ft.CardUserID = card.UserID
		}
		flagged = append(flagged, ft)
	}
	return flagged, nil
}

func (r *transactionRepo) ListLinkedCardIDs(_ context.Context) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, tx := range r.u.TransactionRows {
		if tx.CreditCardID == nil {
			continue
		}
		if _, ok := seen[*tx.CreditCardID]; ok {
			continue
		}
		seen[*tx.CreditCardID] = struct{}{}
		ids = append(ids, *tx.CreditCardID)
	}
	return ids, nil
}

type purchaseRepo struct{ u *UnitOfWork }

func (r *purchaseRepo) Create(_ context.Context, create dto.PurchaseCreate) error {
	if r.u.PurchaseCreateErr != nil {
		return r.u.PurchaseCreateErr
	}
	// Unique index on transaction_id.
	if create.TransactionID != nil && r.u.PurchaseByTransactionID(*create.TransactionID) != nil {
		return fmt.Errorf("duplicate purchase for transaction %s", *create.TransactionID)
	}
	r.u.PurchaseRows = append(r.u.PurchaseRows, create)
	return nil
}

func (r *purchaseRepo) Get(_ context.Context, id uuid.UUID) (*dto.PurchaseRead, error) {
	for i := range r.u.PurchaseRows {
		if r.u.PurchaseRows[i].ID == id {
			return readFromCreate(&r.u.PurchaseRows[i]), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *purchaseRepo) GetByTransactionID(
	_ context.Context,
	transactionID uuid.UUID,
) (*dto.PurchaseRead, error) {
	if p := r.u.PurchaseByTransactionID(transactionID); p != nil {
		return readFromCreate(p), nil
	}
	return nil, domain.ErrNotFound
}

func readFromCreate(p *dto.PurchaseCreate) *dto.PurchaseRead {
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
	}
}

type cardRepo struct{ u *UnitOfWork }

func (r *cardRepo) Get(_ context.Context, id uuid.UUID) (*domain.Card, error) {
	if card, ok := r.u.CardRows[id]; ok {
		return card, nil
	}
	return nil, domain.ErrNotFound
}

func (r *cardRepo) UpdateLimits(
	_ context.Context,
	id uuid.UUID,
	used, available decimal.Decimal,
) error {
	card, ok := r.u.CardRows[id]
	if !ok {
		return domain.ErrNotFound
	}
	card.UsedLimit = used
	card.AvailableLimit = available
	return nil
}

type billRepo struct{ u *UnitOfWork }

func (r *billRepo) Create(_ context.Context, bill *domain.Bill) error {
	r.u.BillRows = append(r.u.BillRows, bill)
	return nil
}

func (r *billRepo) GetByPeriod(
	_ context.Context,
	cardID uuid.UUID,
	period time.Time,
) (*domain.Bill, error) {
	for _, b := range r.u.BillRows {
		if b.CardID == cardID && b.Period.Equal(period) {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *billRepo) AddToRemaining(_ context.Context, id uuid.UUID, amount decimal.Decimal) error {
	for _, b := range r.u.BillRows {
		if b.ID == id {
			b.RemainingAmount = b.RemainingAmount.Add(amount)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *billRepo) SumOutstanding(_ context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, b := range r.u.BillRows {
		if b.CardID == cardID && b.Status.Outstanding() {
			sum = sum.Add(b.RemainingAmount)
		}
	}
	return sum, nil
}

type categoryRepo struct{ u *UnitOfWork }

func (r *categoryRepo) Get(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	for _, c := range r.u.CategoryRows {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *categoryRepo) GetByName(
	_ context.Context,
	userID uuid.UUID,
	name string,
) (*domain.Category, error) {
	for _, c := range r.u.CategoryRows {
		if c.UserID == userID && c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *categoryRepo) GetDefault(
	_ context.Context,
	userID uuid.UUID,
	txType domain.TransactionType,
) (*domain.Category, error) {
	for _, c := range r.u.CategoryRows {
		if c.UserID == userID && c.Type == txType && c.IsDefault {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type accountRepo struct{ u *UnitOfWork }

func (r *accountRepo) GetDefault(_ context.Context, userID uuid.UUID) (*domain.Account, error) {
	for _, a := range r.u.AccountRows {
		if a.UserID == userID && a.IsDefault {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

type goalRepo struct{ u *UnitOfWork }

func (r *goalRepo) AddProgress(_ context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if r.u.GoalAddProgressErr != nil {
		return r.u.GoalAddProgressErr
	}
	r.u.GoalProgress[id] = r.u.GoalProgress[id].Add(amount)
	return nil
}
