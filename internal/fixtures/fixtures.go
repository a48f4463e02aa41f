// Package fixtures provides in-memory fakes of the repository contracts for
// unit tests. The fake unit of work snapshots its state on Do and restores
// it when the callback fails, mimicking the rollback behavior of the real
// GORM-backed implementation.
package fixtures

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
	"github.com/finpal/finpal/pkg/repository"
)

// UnitOfWork is an in-memory repository.UnitOfWork. Error fields inject
// failures into individual operations.
type UnitOfWork struct {
	TransactionRows []*domain.Transaction
	PurchaseRows    []dto.PurchaseCreate
	CardRows        map[uuid.UUID]*domain.Card
	BillRows        []*domain.Bill
	CategoryRows    []*domain.Category
	AccountRows     []*domain.Account
	GoalProgress    map[uuid.UUID]decimal.Decimal

	DoErr                error
	ListFlaggedErr       error
	TransactionCreateErr error
	TransactionDeleteErr error
	PurchaseCreateErr    error
	GoalAddProgressErr   error
}

// NewUnitOfWork creates an empty fake unit of work.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		CardRows:     make(map[uuid.UUID]*domain.Card),
		GoalProgress: make(map[uuid.UUID]decimal.Decimal),
	}
}

type snapshot struct {
	transactions []*domain.Transaction
	purchases    []dto.PurchaseCreate
	bills        []*domain.Bill
	goals        map[uuid.UUID]decimal.Decimal
}

func (u *UnitOfWork) snapshot() snapshot {
	s := snapshot{
		transactions: append([]*domain.Transaction(nil), u.TransactionRows...),
		purchases:    append([]dto.PurchaseCreate(nil), u.PurchaseRows...),
		bills:        append([]*domain.Bill(nil), u.BillRows...),
		goals:        make(map[uuid.UUID]decimal.Decimal, len(u.GoalProgress)),
	}
	for id, v := range u.GoalProgress {
		s.goals[id] = v
	}
	return s
}

func (u *UnitOfWork) restore(s snapshot) {
	u.TransactionRows = s.transactions
	u.PurchaseRows = s.purchases
	u.BillRows = s.bills
	u.GoalProgress = s.goals
}

// Do implements repository.UnitOfWork with snapshot-based rollback.
func (u *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.DoErr != nil {
		return u.DoErr
	}
	s := u.snapshot()
	if err := fn(u); err != nil {
		u.restore(s)
		return err
	}
	return nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	return &transactionRepo{u}, nil
}

// PurchaseRepository implements repository.UnitOfWork.
func (u *UnitOfWork) PurchaseRepository() (repository.PurchaseRepository, error) {
	return &purchaseRepo{u}, nil
}

// CardRepository implements repository.UnitOfWork.
func (u *UnitOfWork) CardRepository() (repository.CardRepository, error) {
	return &cardRepo{u}, nil
}

// BillRepository implements repository.UnitOfWork.
func (u *UnitOfWork) BillRepository() (repository.BillRepository, error) {
	return &billRepo{u}, nil
}

// CategoryRepository implements repository.UnitOfWork.
func (u *UnitOfWork) CategoryRepository() (repository.CategoryRepository, error) {
	return &categoryRepo{u}, nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepo{u}, nil
}

// GoalRepository implements repository.UnitOfWork.
func (u *UnitOfWork) GoalRepository() (repository.GoalRepository, error) {
	return &goalRepo{u}, nil
}

// AddTransaction seeds the generic store, bypassing the insertion guard the
// way legacy rows did.
func (u *UnitOfWork) AddTransaction(tx *domain.Transaction) {
	u.TransactionRows = append(u.TransactionRows, tx)
}

// AddCard seeds a credit card.
func (u *UnitOfWork) AddCard(card *domain.Card) {
	u.CardRows[card.ID] = card
}

// PurchaseByTransactionID returns the stored purchase migrated from the
// given transaction, or nil.
func (u *UnitOfWork) PurchaseByTransactionID(txID uuid.UUID) *dto.PurchaseCreate {
	for i := range u.PurchaseRows {
		p := u.PurchaseRows[i]
		if p.TransactionID != nil && *p.TransactionID == txID {
			return &p
		}
	}
	return nil
}

// HasTransaction reports whether the generic store still holds the row.
func (u *UnitOfWork) HasTransaction(id uuid.UUID) bool {
	for _, tx := range u.TransactionRows {
		if tx.ID == id {
			return true
		}
	}
	return false
}
