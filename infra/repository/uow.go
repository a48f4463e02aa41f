// Package repository provides the GORM-backed unit of work tying the
// per-entity repositories to a shared transaction session.
package repository

import (
	"context"

	"gorm.io/gorm"

	accountrepo "github.com/finpal/finpal/infra/repository/account"
	billrepo "github.com/finpal/finpal/infra/repository/bill"
	cardrepo "github.com/finpal/finpal/infra/repository/card"
	categoryrepo "github.com/finpal/finpal/infra/repository/category"
	goalrepo "github.com/finpal/finpal/infra/repository/goal"
	purchaserepo "github.com/finpal/finpal/infra/repository/purchase"
	transactionrepo "github.com/finpal/finpal/infra/repository/transaction"
	"github.com/finpal/finpal/pkg/repository"
)

// UoW provides a transaction boundary and repository access in one
// abstraction. All repositories handed out inside Do share the transaction
// session, so the migrator's purchase insert and transaction delete commit
// or roll back as a pair.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// session returns the transaction session when inside Do, the base
// connection otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do runs the given function in a transaction boundary, providing a UoW
// whose repositories are bound to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.session().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return transactionrepo.New(u.session()), nil
}

// PurchaseRepository implements repository.UnitOfWork.
func (u *UoW) PurchaseRepository() (repository.PurchaseRepository, error) {
	return purchaserepo.New(u.session()), nil
}

// CardRepository implements repository.UnitOfWork.
func (u *UoW) CardRepository() (repository.CardRepository, error) {
	return cardrepo.New(u.session()), nil
}

// BillRepository implements repository.UnitOfWork.
func (u *UoW) BillRepository() (repository.BillRepository, error) {
	return billrepo.New(u.session()), nil
}

// CategoryRepository implements repository.UnitOfWork.
func (u *UoW) CategoryRepository() (repository.CategoryRepository, error) {
	return categoryrepo.New(u.session()), nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return accountrepo.New(u.session()), nil
}

// GoalRepository implements repository.UnitOfWork.
func (u *UoW) GoalRepository() (repository.GoalRepository, error) {
	return goalrepo.New(u.session()), nil
}
