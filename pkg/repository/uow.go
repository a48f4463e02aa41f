package repository

import "context"

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. All repositories obtained inside Do share the same DB
// session, so a purchase insert and the source transaction delete commit or
// roll back as a pair.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. The UnitOfWork passed to
	// fn hands out repositories bound to that transaction. If fn returns an
	// error the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	TransactionRepository() (TransactionRepository, error)
	PurchaseRepository() (PurchaseRepository, error)
	CardRepository() (CardRepository, error)
	BillRepository() (BillRepository, error)
	CategoryRepository() (CategoryRepository, error)
	AccountRepository() (AccountRepository, error)
	GoalRepository() (GoalRepository, error)
}
