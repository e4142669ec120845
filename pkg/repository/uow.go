package repository

import (
	"context"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access.
//
// GetRepository is part of UnitOfWork so that every repository obtained
// inside Do is bound to the same DB session; the debit, credit and ledger
// append of a transfer must all ride one transaction.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary. The
	// provided function receives a UnitOfWork whose repositories are
	// bound to that transaction. If the function returns an error, the
	// transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction/session.
	//
	// Example:
	//   repoAny, err := uow.GetRepository(reflect.TypeOf((*AccountRepository)(nil)).Elem())
	//   repo := repoAny.(AccountRepository)
	GetRepository(repoType reflect.Type) (any, error)

	// Type-safe convenience accessors.
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
	UserRepository() (UserRepository, error)
}
