// Package repository implements the unit of work and GORM-backed
// repositories.
package repository

import (
	"context"
	"fmt"
	"reflect"

	infraaccount "github.com/paisabank/paisabank/infra/repository/account"
	infratransaction "github.com/paisabank/paisabank/infra/repository/transaction"
	infrauser "github.com/paisabank/paisabank/infra/repository/user"
	"github.com/paisabank/paisabank/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one
// abstraction. Every repository handed out inside Do is bound to the same
// *gorm.DB transaction, so the debit, credit and ledger append of a
// transfer commit or roll back together.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.AccountRepository)(nil)).Elem(): func(db *gorm.DB) any {
				return infraaccount.New(db)
			},
			reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem(): func(db *gorm.DB) any {
				return infratransaction.New(db)
			},
			reflect.TypeOf((*repository.UserRepository)(nil)).Elem(): func(db *gorm.DB) any {
				return infrauser.New(db)
			},
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW
// whose repositories use the transaction session.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
}

// GetRepository provides type-safe access to repositories using the
// transaction session (or the base session outside a transaction).
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// AccountRepository returns the account repository bound to the current
// session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repoAny, err := u.GetRepository(
		reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AccountRepository), nil
}

// TransactionRepository returns the ledger repository bound to the current
// session.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	repoAny, err := u.GetRepository(
		reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.TransactionRepository), nil
}

// UserRepository returns the user repository bound to the current session.
func (u *UoW) UserRepository() (repository.UserRepository, error) {
	repoAny, err := u.GetRepository(
		reflect.TypeOf((*repository.UserRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.UserRepository), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
