package repository

import (
	"context"

	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account data access
// operations. GetForUpdate and AdjustBalance are only meaningful inside a
// unit of work: GetForUpdate takes a row lock scoped to the surrounding
// transaction, and AdjustBalance must commit or roll back together with
// the ledger append.
type AccountRepository interface {
	GetByAccountNo(ctx context.Context, accountNo string) (*dto.AccountRead, error)
	// GetForUpdate loads the account with a FOR UPDATE row lock held
	// until the enclosing transaction commits or rolls back.
	GetForUpdate(ctx context.Context, accountNo string) (*dto.AccountRead, error)
	// AdjustBalance applies a signed delta to the account balance.
	AdjustBalance(ctx context.Context, accountNo string, delta decimal.Decimal) error
	ListByOwner(ctx context.Context, email, phone string) ([]*dto.AccountRead, error)
	GetPrimary(ctx context.Context, email, phone string) (*dto.AccountRead, error)
	Create(ctx context.Context, create *dto.AccountCreate) error
}

// TransactionRepository defines the interface for the append-only ledger.
// Records are never updated or deleted.
type TransactionRepository interface {
	// Create appends one record and returns it as stored. A collision on
	// the idempotency key yields transaction.ErrDuplicateTransfer.
	Create(ctx context.Context, create *dto.TransactionCreate) (*dto.TransactionRead, error)
	// ListByAccount returns records filed under, sent from, or sent to
	// the account, newest first.
	ListByAccount(ctx context.Context, accountNo string) ([]*dto.TransactionRead, error)
	// Recent returns the newest record touching the account.
	Recent(ctx context.Context, accountNo string) (*dto.TransactionRead, error)
}

// UserRepository defines the interface for user data access operations.
// The transfer core only reads from it.
type UserRepository interface {
	GetByEmailPhone(ctx context.Context, email, phone string) (*dto.UserRead, error)
	// Search matches users by UPI id or phone number substring.
	Search(ctx context.Context, query string) ([]*dto.UserRead, error)
	Create(ctx context.Context, create *dto.UserCreate) error
}
