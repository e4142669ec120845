// Package account holds the account entity and the invariants the transfer
// operation must protect: balances never go negative, amounts are positive
// rupee values with at most two decimal places, and a transfer always names
// two distinct, existing accounts.
package account

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientBalance is returned when the source account cannot
	// cover the transfer amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAmountMustBePositive is returned when a transfer amount is zero
	// or negative.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrAmountPrecision is returned when an amount carries more than two
	// decimal places.
	ErrAmountPrecision = errors.New("amount has more than two decimal places")

	// ErrCannotTransferToSameAccount is returned when a transfer is
	// attempted from an account to itself.
	ErrCannotTransferToSameAccount = errors.New("cannot transfer to same account")
)

// Account represents a balance-holding record identified by an account
// number. Ownership is keyed by the (email, phone) pair of the holder.
//
// Invariants:
//   - The balance never goes negative as a result of a transfer.
//   - Only balance-affecting operations mutate an account; identity fields
//     are managed by the account-opening flow, which is external to this
//     service.
type Account struct {
	AccountNo string
	Email     string
	Phone     string
	UpiID     string
	Balance   decimal.Decimal
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanDebit reports whether the account balance covers the given amount.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// ValidateAmount rejects zero, negative and over-precise amounts. The wire
// format is rupees with paise, so anything beyond two decimal places cannot
// have come from a legitimate client.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !amount.Equal(amount.Truncate(2)) {
		return ErrAmountPrecision
	}
	return nil
}

// ValidateTransfer checks the account-level invariants of a transfer before
// any mutation: valid amount, distinct accounts, sufficient source balance.
// Both accounts must already be loaded (and locked) by the caller.
func ValidateTransfer(from, to *Account, amount decimal.Decimal) error {
	if from == nil || to == nil {
		return ErrAccountNotFound
	}
	if from.AccountNo == to.AccountNo {
		return ErrCannotTransferToSameAccount
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !from.CanDebit(amount) {
		return ErrInsufficientBalance
	}
	return nil
}
