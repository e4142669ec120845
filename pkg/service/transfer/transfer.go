// Package transfer implements the money-transfer operation: PIN
// verification, symmetric account existence check, balance check,
// debit/credit and ledger append, all inside one unit of work.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/domain/account"
	"github.com/paisabank/paisabank/pkg/domain/transaction"
	"github.com/paisabank/paisabank/pkg/domain/user"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
)

// Service orchestrates transfers. Each call is an independent unit of
// work; there is no in-process state beyond the injected dependencies.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a transfer Service from the shared dependency
// container.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// Transfer moves cmd.Amount from cmd.FromAcc to cmd.ToAcc and appends one
// ledger record, atomically. On any precondition failure nothing is
// mutated; on a storage failure mid-flight every mutation is rolled back.
//
// Preconditions, each failing with a distinct error before any mutation:
//   - the (email, phone) user exists and the PIN matches the stored hash;
//   - both accounts exist (the destination is checked before the source is
//     debited);
//   - the amount is a positive two-decimal value;
//   - the source balance covers the amount.
//
// Both account rows are locked for the duration of the check-and-mutate
// sequence, so two concurrent transfers from the same source cannot both
// pass the balance check and overdraw it. Resubmission of the same logical
// request is deduplicated only when the caller supplies an idempotency
// key; without one, a resend debits again by design.
func (s *Service) Transfer(
	ctx context.Context,
	cmd dto.TransferCommand,
) (rec *dto.TransactionRead, err error) {
	logger := s.logger.With(
		"operation", "transfer",
		"account_no", cmd.AccountNo,
		"from_acc", cmd.FromAcc,
		"to_acc", cmd.ToAcc,
		"amount", cmd.Amount,
	)

	if cmd.FromAcc == cmd.ToAcc {
		return nil, account.ErrCannotTransferToSameAccount
	}
	if err = account.ValidateAmount(cmd.Amount); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		userRepo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		u, err := userRepo.GetByEmailPhone(ctx, cmd.Email, cmd.Phone)
		if err != nil {
			return err
		}
		if !user.CheckPIN(u.HashedPin, cmd.Pin) {
			logger.Warn("Transfer rejected: incorrect PIN")
			return user.ErrIncorrectPIN
		}

		from, to, err := lockAccounts(ctx, accountRepo, cmd.FromAcc, cmd.ToAcc)
		if err != nil {
			return err
		}
		if !from.Balance.GreaterThanOrEqual(cmd.Amount) {
			logger.Warn("Transfer rejected: insufficient balance",
				"balance", from.Balance)
			return account.ErrInsufficientBalance
		}

		if err = accountRepo.AdjustBalance(ctx, from.AccountNo, cmd.Amount.Neg()); err != nil {
			return err
		}
		if err = accountRepo.AdjustBalance(ctx, to.AccountNo, cmd.Amount); err != nil {
			return err
		}

		now := time.Now()
		rec, err = txRepo.Create(ctx, &dto.TransactionCreate{
			ID:             uuid.New(),
			TransactionID:  transaction.NewID(),
			ReferenceNo:    transaction.NewReferenceNo(),
			AccountNo:      cmd.AccountNo,
			Name:           cmd.Name,
			FromAcc:        cmd.FromAcc,
			ToAcc:          cmd.ToAcc,
			Amount:         cmd.Amount,
			Status:         string(transaction.StatusSuccess),
			Date:           now.Format(transaction.DateLayout),
			Time:           now.Format(transaction.TimeLayout),
			SenderDetails:  cmd.SenderDetails,
			Type:           cmd.Type,
			Method:         transaction.MethodUPI,
			Description:    cmd.Description,
			FromUpi:        cmd.FromUpi,
			ToUpi:          cmd.ToUpi,
			IdempotencyKey: cmd.IdempotencyKey,
		})
		return err
	})
	if err != nil {
		rec = nil
		logger.Error("Transfer failed", "error", err)
		return
	}
	logger.Info("Transfer successful",
		"transactions_id", rec.TransactionID,
		"reference_no", rec.ReferenceNo,
	)
	return
}

// lockAccounts loads both accounts FOR UPDATE in lexicographic order so
// that two transfers touching the same pair cannot deadlock, then returns
// them as (from, to). The destination is checked for existence here,
// before any debit.
func lockAccounts(
	ctx context.Context,
	repo repository.AccountRepository,
	fromAcc, toAcc string,
) (from, to *dto.AccountRead, err error) {
	first, second := fromAcc, toAcc
	if second < first {
		first, second = second, first
	}

	a1, err := repo.GetForUpdate(ctx, first)
	if err != nil {
		return nil, nil, fmt.Errorf("account %s: %w", first, err)
	}
	a2, err := repo.GetForUpdate(ctx, second)
	if err != nil {
		return nil, nil, fmt.Errorf("account %s: %w", second, err)
	}

	if a1.AccountNo == fromAcc {
		return a1, a2, nil
	}
	return a2, a1, nil
}
