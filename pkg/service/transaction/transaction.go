// Package transaction provides read-side ledger queries: full history and
// most-recent record per account.
package transaction

import (
	"context"
	"log/slog"

	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
)

// Service provides ledger lookups.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a ledger query Service.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// History returns every ledger record touching the account, newest first.
func (s *Service) History(
	ctx context.Context,
	accountNo string,
) (records []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		records, err = repo.ListByAccount(ctx, accountNo)
		return err
	})
	if err != nil {
		s.logger.Error("History failed", "account_no", accountNo, "error", err)
		return nil, err
	}
	return
}

// Recent returns the newest ledger record touching the account.
func (s *Service) Recent(
	ctx context.Context,
	accountNo string,
) (record *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		record, err = repo.Recent(ctx, accountNo)
		return err
	})
	if err != nil {
		record = nil
		s.logger.Error("Recent failed", "account_no", accountNo, "error", err)
	}
	return
}
