// Package account provides the read-side account queries backing the
// mobile client's balance and account screens.
package account

import (
	"context"
	"log/slog"

	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service provides account lookups. All queries are simple parameterized
// reads with no invariants of their own.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates an account query Service.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// ListByOwner returns every account held by the (email, phone) pair.
func (s *Service) ListByOwner(
	ctx context.Context,
	email, phone string,
) (accounts []*dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.ListByOwner(ctx, email, phone)
		return err
	})
	if err != nil {
		s.logger.Error("ListByOwner failed", "email", email, "error", err)
		return nil, err
	}
	return
}

// GetBalance returns the balance of one account owned by the pair.
func (s *Service) GetBalance(
	ctx context.Context,
	email, phone, accountNo string,
) (balance decimal.Decimal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := repo.GetByAccountNo(ctx, accountNo)
		if err != nil {
			return err
		}
		balance = acct.Balance
		return nil
	})
	if err != nil {
		s.logger.Error("GetBalance failed", "account_no", accountNo, "error", err)
	}
	return
}

// GetPrimary returns the owner's primary account.
func (s *Service) GetPrimary(
	ctx context.Context,
	email, phone string,
) (acct *dto.AccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err = repo.GetPrimary(ctx, email, phone)
		return err
	})
	if err != nil {
		acct = nil
		s.logger.Error("GetPrimary failed", "email", email, "error", err)
	}
	return
}
