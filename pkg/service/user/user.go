// Package user provides user profile lookup and UPI/phone search.
package user

import (
	"context"
	"log/slog"

	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
)

// Service provides user queries.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a user query Service.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, logger: deps.Logger}
}

// Get returns the profile for the (email, phone) pair.
func (s *Service) Get(
	ctx context.Context,
	email, phone string,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByEmailPhone(ctx, email, phone)
		return err
	})
	if err != nil {
		u = nil
		s.logger.Error("Get user failed", "email", email, "error", err)
	}
	return
}

// Search matches users by UPI id or phone number substring. Used by the
// send-money screen to resolve a payee.
func (s *Service) Search(
	ctx context.Context,
	query string,
) (users []*dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		users, err = repo.Search(ctx, query)
		return err
	})
	if err != nil {
		s.logger.Error("Search failed", "query", query, "error", err)
		return nil, err
	}
	return
}
