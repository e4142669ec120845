// Package auth implements login by email+phone+password and JWT issuance.
// Passwords are verified against bcrypt hashes; the original plaintext
// comparison is deliberately not reproduced.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/domain/user"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/repository"
)

// Service authenticates users and signs session tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
}

// NewService creates an auth Service.
func NewService(deps config.Deps) *Service {
	return &Service{uow: deps.Uow, cfg: deps.Config.Jwt, logger: deps.Logger}
}

// Login verifies the (email, phone, password) triple and returns the user
// on success. A missing user and a wrong password both surface as
// ErrIncorrectPIN so the response does not reveal which part failed.
func (s *Service) Login(
	ctx context.Context,
	email, phone, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "email", email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		found, err := repo.GetByEmailPhone(ctx, email, phone)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return user.ErrIncorrectPIN
			}
			return err
		}
		if !user.CheckPIN(found.HashedPin, password) {
			return user.ErrIncorrectPIN
		}
		u = found
		return nil
	})
	if err != nil {
		u = nil
		log.Warn("Login failed", "error", err)
		return
	}
	log.Info("Login successful", "serial_no", u.SerialNo)
	return
}

// GenerateToken signs an HS256 JWT for the given user.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["email"] = u.Email
	claims["phone_no"] = u.Phone
	claims["upi_id"] = u.UpiID
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "email", u.Email, "error", err)
		return "", err
	}
	return signed, nil
}
