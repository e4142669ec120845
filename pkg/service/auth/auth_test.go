package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/paisabank/paisabank/internal/fixtures/mocks"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/domain/user"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T, users *mocks.MockUserRepository) *Service {
	t.Helper()
	uow := &mocks.MockUnitOfWork{}
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()
	uow.On("UserRepository").Return(users, nil).Maybe()
	return NewService(config.Deps{
		Uow:    uow,
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.App{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &dto.UserRead{
		SerialNo:  7,
		Email:     "asha@example.com",
		Phone:     "9876543210",
		HashedPin: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		users := &mocks.MockUserRepository{}
		users.On("GetByEmailPhone", mock.Anything, stored.Email, stored.Phone).
			Return(stored, nil)

		u, err := newService(t, users).Login(context.Background(), stored.Email, stored.Phone, "1234")
		require.NoError(t, err)
		assert.Equal(t, stored.SerialNo, u.SerialNo)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &mocks.MockUserRepository{}
		users.On("GetByEmailPhone", mock.Anything, mock.Anything, mock.Anything).
			Return(stored, nil)

		u, err := newService(t, users).Login(context.Background(), stored.Email, stored.Phone, "4321")
		assert.ErrorIs(t, err, user.ErrIncorrectPIN)
		assert.Nil(t, u)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := &mocks.MockUserRepository{}
		users.On("GetByEmailPhone", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, user.ErrUserNotFound)

		// Same error as a wrong password, so the caller cannot probe for
		// registered accounts.
		u, err := newService(t, users).Login(context.Background(), "nobody@example.com", "0", "1234")
		assert.ErrorIs(t, err, user.ErrIncorrectPIN)
		assert.NotErrorIs(t, err, user.ErrUserNotFound)
		assert.Nil(t, u)
	})

	t.Run("storage failure passes through", func(t *testing.T) {
		boom := errors.New("connection reset")
		users := &mocks.MockUserRepository{}
		users.On("GetByEmailPhone", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, boom)

		u, err := newService(t, users).Login(context.Background(), stored.Email, stored.Phone, "1234")
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, u)
	})
}

func TestGenerateToken(t *testing.T) {
	svc := newService(t, &mocks.MockUserRepository{})
	u := &dto.UserRead{
		Email: "asha@example.com",
		Phone: "9876543210",
		UpiID: "asha@paisabank",
	}

	signed, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, u.Email, claims["email"])
	assert.Equal(t, u.Phone, claims["phone_no"])
	assert.Equal(t, u.UpiID, claims["upi_id"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}
