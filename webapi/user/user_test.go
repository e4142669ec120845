package user

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/paisabank/paisabank/internal/fixtures/mocks"
	"github.com/paisabank/paisabank/pkg/config"
	domainuser "github.com/paisabank/paisabank/pkg/domain/user"
	"github.com/paisabank/paisabank/pkg/dto"
	authsvc "github.com/paisabank/paisabank/pkg/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newLoginApp(t *testing.T, users *mocks.MockUserRepository) *fiber.App {
	t.Helper()
	uow := &mocks.MockUnitOfWork{}
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()
	uow.On("UserRepository").Return(users, nil).Maybe()

	svc := authsvc.NewService(config.Deps{
		Uow:    uow,
		Logger: slog.New(slog.DiscardHandler),
		Config: &config.App{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
	})
	app := fiber.New()
	app.Post("/login", Login(svc))
	return app
}

func doLogin(t *testing.T, app *fiber.App, body map[string]any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func TestLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mocks.MockUserRepository{}
	users.On("GetByEmailPhone", mock.Anything, "asha@example.com", "9876543210").
		Return(&dto.UserRead{
			Email:     "asha@example.com",
			Phone:     "9876543210",
			HashedPin: string(hash),
		}, nil)

	status, body := doLogin(t, newLoginApp(t, users), map[string]any{
		"email":    "asha@example.com",
		"phone":    "9876543210",
		"password": "1234",
	})
	require.Equal(t, fiber.StatusOK, status, string(body))

	var out LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "asha@example.com", out.User.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		users := &mocks.MockUserRepository{}
		users.On("GetByEmailPhone", mock.Anything, mock.Anything, mock.Anything).
			Return(&dto.UserRead{HashedPin: string(hash)}, nil)

		status, body := doLogin(t, newLoginApp(t, users), map[string]any{
			"email":    "asha@example.com",
			"phone":    "9876543210",
			"password": "4321",
		})
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Contains(t, string(body), "Invalid credentials")
	})

	t.Run("unknown user", func(t *testing.T) {
		users := &mocks.MockUserRepository{}
		users.On("GetByEmailPhone", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainuser.ErrUserNotFound)

		status, body := doLogin(t, newLoginApp(t, users), map[string]any{
			"email":    "nobody@example.com",
			"phone":    "0000000000",
			"password": "1234",
		})
		// Same response as a wrong password; existence is not revealed.
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Contains(t, string(body), "Invalid credentials")
	})
}

func TestLoginValidation(t *testing.T) {
	app := newLoginApp(t, &mocks.MockUserRepository{})

	status, body := doLogin(t, app, map[string]any{
		"email": "not-an-email",
		"phone": "9876543210",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(body), "Validation failed")
}
