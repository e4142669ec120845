package common

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/paisabank/paisabank/pkg/domain/account"
	"github.com/paisabank/paisabank/pkg/domain/transaction"
	"github.com/paisabank/paisabank/pkg/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user not found", user.ErrUserNotFound, fiber.StatusNotFound},
		{"account not found", account.ErrAccountNotFound, fiber.StatusNotFound},
		{"wrapped account not found", errors.Join(errors.New("account ACC1002"), account.ErrAccountNotFound), fiber.StatusNotFound},
		{"incorrect PIN", user.ErrIncorrectPIN, fiber.StatusUnauthorized},
		{"insufficient balance", account.ErrInsufficientBalance, fiber.StatusBadRequest},
		{"bad amount", account.ErrAmountMustBePositive, fiber.StatusBadRequest},
		{"over-precise amount", account.ErrAmountPrecision, fiber.StatusBadRequest},
		{"same account", account.ErrCannotTransferToSameAccount, fiber.StatusBadRequest},
		{"duplicate transfer", transaction.ErrDuplicateTransfer, fiber.StatusConflict},
		{"storage failure", errors.New("pq: connection reset"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}

func TestProblemFromErrorHidesInternals(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ProblemFromError(c, errors.New("pq: password authentication failed for user"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Server error")
	assert.NotContains(t, string(body), "password", "storage errors must not leak internals")
}

func TestProblemFromErrorClientError(t *testing.T) {
	app := fiber.New()
	app.Get("/insufficient", func(c *fiber.Ctx) error {
		return ProblemFromError(c, account.ErrInsufficientBalance)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/insufficient", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "insufficient balance")
}
