package transaction

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/paisabank/paisabank/internal/fixtures/mocks"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/domain/account"
	domaintx "github.com/paisabank/paisabank/pkg/domain/transaction"
	"github.com/paisabank/paisabank/pkg/dto"
	transactionsvc "github.com/paisabank/paisabank/pkg/service/transaction"
	transfersvc "github.com/paisabank/paisabank/pkg/service/transfer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	app      *fiber.App
	uow      *mocks.MockUnitOfWork
	users    *mocks.MockUserRepository
	accounts *mocks.MockAccountRepository
	ledger   *mocks.MockTransactionRepository
}

// newFixture mounts the handlers without the JWT middleware; token
// handling is covered by the middleware's own configuration and is not
// what these tests exercise.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:    &mocks.MockUserRepository{},
		accounts: &mocks.MockAccountRepository{},
		ledger:   &mocks.MockTransactionRepository{},
	}
	f.uow = &mocks.MockUnitOfWork{}
	f.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.uow.On("UserRepository").Return(f.users, nil).Maybe()
	f.uow.On("AccountRepository").Return(f.accounts, nil).Maybe()
	f.uow.On("TransactionRepository").Return(f.ledger, nil).Maybe()

	deps := config.Deps{Uow: f.uow, Logger: slog.New(slog.DiscardHandler)}
	f.app = fiber.New()
	f.app.Post("/transferMoney", TransferMoney(transfersvc.NewService(deps)))
	f.app.Post("/getTransactionsDetails", GetTransactionsDetails(transactionsvc.NewService(deps)))
	f.app.Post("/getRecentTransactionsDetails", GetRecentTransactionsDetails(transactionsvc.NewService(deps)))
	return f
}

func doPost(t *testing.T, app *fiber.App, path string, body map[string]any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func transferBody() map[string]any {
	return map[string]any{
		"email":      "asha@example.com",
		"phone":      "9876543210",
		"account_no": "ACC1001",
		"name":       "Asha",
		"from_acc":   "ACC1001",
		"to_acc":     "ACC1002",
		"amount":     400,
		"pin":        "1234",
	}
}

func stubUser(t *testing.T, f *fixture, pin string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	f.users.On("GetByEmailPhone", mock.Anything, mock.Anything, mock.Anything).
		Return(&dto.UserRead{HashedPin: string(hash)}, nil)
}

func stubAccounts(f *fixture, fromBalance int64) {
	f.accounts.On("GetForUpdate", mock.Anything, "ACC1001").
		Return(&dto.AccountRead{AccountNo: "ACC1001", Balance: decimal.NewFromInt(fromBalance)}, nil)
	f.accounts.On("GetForUpdate", mock.Anything, "ACC1002").
		Return(&dto.AccountRead{AccountNo: "ACC1002", Balance: decimal.Zero}, nil)
}

func TestTransferMoneySuccess(t *testing.T) {
	f := newFixture(t)
	stubUser(t, f, "1234")
	stubAccounts(f, 1000)
	f.accounts.On("AdjustBalance", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.Anything).
		Return(&dto.TransactionRead{
			TransactionID: "TXN123456",
			ReferenceNo:   "REF12345",
			FromAcc:       "ACC1001",
			ToAcc:         "ACC1002",
			Amount:        decimal.NewFromInt(400),
			Status:        string(domaintx.StatusSuccess),
			Method:        domaintx.MethodUPI,
		}, nil)

	status, body := doPost(t, f.app, "/transferMoney", transferBody())
	require.Equal(t, fiber.StatusOK, status, string(body))

	var rec dto.TransactionRead
	require.NoError(t, json.Unmarshal(body, &rec))
	assert.Equal(t, "TXN123456", rec.TransactionID)
	assert.Equal(t, "Success", rec.Status)
	assert.Equal(t, "UPI", rec.Method)
}

func TestTransferMoneyValidation(t *testing.T) {
	f := newFixture(t)

	t.Run("missing pin", func(t *testing.T) {
		body := transferBody()
		delete(body, "pin")
		status, resp := doPost(t, f.app, "/transferMoney", body)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Contains(t, string(resp), "Validation failed")
	})

	t.Run("negative amount", func(t *testing.T) {
		body := transferBody()
		body["amount"] = -400
		status, _ := doPost(t, f.app, "/transferMoney", body)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("malformed idempotency key", func(t *testing.T) {
		body := transferBody()
		body["idempotency_key"] = "not-a-uuid"
		status, _ := doPost(t, f.app, "/transferMoney", body)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	f.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestTransferMoneyAcceptsAnyUUIDVersionKey(t *testing.T) {
	// The handler parses the key with uuid.Parse, which is not limited to
	// version 4; validation must not reject versions Parse accepts.
	f := newFixture(t)
	stubUser(t, f, "1234")
	stubAccounts(f, 1000)
	f.accounts.On("AdjustBalance", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.Anything).
		Return(&dto.TransactionRead{TransactionID: "TXN123456"}, nil)

	body := transferBody()
	body["idempotency_key"] = "5a8b2d06-8f6d-11ee-b9d1-0242ac120002" // version 1
	status, resp := doPost(t, f.app, "/transferMoney", body)
	assert.Equal(t, fiber.StatusOK, status, string(resp))
}

func TestTransferMoneyIncorrectPIN(t *testing.T) {
	f := newFixture(t)
	stubUser(t, f, "1234")

	body := transferBody()
	body["pin"] = "4321"
	status, resp := doPost(t, f.app, "/transferMoney", body)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, string(resp), "incorrect PIN")
	f.accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferMoneyInsufficientBalance(t *testing.T) {
	f := newFixture(t)
	stubUser(t, f, "1234")
	stubAccounts(f, 300)

	status, resp := doPost(t, f.app, "/transferMoney", transferBody())
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, string(resp), "insufficient balance")
}

func TestTransferMoneyDestinationMissing(t *testing.T) {
	f := newFixture(t)
	stubUser(t, f, "1234")
	f.accounts.On("GetForUpdate", mock.Anything, "ACC1001").
		Return(&dto.AccountRead{AccountNo: "ACC1001", Balance: decimal.NewFromInt(1000)}, nil)
	f.accounts.On("GetForUpdate", mock.Anything, "ACC1002").
		Return(nil, account.ErrAccountNotFound)

	status, _ := doPost(t, f.app, "/transferMoney", transferBody())
	assert.Equal(t, fiber.StatusNotFound, status)
	f.accounts.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransferMoneyDuplicate(t *testing.T) {
	f := newFixture(t)
	stubUser(t, f, "1234")
	stubAccounts(f, 1000)
	f.accounts.On("AdjustBalance", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.ledger.On("Create", mock.Anything, mock.Anything).
		Return(nil, domaintx.ErrDuplicateTransfer)

	body := transferBody()
	body["idempotency_key"] = "8f14e45f-ceea-4e77-8c4d-1f0d3c2f4b5a"
	status, resp := doPost(t, f.app, "/transferMoney", body)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, string(resp), "duplicate transfer")
}

func TestGetRecentTransactionsDetailsEmpty(t *testing.T) {
	f := newFixture(t)
	f.ledger.On("Recent", mock.Anything, "ACC1001").Return(nil, nil)

	status, body := doPost(t, f.app, "/getRecentTransactionsDetails",
		map[string]any{"account_no": "ACC1001"})
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestGetTransactionsDetails(t *testing.T) {
	f := newFixture(t)
	f.ledger.On("ListByAccount", mock.Anything, "ACC1001").
		Return([]*dto.TransactionRead{
			{TransactionID: "TXN222222"},
			{TransactionID: "TXN111111"},
		}, nil)

	status, body := doPost(t, f.app, "/getTransactionsDetails",
		map[string]any{"account_no": "ACC1001"})
	require.Equal(t, fiber.StatusOK, status)

	var recs []dto.TransactionRead
	require.NoError(t, json.Unmarshal(body, &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "TXN222222", recs[0].TransactionID)
}
