// Package transaction exposes the transfer endpoint and the ledger read
// endpoints.
package transaction

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/dto"
	"github.com/paisabank/paisabank/pkg/middleware"
	transactionsvc "github.com/paisabank/paisabank/pkg/service/transaction"
	transfersvc "github.com/paisabank/paisabank/pkg/service/transfer"
	"github.com/paisabank/paisabank/webapi/common"
	"github.com/shopspring/decimal"
)

// Routes registers the transaction endpoints under /api/transaction,
// matching the mobile client's existing paths:
//
//   - POST /api/transaction/transferMoney
//   - POST /api/transaction/getTransactionsDetails
//   - POST /api/transaction/getRecentTransactionsDetails
func Routes(
	app *fiber.App,
	transferSvc *transfersvc.Service,
	querySvc *transactionsvc.Service,
	cfg *config.App,
) {
	grp := app.Group("/api/transaction", middleware.JwtProtected(cfg.Jwt))
	grp.Post("/transferMoney", TransferMoney(transferSvc))
	grp.Post("/getTransactionsDetails", GetTransactionsDetails(querySvc))
	grp.Post("/getRecentTransactionsDetails", GetRecentTransactionsDetails(querySvc))
}

// TransferMoney returns the handler for the transfer endpoint. On success
// it responds with the ledger record exactly as stored; on failure the
// problem response preserves the client-error / server-error distinction.
func TransferMoney(svc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}

		amount := decimal.NewFromFloat(input.Amount)
		cmd := dto.TransferCommand{
			Email:         input.Email,
			Phone:         input.Phone,
			AccountNo:     input.AccountNo,
			Name:          input.Name,
			FromAcc:       input.FromAcc,
			ToAcc:         input.ToAcc,
			Amount:        amount,
			SenderDetails: input.SenderDetails,
			Type:          input.Type,
			Description:   input.Description,
			FromUpi:       input.FromUpi,
			ToUpi:         input.ToUpi,
			Pin:           input.Pin,
		}
		if input.IdempotencyKey != "" {
			key, err := uuid.Parse(input.IdempotencyKey)
			if err != nil {
				return common.ProblemDetailsJSON(c,
					fiber.StatusBadRequest, "Invalid idempotency key", err.Error())
			}
			cmd.IdempotencyKey = &key
		}

		rec, err := svc.Transfer(c.UserContext(), cmd)
		if err != nil {
			log.Warnf("Transfer failed: %v", err)
			return common.ProblemFromError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(rec)
	}
}

// GetTransactionsDetails returns the full ledger history for an account.
func GetTransactionsDetails(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[HistoryRequest](c)
		if input == nil {
			return err
		}
		records, err := svc.History(c.UserContext(), input.AccountNo)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		return c.JSON(records)
	}
}

// GetRecentTransactionsDetails returns the newest ledger record for an
// account. The response is a single-element array (or empty), matching
// the original endpoint's shape.
func GetRecentTransactionsDetails(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[HistoryRequest](c)
		if input == nil {
			return err
		}
		record, err := svc.Recent(c.UserContext(), input.AccountNo)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		records := []*dto.TransactionRead{}
		if record != nil {
			records = append(records, record)
		}
		return c.JSON(records)
	}
}
