// Package account exposes the account read endpoints consumed by the
// balance and home screens.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/middleware"
	accountsvc "github.com/paisabank/paisabank/pkg/service/account"
	"github.com/paisabank/paisabank/webapi/common"
)

// Routes registers the account endpoints under /api/account:
//
//   - POST /api/account/getAccountDetails
//   - POST /api/account/getAccountNumber
//   - POST /api/account/getAccountBalance
//   - POST /api/account/getPrimaryAccount
func Routes(app *fiber.App, svc *accountsvc.Service, cfg *config.App) {
	grp := app.Group("/api/account", middleware.JwtProtected(cfg.Jwt))
	grp.Post("/getAccountDetails", GetAccountDetails(svc))
	grp.Post("/getAccountNumber", GetAccountNumber(svc))
	grp.Post("/getAccountBalance", GetAccountBalance(svc))
	grp.Post("/getPrimaryAccount", GetPrimaryAccount(svc))
}

// GetAccountDetails lists every account held by the owner.
func GetAccountDetails(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OwnerRequest](c)
		if input == nil {
			return err
		}
		accounts, err := svc.ListByOwner(c.UserContext(), input.Email, input.Phone)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		return c.JSON(accounts)
	}
}

// GetAccountNumber returns only the account numbers held by the owner.
func GetAccountNumber(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OwnerRequest](c)
		if input == nil {
			return err
		}
		accounts, err := svc.ListByOwner(c.UserContext(), input.Email, input.Phone)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		numbers := make([]fiber.Map, 0, len(accounts))
		for _, a := range accounts {
			numbers = append(numbers, fiber.Map{"account_no": a.AccountNo})
		}
		return c.JSON(numbers)
	}
}

// GetAccountBalance returns the balance of one account.
func GetAccountBalance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[BalanceRequest](c)
		if input == nil {
			return err
		}
		balance, err := svc.GetBalance(
			c.UserContext(), input.Email, input.Phone, input.AccountNo)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		return c.JSON(fiber.Map{"balance": balance})
	}
}

// GetPrimaryAccount returns the owner's primary account.
func GetPrimaryAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OwnerRequest](c)
		if input == nil {
			return err
		}
		acct, err := svc.GetPrimary(c.UserContext(), input.Email, input.Phone)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		return c.JSON(acct)
	}
}
