// Package webapi assembles the Fiber application: middleware, health
// check and the per-domain route packages.
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/paisabank/paisabank/pkg/config"
	accountsvc "github.com/paisabank/paisabank/pkg/service/account"
	authsvc "github.com/paisabank/paisabank/pkg/service/auth"
	transactionsvc "github.com/paisabank/paisabank/pkg/service/transaction"
	transfersvc "github.com/paisabank/paisabank/pkg/service/transfer"
	usersvc "github.com/paisabank/paisabank/pkg/service/user"
	accountweb "github.com/paisabank/paisabank/webapi/account"
	"github.com/paisabank/paisabank/webapi/common"
	transactionweb "github.com/paisabank/paisabank/webapi/transaction"
	userweb "github.com/paisabank/paisabank/webapi/user"
)

// SetupApp builds the services and returns the configured Fiber app.
func SetupApp(deps config.Deps) *fiber.App {
	transferSvc := transfersvc.NewService(deps)
	transactionSvc := transactionsvc.NewService(deps)
	accountSvc := accountsvc.NewService(deps)
	userSvc := usersvc.NewService(deps)
	authSvc := authsvc.NewService(deps)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	// Rate limiting keyed by client IP; honours X-Forwarded-For when the
	// service sits behind a proxy.
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c,
				fiber.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
		},
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("paisabank API is running")
	})

	transactionweb.Routes(app, transferSvc, transactionSvc, deps.Config)
	accountweb.Routes(app, accountSvc, deps.Config)
	userweb.Routes(app, userSvc, authSvc, deps.Config)

	return app
}
