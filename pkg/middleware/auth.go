// Package middleware provides route protection for the webapi.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/webapi/common"
)

// JwtProtected guards a route with HS256 JWT verification. The transfer
// endpoint still demands the PIN in the body on top of this; the mobile
// flow re-confirms every transfer by PIN.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c,
				fiber.StatusUnauthorized, "Unauthorized", err.Error())
		},
	})
}
