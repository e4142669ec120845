// Package user exposes the user profile and payee search endpoints, plus
// login.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paisabank/paisabank/pkg/config"
	"github.com/paisabank/paisabank/pkg/middleware"
	authsvc "github.com/paisabank/paisabank/pkg/service/auth"
	usersvc "github.com/paisabank/paisabank/pkg/service/user"
	"github.com/paisabank/paisabank/webapi/common"
)

// Routes registers the user endpoints under /api/users:
//
//   - POST /api/users/login       (open)
//   - POST /api/users/getUser     (JWT)
//   - POST /api/users/searchUser  (JWT)
func Routes(
	app *fiber.App,
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	grp := app.Group("/api/users")
	grp.Post("/login", Login(authSvc))
	grp.Post("/getUser", middleware.JwtProtected(cfg.Jwt), GetUser(userSvc))
	grp.Post("/searchUser", middleware.JwtProtected(cfg.Jwt), SearchUser(userSvc))
}

// Login authenticates by email+phone+password and returns a signed JWT.
// Wrong credentials always yield the same 401; the response does not
// reveal whether the user exists.
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.Login(c.UserContext(), input.Email, input.Phone, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c,
				fiber.StatusUnauthorized, "Invalid credentials", nil)
		}
		token, err := svc.GenerateToken(u)
		if err != nil {
			return common.ProblemDetailsJSON(c,
				fiber.StatusInternalServerError, "Server error", nil)
		}
		return c.JSON(LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    LoginUser{Email: u.Email, Phone: u.Phone},
			Success: true,
		})
	}
}

// GetUser returns the profile for the (email, phone) pair.
func GetUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[GetUserRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.Get(c.UserContext(), input.Email, input.Phone)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		return c.JSON(u)
	}
}

// SearchUser matches payees by UPI id or phone number substring.
func SearchUser(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SearchRequest](c)
		if input == nil {
			return err
		}
		users, err := svc.Search(c.UserContext(), input.Query)
		if err != nil {
			return common.ProblemFromError(c, err)
		}
		return c.JSON(users)
	}
}
