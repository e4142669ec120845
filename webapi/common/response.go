// Package common holds the response envelope, RFC 9457 problem details,
// the domain-error-to-status mapping and the generic request binder shared
// by all webapi packages.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/paisabank/paisabank/pkg/domain/account"
	"github.com/paisabank/paisabank/pkg/domain/transaction"
	"github.com/paisabank/paisabank/pkg/domain/user"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response.
func ProblemDetailsJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	switch d := detail.(type) {
	case nil:
	case string:
		pd.Detail = d
	case error:
		pd.Detail = d.Error()
	default:
		pd.Errors = d
	}
	pd.Instance = c.OriginalURL()
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to HTTP status codes, preserving
// the client-error / server-error distinction: bad input, wrong PIN and
// insufficient funds are 4xx; anything unrecognized is a storage failure
// and reported as a generic 500.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, account.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, user.ErrIncorrectPIN):
		return fiber.StatusUnauthorized
	case errors.Is(err, account.ErrInsufficientBalance),
		errors.Is(err, account.ErrAmountMustBePositive),
		errors.Is(err, account.ErrAmountPrecision),
		errors.Is(err, account.ErrCannotTransferToSameAccount):
		return fiber.StatusBadRequest
	case errors.Is(err, transaction.ErrDuplicateTransfer):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ProblemFromError writes a problem response for a domain error. Storage
// failures are reported without leaking internals.
func ProblemFromError(c *fiber.Ctx, err error) error {
	status := ErrorToStatusCode(err)
	if status == fiber.StatusInternalServerError {
		return ProblemDetailsJSON(c, status, "Server error", nil)
	}
	return ProblemDetailsJSON(c, status, err.Error(), nil)
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure it writes the error response and
// returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c,
			fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c,
			fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
