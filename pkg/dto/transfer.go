package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferCommand carries one transfer request into the service layer.
// Amount is in rupees; Pin is the plaintext PIN from the request body and
// is compared against the stored bcrypt hash, never persisted.
type TransferCommand struct {
	Email          string
	Phone          string
	AccountNo      string
	Name           string
	FromAcc        string
	ToAcc          string
	Amount         decimal.Decimal
	SenderDetails  string
	Type           string
	Description    string
	FromUpi        string
	ToUpi          string
	Pin            string
	IdempotencyKey *uuid.UUID
}
