package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized DTO for ledger queries and API
// responses. It is the full record as stored, returned verbatim to the
// caller after a successful transfer.
type TransactionRead struct {
	ID             uuid.UUID       `json:"id"`
	TransactionID  string          `json:"transactions_id"`
	ReferenceNo    string          `json:"reference_no"`
	AccountNo      string          `json:"account_no"`
	Name           string          `json:"name"`
	FromAcc        string          `json:"from_acc"`
	ToAcc          string          `json:"to_acc"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	SenderDetails  string          `json:"sender_details"`
	Type           string          `json:"type"`
	Method         string          `json:"method"`
	Description    string          `json:"description"`
	FromUpi        string          `json:"from_upi"`
	ToUpi          string          `json:"to_upi"`
	Category       *string         `json:"category"`
	ReceiptURL     *string         `json:"receipt_url"`
	IsFlagged      bool            `json:"is_flagged"`
	IdempotencyKey *uuid.UUID      `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TransactionCreate is a DTO for appending one record to the ledger.
type TransactionCreate struct {
	ID             uuid.UUID
	TransactionID  string
	ReferenceNo    string
	AccountNo      string
	Name           string
	FromAcc        string
	ToAcc          string
	Amount         decimal.Decimal
	Status         string
	Date           string
	Time           string
	SenderDetails  string
	Type           string
	Method         string
	Description    string
	FromUpi        string
	ToUpi          string
	IdempotencyKey *uuid.UUID
}
