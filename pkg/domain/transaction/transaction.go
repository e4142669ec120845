// Package transaction defines the immutable ledger record written once per
// committed transfer, together with the TXN/REF identifier formats the
// mobile client displays.
package transaction

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrDuplicateTransfer is returned when a ledger append collides with an
// already-recorded idempotency key.
var ErrDuplicateTransfer = errors.New("duplicate transfer")

// Status is the terminal state of a ledger record. Only successful
// transfers are ever recorded; failed attempts leave no trace.
type Status string

// StatusSuccess is the only status this service produces.
const StatusSuccess Status = "Success"

// MethodUPI is the fixed payment method recorded for every transfer.
const MethodUPI = "UPI"

// Wire formats for the date and time columns the client renders.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Transaction is an append-only record of a completed transfer. It is
// created exactly once per successful transfer and never updated or
// deleted.
type Transaction struct {
	ID             uuid.UUID
	TransactionID  string // "TXN" + 6 digits, unique
	ReferenceNo    string // "REF" + 5 digits
	AccountNo      string // the account the record is filed under
	Name           string
	FromAcc        string
	ToAcc          string
	Amount         decimal.Decimal
	Status         Status
	Date           string
	Time           string
	SenderDetails  string
	Type           string
	Method         string
	Description    string
	FromUpi        string
	ToUpi          string
	Category       *string
	ReceiptURL     *string
	IsFlagged      bool
	IdempotencyKey *uuid.UUID
	CreatedAt      time.Time
}

// NewID returns a transaction id in the "TXN" + 6 digits wire format. The
// digits come from crypto/rand; the small keyspace means uniqueness is
// enforced by the ledger's unique index, not by this generator.
func NewID() string {
	return "TXN" + randDigits(6)
}

// NewReferenceNo returns a reference number in the "REF" + 5 digits format.
func NewReferenceNo() string {
	return "REF" + randDigits(5)
}

func randDigits(n int) string {
	max := big.NewInt(10)
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is
			// broken; there is no sensible recovery here.
			panic(err)
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf)
}
