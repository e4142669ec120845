package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized DTO for account queries and API
// responses. Field names follow the wire format the mobile client expects.
type AccountRead struct {
	AccountNo string          `json:"account_no"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone_no"`
	UpiID     string          `json:"upi_id"`
	Balance   decimal.Decimal `json:"balance"`
	IsPrimary bool            `json:"is_primary_account"`
	CreatedAt time.Time       `json:"created_at"`
}

// AccountCreate is a DTO for opening a new account. Used by the seeding
// CLI; the account-opening flow proper is external to this service.
type AccountCreate struct {
	AccountNo string
	Email     string
	Phone     string
	UpiID     string
	Balance   decimal.Decimal
	IsPrimary bool
}
