package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	AccountNo string          `gorm:"primaryKey;size:20"`
	Email     string          `gorm:"size:255;not null;index:idx_accounts_owner"`
	Phone     string          `gorm:"column:phone_no;size:15;not null;index:idx_accounts_owner"`
	UpiID     string          `gorm:"column:upi_id;size:255"`
	Balance   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	IsPrimary bool            `gorm:"column:is_primary_account;not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
