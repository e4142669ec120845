package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents one immutable ledger row. The table is
// append-only: rows are inserted on commit and never updated or deleted.
type Transaction struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID  string          `gorm:"column:transactions_id;size:12;not null;uniqueIndex"`
	ReferenceNo    string          `gorm:"column:reference_no;size:12;not null"`
	AccountNo      string          `gorm:"column:account_no;size:20;not null;index"`
	Name           string          `gorm:"size:255"`
	FromAcc        string          `gorm:"column:from_acc;size:20;not null;index"`
	ToAcc          string          `gorm:"column:to_acc;size:20;not null;index"`
	Amount         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status         string          `gorm:"size:20;not null"`
	Date           string          `gorm:"size:10;not null"`
	Time           string          `gorm:"size:8;not null"`
	SenderDetails  string          `gorm:"column:sender_details;size:255"`
	Type           string          `gorm:"size:50"`
	Method         string          `gorm:"size:20;not null"`
	Description    string          `gorm:"size:500"`
	FromUpi        string          `gorm:"column:from_upi;size:255"`
	ToUpi          string          `gorm:"column:to_upi;size:255"`
	Category       *string         `gorm:"size:50"`
	ReceiptURL     *string         `gorm:"column:receipt_url;size:500"`
	IsFlagged      bool            `gorm:"column:is_flagged;not null;default:false"`
	IdempotencyKey *uuid.UUID      `gorm:"column:idempotency_key;type:uuid;uniqueIndex"`
	CreatedAt      time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
