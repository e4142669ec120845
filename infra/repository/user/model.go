package user

import (
	"time"
)

// User represents a user record in the database. Password holds the
// bcrypt hash of the login password / transfer PIN.
type User struct {
	SerialNo  int64  `gorm:"column:serial_no;primaryKey;autoIncrement"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex:idx_users_email_phone"`
	Phone     string `gorm:"column:phone_no;size:15;not null;uniqueIndex:idx_users_email_phone"`
	Password  string `gorm:"not null"`
	UpiID     string `gorm:"column:upi_id;size:255;uniqueIndex"`
	Age       int
	Gender    string `gorm:"size:20"`
	Language  string `gorm:"size:50"`
	Address   string `gorm:"size:500"`
	PinCode   string `gorm:"column:pin_code;size:10"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
