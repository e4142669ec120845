package dto

import "time"

// UserRead is a read-optimized DTO for user queries. HashedPin is carried
// for credential checks inside the service layer and never serialized.
type UserRead struct {
	SerialNo  int64     `json:"serial_no"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone_no"`
	UpiID     string    `json:"upi_id"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Language  string    `json:"language"`
	Address   string    `json:"address"`
	PinCode   string    `json:"pin_code"`
	HashedPin string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is a DTO for registering a user. Pin must already be hashed.
type UserCreate struct {
	Name      string
	Email     string
	Phone     string
	HashedPin string
	UpiID     string
	Age       int
	Gender    string
	Language  string
	Address   string
	PinCode   string
}
