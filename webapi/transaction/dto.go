package transaction

// TransferRequest is the body of POST /api/transaction/transferMoney. The
// field set mirrors the mobile client's wire format; amount travels as a
// JSON number and is parsed into a decimal before validation.
type TransferRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Phone          string  `json:"phone" validate:"required"`
	AccountNo      string  `json:"account_no" validate:"required"`
	Name           string  `json:"name"`
	FromAcc        string  `json:"from_acc" validate:"required"`
	ToAcc          string  `json:"to_acc" validate:"required"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	SenderDetails  string  `json:"sender_details"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	FromUpi        string  `json:"from_upi"`
	ToUpi          string  `json:"to_upi"`
	Pin            string  `json:"pin" validate:"required"`
	IdempotencyKey string  `json:"idempotency_key" validate:"omitempty,uuid"`
}

// HistoryRequest is the body of the transaction history and recent
// transaction endpoints.
type HistoryRequest struct {
	AccountNo string `json:"account_no" validate:"required"`
}
