package account

// OwnerRequest is the body shared by the account lookup endpoints.
type OwnerRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// BalanceRequest is the body of POST /api/account/getAccountBalance.
type BalanceRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	AccountNo string `json:"account_no" validate:"required"`
}
