package user

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser is the user fragment echoed back on successful login.
type LoginUser struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LoginResponse is the success body of POST /api/users/login.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
	Success bool      `json:"success"`
}

// GetUserRequest is the body of POST /api/users/getUser.
type GetUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// SearchRequest is the body of POST /api/users/searchUser.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
}
