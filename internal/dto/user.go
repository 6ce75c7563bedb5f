package dto

// CreateUserRequest registers a staff member.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=ADMIN MANAGER CASHIER"`
}

// UpdateUserRequest updates staff details. Nil fields are unchanged.
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN MANAGER CASHIER"`
}

// LoginRequest authenticates a staff member with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the minted access token.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// RefreshTokenRequest identifies whose refresh token to validate. The token
// itself travels in the HTTP-only cookie.
type RefreshTokenRequest struct {
	UserID string `json:"userID" binding:"required"`
}
