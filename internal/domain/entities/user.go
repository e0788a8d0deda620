package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents a registered account. An account starts inactive and
// becomes active exactly once, when its email is verified via OTP.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	ProfileImage null.String `json:"profile"`
	IsActive     bool        `json:"isActive"`
	IsStaff      bool        `json:"isStaff"`
	IsSuperuser  bool        `json:"isSuperuser"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyOTPInput represents input for OTP verification
type VerifyOTPInput struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// AuthResponse represents a successful authentication result
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
