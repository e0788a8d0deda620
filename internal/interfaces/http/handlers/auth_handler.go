package handlers

import (
	"context"
	"net/http"

	"bookworm.backend/internal/domain/entities"
	domainerrors "bookworm.backend/internal/domain/errors"
	"bookworm.backend/internal/interfaces/http/middleware"
	"bookworm.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthService is the application service behind the auth endpoints.
// *usecases.AuthUsecase satisfies it.
type AuthService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (string, error)
	VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.AuthResponse, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenKey string) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles user registration
// POST /register/
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("All fields are required"))
		return
	}

	msg, err := h.auth.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": msg})
}

// VerifyOTP confirms the emailed code and activates the account
// POST /verify-otp/
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var input entities.VerifyOTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Email and OTP are required"))
		return
	}

	resp, err := h.auth.VerifyOTP(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "OTP verified successfully",
		"token":   resp.Token,
		"user": gin.H{
			"username": resp.User.Username,
			"email":    resp.User.Email,
		},
	})
}

// Login handles user login
// POST /login/
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("All fields are required"))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   resp.Token,
		"user": gin.H{
			"id":       resp.User.ID,
			"username": resp.User.Username,
			"email":    resp.User.Email,
		},
	})
}

// Logout revokes the caller's token
// POST /logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}
	tokenKey, _ := middleware.GetTokenKey(c)

	if err := h.auth.Logout(c.Request.Context(), user.ID, tokenKey); err != nil {
		response.Error(c, domainerrors.NewError("Logout failed", err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Logout successful"})
}

// CurrentUser returns the authenticated account's profile. Both
// GET /authenticated/ and GET /me/ serve this payload.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
			"profile":  user.ProfileImage.Ptr(),
		},
	})
}
