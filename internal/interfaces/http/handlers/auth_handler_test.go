package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookworm.backend/internal/domain/entities"
	domainerrors "bookworm.backend/internal/domain/errors"
	"bookworm.backend/internal/interfaces/http/handlers"
	"bookworm.backend/internal/interfaces/http/middleware"
	"bookworm.backend/internal/usecases"
	"bookworm.backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	m.Run()
}

type stubAuthService struct {
	registerMsg  string
	registerErr  error
	verifyResp   *entities.AuthResponse
	verifyErr    error
	loginResp    *entities.AuthResponse
	loginErr     error
	logoutErr    error
	logoutUserID uuid.UUID
	logoutKey    string
}

func (s *stubAuthService) Register(_ context.Context, _ *entities.RegisterInput) (string, error) {
	return s.registerMsg, s.registerErr
}

func (s *stubAuthService) VerifyOTP(_ context.Context, _ *entities.VerifyOTPInput) (*entities.AuthResponse, error) {
	return s.verifyResp, s.verifyErr
}

func (s *stubAuthService) Login(_ context.Context, _ *entities.LoginInput) (*entities.AuthResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Logout(_ context.Context, userID uuid.UUID, tokenKey string) error {
	s.logoutUserID = userID
	s.logoutKey = tokenKey
	return s.logoutErr
}

// injectUser fakes the auth middleware for authenticated routes.
func injectUser(user *entities.User, tokenKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.UserKey, user)
			c.Set(middleware.TokenKey, tokenKey)
		}
		c.Next()
	}
}

func newHandlerRouter(svc *stubAuthService, user *entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewAuthHandler(svc)
	r := gin.New()
	r.POST("/register/", h.Register)
	r.POST("/verify-otp/", h.VerifyOTP)
	r.POST("/login/", h.Login)
	auth := r.Group("/", injectUser(user, "testtokenkey"))
	auth.POST("/logout/", h.Logout)
	auth.GET("/authenticated/", h.CurrentUser)
	auth.GET("/me/", h.CurrentUser)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubAuthService{registerMsg: usecases.MsgVerificationSent}
		r := newHandlerRouter(svc, nil)

		w := postJSON(r, "/register/", gin.H{
			"username": "reader",
			"email":    "reader@mail.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, usecases.MsgVerificationSent, body["message"])
	})

	t.Run("missing fields rejected at binding", func(t *testing.T) {
		r := newHandlerRouter(&stubAuthService{}, nil)

		w := postJSON(r, "/register/", gin.H{"username": "reader"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "All fields are required", body["message"])
	})

	t.Run("duplicate verified email", func(t *testing.T) {
		svc := &stubAuthService{
			registerErr: domainerrors.NewError("Email already registered and verified", domainerrors.ErrAlreadyExists),
		}
		r := newHandlerRouter(svc, nil)

		w := postJSON(r, "/register/", gin.H{
			"username": "reader",
			"email":    "taken@mail.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered and verified", decode(t, w)["message"])
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	userID := uuid.New()

	t.Run("success is 201 with token", func(t *testing.T) {
		svc := &stubAuthService{verifyResp: &entities.AuthResponse{
			Token: "aabbccddeeff00112233445566778899aabbccdd",
			User:  &entities.User{ID: userID, Username: "reader", Email: "reader@mail.com", IsActive: true},
		}}
		r := newHandlerRouter(svc, nil)

		w := postJSON(r, "/verify-otp/", gin.H{"email": "reader@mail.com", "otp": "482913"})
		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, "OTP verified successfully", body["message"])
		assert.Equal(t, "aabbccddeeff00112233445566778899aabbccdd", body["token"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "reader", user["username"])
		assert.Equal(t, "reader@mail.com", user["email"])
		_, hasID := user["id"]
		assert.False(t, hasID)
	})

	t.Run("invalid code", func(t *testing.T) {
		svc := &stubAuthService{verifyErr: domainerrors.NewError("Invalid OTP", domainerrors.ErrInvalidOTP)}
		r := newHandlerRouter(svc, nil)

		w := postJSON(r, "/verify-otp/", gin.H{"email": "reader@mail.com", "otp": "999999"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid OTP", decode(t, w)["message"])
	})

	t.Run("missing otp rejected at binding", func(t *testing.T) {
		r := newHandlerRouter(&stubAuthService{}, nil)

		w := postJSON(r, "/verify-otp/", gin.H{"email": "reader@mail.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email and OTP are required", decode(t, w)["message"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	userID := uuid.New()

	t.Run("success includes id", func(t *testing.T) {
		svc := &stubAuthService{loginResp: &entities.AuthResponse{
			Token: "00112233445566778899aabbccddeeff00112233",
			User:  &entities.User{ID: userID, Username: "reader", Email: "reader@mail.com", IsActive: true},
		}}
		r := newHandlerRouter(svc, nil)

		w := postJSON(r, "/login/", gin.H{"email": "reader@mail.com", "password": "password123"})
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Login successful", body["message"])
		user := body["user"].(map[string]interface{})
		assert.Equal(t, userID.String(), user["id"])
	})

	t.Run("invalid credentials is 401", func(t *testing.T) {
		svc := &stubAuthService{loginErr: domainerrors.NewAppError(http.StatusUnauthorized,
			domainerrors.CodeInvalidCredentials, "Invalid credentials", domainerrors.ErrInvalidCredentials)}
		r := newHandlerRouter(svc, nil)

		w := postJSON(r, "/login/", gin.H{"email": "reader@mail.com", "password": "wrongpass1"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decode(t, w)["message"])
	})

	t.Run("unverified account is 403", func(t *testing.T) {
		svc := &stubAuthService{loginErr: domainerrors.NewAppError(http.StatusForbidden,
			domainerrors.CodeEmailNotVerified, "Please verify your email before login.", domainerrors.ErrEmailNotVerified)}
		r := newHandlerRouter(svc, nil)

		w := postJSON(r, "/login/", gin.H{"email": "pending@mail.com", "password": "password123"})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Please verify your email before login.", decode(t, w)["message"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	userID := uuid.New()
	user := &entities.User{ID: userID, Username: "reader", IsActive: true}

	t.Run("success", func(t *testing.T) {
		svc := &stubAuthService{}
		r := newHandlerRouter(svc, user)

		w := postJSON(r, "/logout/", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Logout successful", decode(t, w)["message"])
		assert.Equal(t, userID, svc.logoutUserID)
		assert.Equal(t, "testtokenkey", svc.logoutKey)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		r := newHandlerRouter(&stubAuthService{}, nil)

		w := postJSON(r, "/logout/", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	t.Run("with profile image", func(t *testing.T) {
		user := &entities.User{
			ID:           uuid.New(),
			Username:     "reader",
			Email:        "reader@mail.com",
			ProfileImage: null.StringFrom("https://cdn.bookworm.app/p/reader.png"),
			IsActive:     true,
		}
		r := newHandlerRouter(&stubAuthService{}, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		u := body["user"].(map[string]interface{})
		assert.Equal(t, "https://cdn.bookworm.app/p/reader.png", u["profile"])
	})

	t.Run("without profile image", func(t *testing.T) {
		user := &entities.User{ID: uuid.New(), Username: "reader", Email: "reader@mail.com", IsActive: true}
		r := newHandlerRouter(&stubAuthService{}, user)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authenticated/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		u := decode(t, w)["user"].(map[string]interface{})
		assert.Nil(t, u["profile"])
	})
}
