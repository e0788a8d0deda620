package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"bookworm.backend/internal/domain/entities"
	domainerrors "bookworm.backend/internal/domain/errors"
	"bookworm.backend/internal/domain/repositories"
	"bookworm.backend/internal/infrastructure/email"
	"bookworm.backend/pkg/crypto"
	"bookworm.backend/pkg/logger"
	"bookworm.backend/pkg/otp"
	"bookworm.backend/pkg/redis"
	"bookworm.backend/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registration outcome messages returned to clients.
const (
	MsgVerificationSent = "Verification code sent to your email. Please check."
	MsgOTPResent        = "Account already exists but not verified. We re-sent the OTP to your email."
)

// sessionTTL bounds the cached session lifetime. Tokens themselves do not
// expire; the session is only a lookup shortcut.
const sessionTTL = 14 * 24 * time.Hour

// SessionStore is the cache used to resolve tokens without a database
// round-trip. *redis.SessionStore satisfies it.
type SessionStore interface {
	CreateSession(ctx context.Context, tokenKey string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, tokenKey string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, tokenKey string) error
}

// AuthUsecase handles registration, verification and authentication logic
type AuthUsecase struct {
	userRepo  repositories.UserRepository
	otpRepo   repositories.EmailOTPRepository
	tokenRepo repositories.AuthTokenRepository
	mailer    email.Sender
	sessions  SessionStore
	otpLength int
	otpTTL    time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.EmailOTPRepository,
	tokenRepo repositories.AuthTokenRepository,
	mailer email.Sender,
	sessions SessionStore,
	otpLength int,
	otpTTL time.Duration,
) *AuthUsecase {
	if otpLength <= 0 {
		otpLength = otp.DefaultLength
	}
	if otpTTL <= 0 {
		otpTTL = entities.DefaultOTPTTL
	}
	return &AuthUsecase{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		sessions:  sessions,
		otpLength: otpLength,
		otpTTL:    otpTTL,
	}
}

// Register creates an inactive account and emails it a verification code.
// Registering again with an unverified email re-issues the code instead of
// failing. The returned message is safe to show to the client.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (string, error) {
	username := strings.TrimSpace(input.Username)
	eaddr := strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" || eaddr == "" || input.Password == "" {
		return "", domainerrors.BadRequest("All fields are required")
	}
	if msg := validator.ValidateUsername(username); msg != "" {
		return "", domainerrors.BadRequest(msg)
	}
	if !validator.IsValidEmail(eaddr) {
		return "", domainerrors.BadRequest("Invalid email address")
	}
	if msg := validator.ValidatePassword(input.Password); msg != "" {
		return "", domainerrors.BadRequest(msg)
	}

	existing, err := u.userRepo.GetByEmail(ctx, eaddr)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		return u.registerExisting(ctx, existing)
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	user := &entities.User{
		Username:     username,
		Email:        eaddr,
		PasswordHash: passwordHash,
		IsActive:     false,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Lost a create race; the row now exists, so take the
			// existing-account path.
			winner, getErr := u.userRepo.GetByEmail(ctx, eaddr)
			if getErr != nil {
				return "", getErr
			}
			return u.registerExisting(ctx, winner)
		}
		return "", err
	}

	if err := u.issueOTP(ctx, user); err != nil {
		return "", err
	}
	return MsgVerificationSent, nil
}

// registerExisting handles registration against an email that already has an
// account: unverified accounts get a fresh code, verified ones are rejected.
func (u *AuthUsecase) registerExisting(ctx context.Context, user *entities.User) (string, error) {
	if user.IsActive {
		return "", domainerrors.NewError("Email already registered and verified", domainerrors.ErrAlreadyExists)
	}
	if err := u.issueOTP(ctx, user); err != nil {
		return "", err
	}
	return MsgOTPResent, nil
}

// issueOTP stores a fresh code for the account and emails it. The stored
// code survives a delivery failure so the client can retry registration.
func (u *AuthUsecase) issueOTP(ctx context.Context, user *entities.User) error {
	code, err := otp.Generate(u.otpLength)
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(u.otpTTL)
	if err := u.otpRepo.Upsert(ctx, user.ID, code, expiresAt); err != nil {
		return err
	}
	if err := u.mailer.SendOTP(ctx, user.Email, code); err != nil {
		logger.WithContext(ctx).Error("verification email delivery failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return domainerrors.NewError("Failed to send verification email. Please try again.", domainerrors.ErrEmailSendFailed)
	}
	return nil
}

// VerifyOTP activates the account matching email+code, mints its auth token
// and discards every outstanding code for the account.
func (u *AuthUsecase) VerifyOTP(ctx context.Context, input *entities.VerifyOTPInput) (*entities.AuthResponse, error) {
	eaddr := strings.ToLower(strings.TrimSpace(input.Email))
	code := strings.TrimSpace(input.OTP)
	if eaddr == "" || code == "" {
		return nil, domainerrors.BadRequest("Email and OTP are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, eaddr)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NewError("User does not exist", domainerrors.ErrNotFound)
		}
		return nil, err
	}

	entry, err := u.otpRepo.GetLatestByUserAndCode(ctx, user.ID, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NewError("Invalid OTP", domainerrors.ErrInvalidOTP)
		}
		return nil, err
	}
	if entry.IsExpired(time.Now()) {
		return nil, domainerrors.NewError("OTP expired", domainerrors.ErrOTPExpired)
	}

	if err := u.userRepo.SetActive(ctx, user.ID); err != nil {
		return nil, err
	}
	user.IsActive = true

	token, err := u.tokenRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if err := u.otpRepo.DeleteAllForUser(ctx, user.ID); err != nil {
		return nil, err
	}
	u.cacheSession(ctx, token.Key, user)

	return &entities.AuthResponse{Token: token.Key, User: user}, nil
}

// Login authenticates by email and password and hands back the account's
// token. Unverified accounts are refused even with correct credentials.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	eaddr := strings.ToLower(strings.TrimSpace(input.Email))
	if eaddr == "" || input.Password == "" {
		return nil, domainerrors.BadRequest("All fields are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, eaddr)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}
	if !user.IsActive {
		return nil, domainerrors.NewAppError(http.StatusForbidden,
			domainerrors.CodeEmailNotVerified,
			"Please verify your email before login.",
			domainerrors.ErrEmailNotVerified)
	}

	token, err := u.tokenRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	u.cacheSession(ctx, token.Key, user)

	return &entities.AuthResponse{Token: token.Key, User: user}, nil
}

// Logout revokes the account's token and drops its cached session. Every
// client holding the token is signed out at once.
func (u *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenKey string) error {
	if err := u.tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := u.sessions.DeleteSession(ctx, tokenKey); err != nil {
		logger.WithContext(ctx).Warn("failed to drop cached session",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
	return nil
}

// AuthenticateToken resolves a token key to its account. The cached session
// short-circuits the token table; a cache miss falls through to the
// database and repopulates the cache.
func (u *AuthUsecase) AuthenticateToken(ctx context.Context, key string) (*entities.User, error) {
	if key == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	var userID uuid.UUID
	session, err := u.sessions.GetSession(ctx, key)
	if err == nil && session != nil {
		userID, err = uuid.Parse(session.UserID)
		if err != nil {
			session = nil
		}
	}
	if session == nil {
		token, tokenErr := u.tokenRepo.GetByKey(ctx, key)
		if tokenErr != nil {
			if errors.Is(tokenErr, domainerrors.ErrNotFound) {
				return nil, domainerrors.ErrUnauthorized
			}
			return nil, tokenErr
		}
		userID = token.UserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUnauthorized
	}

	if session == nil {
		u.cacheSession(ctx, key, user)
	}
	return user, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// cacheSession writes the session entry for a token. Failures are logged
// and swallowed: the cache is an optimization, not the source of truth.
func (u *AuthUsecase) cacheSession(ctx context.Context, tokenKey string, user *entities.User) {
	data := &redis.SessionData{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
	if err := u.sessions.CreateSession(ctx, tokenKey, data, sessionTTL); err != nil {
		logger.WithContext(ctx).Warn("failed to cache session",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}
}

func invalidCredentials() *domainerrors.AppError {
	return domainerrors.NewAppError(http.StatusUnauthorized,
		domainerrors.CodeInvalidCredentials,
		"Invalid credentials",
		domainerrors.ErrInvalidCredentials)
}
