package middleware

import (
	"context"
	"net/http"
	"strings"

	"bookworm.backend/internal/domain/entities"
	"bookworm.backend/internal/interfaces/http/response"
	"bookworm.backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// TokenPrefix is the legacy "Token <key>" scheme older clients still send
	TokenPrefix = "Token "
	// UserKey is the context key for the authenticated user
	UserKey = "currentUser"
	// TokenKey is the context key for the presented token key
	TokenKey = "authTokenKey"
)

// TokenAuthenticator resolves an opaque token key to its account.
// *usecases.AuthUsecase satisfies it.
type TokenAuthenticator interface {
	AuthenticateToken(ctx context.Context, key string) (*entities.User, error)
}

// AuthMiddleware authenticates requests by their bearer token and puts the
// resolved user into the gin context.
func AuthMiddleware(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		var key string
		switch {
		case strings.HasPrefix(authHeader, BearerPrefix):
			key = strings.TrimPrefix(authHeader, BearerPrefix)
		case strings.HasPrefix(authHeader, TokenPrefix):
			key = strings.TrimPrefix(authHeader, TokenPrefix)
		default:
			response.ErrorWithStatus(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		user, err := auth.AuthenticateToken(c.Request.Context(), key)
		if err != nil {
			logger.WithContext(c.Request.Context()).Debug("token authentication failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			response.ErrorWithStatus(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Set(TokenKey, key)

		c.Next()
	}
}

// GetCurrentUser gets the authenticated user from context
func GetCurrentUser(c *gin.Context) (*entities.User, bool) {
	val, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*entities.User)
	return user, ok
}

// GetTokenKey gets the presented token key from context
func GetTokenKey(c *gin.Context) (string, bool) {
	val, exists := c.Get(TokenKey)
	if !exists {
		return "", false
	}
	key, ok := val.(string)
	return key, ok
}
