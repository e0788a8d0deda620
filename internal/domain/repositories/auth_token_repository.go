package repositories

import (
	"context"

	"bookworm.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// AuthTokenRepository defines opaque-token operations. GetOrCreate must be
// atomic per account: concurrent calls never yield two distinct tokens.
type AuthTokenRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.AuthToken, error)
	GetByKey(ctx context.Context, key string) (*entities.AuthToken, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
