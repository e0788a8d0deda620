package repositories

import (
	"context"
	"time"

	"bookworm.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// EmailOTPRepository defines one-time-password record operations.
// Upsert replaces the outstanding code for an account so an unverified
// account never accumulates more than one live code through registration.
type EmailOTPRepository interface {
	Upsert(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error
	GetLatestByUserAndCode(ctx context.Context, userID uuid.UUID, code string) (*entities.EmailOTP, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}
