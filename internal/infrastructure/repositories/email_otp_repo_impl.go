package repositories

import (
	"context"
	"errors"
	"time"

	"bookworm.backend/internal/domain/entities"
	domainerrors "bookworm.backend/internal/domain/errors"
	"bookworm.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailOTPRepository implements one-time-password record operations
type EmailOTPRepository struct {
	db *gorm.DB
}

// NewEmailOTPRepository creates a new email OTP repository
func NewEmailOTPRepository(db *gorm.DB) *EmailOTPRepository {
	return &EmailOTPRepository{db: db}
}

// Upsert replaces the outstanding code for an account, creating the record
// when none exists. A zero expiresAt defaults to created_at + 15 minutes.
func (r *EmailOTPRepository) Upsert(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	now := time.Now()
	if expiresAt.IsZero() {
		expiresAt = now.Add(entities.DefaultOTPTTL)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.EmailOTP{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
			"code":       code,
			"created_at": now,
			"expires_at": expiresAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		m := &models.EmailOTP{
			ID:        uuid.New(),
			UserID:    userID,
			Code:      code,
			CreatedAt: now,
			ExpiresAt: expiresAt,
		}
		return tx.Create(m).Error
	})
}

// GetLatestByUserAndCode finds the most recently issued record matching the
// code for the account; the newest created_at wins when duplicates exist.
func (r *EmailOTPRepository) GetLatestByUserAndCode(ctx context.Context, userID uuid.UUID, code string) (*entities.EmailOTP, error) {
	var m models.EmailOTP
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.EmailOTP{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}, nil
}

// DeleteAllForUser removes every outstanding code for the account. Deleting
// zero rows is not an error: a concurrent verify may have consumed them.
func (r *EmailOTPRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.EmailOTP{}).Error
}
