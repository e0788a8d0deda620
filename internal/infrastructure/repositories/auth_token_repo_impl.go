package repositories

import (
	"context"
	"errors"
	"time"

	"bookworm.backend/internal/domain/entities"
	domainerrors "bookworm.backend/internal/domain/errors"
	"bookworm.backend/internal/infrastructure/models"
	"bookworm.backend/pkg/crypto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthTokenRepository implements opaque-token operations
type AuthTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository creates a new auth token repository
func NewAuthTokenRepository(db *gorm.DB) *AuthTokenRepository {
	return &AuthTokenRepository{db: db}
}

// GetOrCreate returns the account's token, creating one on first use. The
// unique constraint on user_id keeps concurrent callers from minting two
// tokens: the loser of the insert race re-reads the winner's row.
func (r *AuthTokenRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entities.AuthToken, error) {
	existing, err := r.getByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	key, err := crypto.GenerateAuthTokenKey()
	if err != nil {
		return nil, err
	}

	m := &models.AuthToken{
		ID:        uuid.New(),
		Key:       key,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return r.getByUserID(ctx, userID)
		}
		return nil, err
	}
	return tokenToEntity(m), nil
}

// GetByKey gets a token by its opaque key
func (r *AuthTokenRepository) GetByKey(ctx context.Context, key string) (*entities.AuthToken, error) {
	var m models.AuthToken
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokenToEntity(&m), nil
}

// DeleteByUserID removes the account's token. Deleting a missing token is
// not an error, matching logout semantics.
func (r *AuthTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error
}

func (r *AuthTokenRepository) getByUserID(ctx context.Context, userID uuid.UUID) (*entities.AuthToken, error) {
	var m models.AuthToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return tokenToEntity(&m), nil
}

func tokenToEntity(m *models.AuthToken) *entities.AuthToken {
	return &entities.AuthToken{
		ID:        m.ID,
		Key:       m.Key,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
