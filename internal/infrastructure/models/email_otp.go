package models

import (
	"time"

	"github.com/google/uuid"
)

type EmailOTP struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(6);not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
