package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Username        string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	ProfileImageURL *string   `gorm:"type:varchar(512)"`
	IsActive        bool      `gorm:"not null;default:false"`
	IsStaff         bool      `gorm:"not null;default:false"`
	IsSuperuser     bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
