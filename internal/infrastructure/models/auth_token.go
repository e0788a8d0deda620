package models

import (
	"time"

	"github.com/google/uuid"
)

type AuthToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Key       string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
