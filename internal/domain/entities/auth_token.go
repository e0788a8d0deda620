package entities

import (
	"time"

	"github.com/google/uuid"
)

// AuthToken is the opaque bearer credential bound 1:1 to an account. It is
// created lazily on first successful login or OTP verification and deleted
// on logout.
type AuthToken struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
