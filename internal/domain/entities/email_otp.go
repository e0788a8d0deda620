package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultOTPTTL is applied when an OTP is stored without an explicit expiry.
const DefaultOTPTTL = 15 * time.Minute

// EmailOTP is a one-time verification code issued to an account. Codes are
// string-encoded so leading zeros survive.
type EmailOTP struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Code      string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the code is past its expiry.
func (o *EmailOTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
