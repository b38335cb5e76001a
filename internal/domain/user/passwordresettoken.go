package user

import (
	"fmt"
	"time"

	"github.com/deskline-inc/deskline/internal/shared/biztime"
)

// DefaultResetTokenTTL is how long a password reset token stays usable.
const DefaultResetTokenTTL = 60 * time.Minute

// PasswordResetToken links a user to the hash of a one-time secret.
type PasswordResetToken struct {
	id        uint
	userID    uint
	tokenHash string
	expiresAt time.Time
	createdAt time.Time
}

func NewPasswordResetToken(userID uint, tokenHash string, ttl time.Duration) (*PasswordResetToken, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}
	if ttl <= 0 {
		ttl = DefaultResetTokenTTL
	}

	now := biztime.NowUTC()
	return &PasswordResetToken{
		userID:    userID,
		tokenHash: tokenHash,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}, nil
}

func ReconstructPasswordResetToken(id, userID uint, tokenHash string, expiresAt, createdAt time.Time) *PasswordResetToken {
	return &PasswordResetToken{
		id:        id,
		userID:    userID,
		tokenHash: tokenHash,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}
}

func (t *PasswordResetToken) ID() uint {
	return t.id
}

func (t *PasswordResetToken) UserID() uint {
	return t.userID
}

func (t *PasswordResetToken) TokenHash() string {
	return t.tokenHash
}

func (t *PasswordResetToken) ExpiresAt() time.Time {
	return t.expiresAt
}

func (t *PasswordResetToken) CreatedAt() time.Time {
	return t.createdAt
}

func (t *PasswordResetToken) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("token ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("token ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsExpired reports whether now is at or past the expiry.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}
