package user

import (
	"context"
	"time"
)

// Repository persists accounts. Getters return (nil, nil) when no account
// matches. Username and email lookups expect normalized input.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByEmailOrUsername matches identifier against either column.
	GetByEmailOrUsername(ctx context.Context, identifier string) (*User, error)
	// ExistsByUsernameOrEmail ignores the account excludeID (0 for none).
	ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint) (bool, error)
	// Update writes only the given columns plus updated_at.
	Update(ctx context.Context, u *User, columns []string) error
	List(ctx context.Context) ([]*User, error)
}

// PasswordResetTokenRepository stores reset token hashes, never plaintext.
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, t *PasswordResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*PasswordResetToken, error)
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteByID(ctx context.Context, id uint) error
	// DeleteExpired removes tokens whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
