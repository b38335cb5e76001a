package usecases

import (
	"context"
	"strings"

	"github.com/deskline-inc/deskline/internal/domain/user"
	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

// Registration carries the fields a new account is created from.
type Registration struct {
	Username        string
	Email           string
	Password        string
	FirstName       string
	LastName        string
	PhoneNumber     string
	Department      *string
	ProfileImageURL *string
}

// accountFactory validates, de-duplicates and persists new accounts for
// both self-registration and admin creation.
type accountFactory struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func (f *accountFactory) create(ctx context.Context, reg Registration, role authorization.Role, active bool) (*user.User, error) {
	username, err := vo.NewUsername(reg.Username)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}
	email, err := vo.NewEmail(reg.Email)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}
	if err := vo.DefaultPasswordPolicy().ValidatePassword(reg.Password); err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	exists, err := f.userRepo.ExistsByUsernameOrEmail(ctx, username.String(), email.String(), 0)
	if err != nil {
		f.logger.Errorw("failed to check existing user", "error", err)
		return nil, errors.NewStoreError("check existing user", err)
	}
	if exists {
		return nil, errors.NewConflictError("Username or email already exists")
	}

	hash, err := f.hasher.Hash(reg.Password)
	if err != nil {
		f.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to process password")
	}

	u, err := user.NewUser(username, email, hash, user.Profile{
		FirstName:       reg.FirstName,
		LastName:        reg.LastName,
		PhoneNumber:     reg.PhoneNumber,
		Department:      optional(reg.Department),
		ProfileImageURL: optional(reg.ProfileImageURL),
	}, role, active)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := f.userRepo.Create(ctx, u); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		f.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewStoreError("create user", err)
	}
	return u, nil
}

// optional drops blank strings.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
