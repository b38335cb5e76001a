package usecases

import (
	"context"
	"encoding/json"

	"github.com/deskline-inc/deskline/internal/application/user/dto"
	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID uint
	Fields map[string]json.RawMessage
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute applies an admin's whitelisted partial update to an account.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID)

	patch, err := user.ParsePatch(cmd.Fields)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewStoreError("load user", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	if patch.Username != nil || patch.Email != nil {
		username, email := "", ""
		if patch.Username != nil {
			username = patch.Username.String()
		}
		if patch.Email != nil {
			email = patch.Email.String()
		}
		exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, username, email, u.ID())
		if err != nil {
			uc.logger.Errorw("failed to check existing user", "error", err)
			return nil, errors.NewStoreError("check existing user", err)
		}
		if exists {
			return nil, errors.NewConflictError("Username or email already exists")
		}
	}

	var hash string
	if patch.Password != nil {
		if hash, err = uc.hasher.Hash(*patch.Password); err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("Failed to process password")
		}
	}

	if err := u.Apply(patch, hash); err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.userRepo.Update(ctx, u, patch.Columns()); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update user", "user_id", u.ID(), "error", err)
		return nil, errors.NewStoreError("update user", err)
	}

	uc.logger.Infow("user updated successfully", "user_id", u.ID(), "fields", patch.Fields())
	return dto.ToUserDTO(u), nil
}
