package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/user/dto"
	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type CreateUserCommand struct {
	Registration
	RoleID int
	// IsActive defaults to true when nil.
	IsActive *bool
}

type CreateUserUseCase struct {
	accounts *accountFactory
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		accounts: &accountFactory{userRepo: userRepo, hasher: hasher, logger: logger},
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "role_id", cmd.RoleID)

	role, err := authorization.RoleFromID(cmd.RoleID)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}
	active := true
	if cmd.IsActive != nil {
		active = *cmd.IsActive
	}

	u, err := uc.accounts.create(ctx, cmd.Registration, role, active)
	if err != nil {
		uc.logger.Warnw("create user failed", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", role)
	return dto.ToUserDTO(u), nil
}
