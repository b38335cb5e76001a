package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/user/dto"
	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type RegisterCommand struct {
	Registration
}

type RegisterUseCase struct {
	accounts *accountFactory
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		accounts: &accountFactory{userRepo: userRepo, hasher: hasher, logger: logger},
		logger:   logger,
	}
}

// Execute creates an active standard user account.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register use case", "username", cmd.Username)

	u, err := uc.accounts.create(ctx, cmd.Registration, authorization.RoleUser, true)
	if err != nil {
		uc.logger.Warnw("registration failed", "username", cmd.Username, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
