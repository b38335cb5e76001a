package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/user/dto"
	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

// GetUserUseCase serves both the caller's own profile and admin lookups.
type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	uc.logger.Infow("executing get user use case", "user_id", query.UserID)

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", query.UserID, "error", err)
		return nil, errors.NewStoreError("load user", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return dto.ToUserDTO(u), nil
}
