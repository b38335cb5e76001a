package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/domain/user"
	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

const resetTokenKind = "password reset token"

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo  user.Repository
	tokenRepo user.PasswordResetTokenRepository
	hasher    PasswordHasher
	txMgr     Transactor
	logger    logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	tokenRepo user.PasswordResetTokenRepository,
	hasher PasswordHasher,
	txMgr Transactor,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// Execute consumes a reset token and sets the new password. Unknown,
// consumed and expired tokens all fail with the same invalid-token error.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	uc.logger.Infow("executing reset password use case")

	secret, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return errors.NewTokenInvalidError(resetTokenKind)
	}
	if err := vo.DefaultPasswordPolicy().ValidatePassword(cmd.NewPassword); err != nil {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	token, err := uc.tokenRepo.GetByTokenHash(ctx, secret.Hash())
	if err != nil {
		uc.logger.Errorw("failed to load reset token", "error", err)
		return errors.NewStoreError("load reset token", err)
	}
	if token == nil {
		return errors.NewTokenInvalidError(resetTokenKind)
	}
	if token.IsExpired(biztime.NowUTC()) {
		if err := uc.tokenRepo.DeleteByID(ctx, token.ID()); err != nil {
			uc.logger.Warnw("failed to delete expired reset token", "token_id", token.ID(), "error", err)
		}
		return errors.NewTokenInvalidError(resetTokenKind)
	}

	u, err := uc.userRepo.GetByID(ctx, token.UserID())
	if err != nil {
		uc.logger.Errorw("failed to load user", "user_id", token.UserID(), "error", err)
		return errors.NewStoreError("load user", err)
	}
	if u == nil {
		return errors.NewTokenInvalidError(resetTokenKind)
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("Failed to process password")
	}
	if err := u.ChangePassword(hash); err != nil {
		return errors.NewInternalError("Failed to process password")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Update(txCtx, u, []string{"password_hash"}); err != nil {
			return err
		}
		return uc.tokenRepo.DeleteByID(txCtx, token.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to reset password", "user_id", u.ID(), "error", err)
		return errors.NewStoreError("reset password", err)
	}

	uc.logger.Infow("password reset successfully", "user_id", u.ID())
	return nil
}
