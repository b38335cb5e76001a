package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

// PurgeExpiredResetTokensUseCase deletes password reset tokens that can no
// longer be redeemed.
type PurgeExpiredResetTokensUseCase struct {
	tokenRepo user.PasswordResetTokenRepository
	logger    logger.Interface
}

func NewPurgeExpiredResetTokensUseCase(tokenRepo user.PasswordResetTokenRepository, logger logger.Interface) *PurgeExpiredResetTokensUseCase {
	return &PurgeExpiredResetTokensUseCase{
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// Execute returns the number of tokens removed.
func (uc *PurgeExpiredResetTokensUseCase) Execute(ctx context.Context) (int, error) {
	removed, err := uc.tokenRepo.DeleteExpired(ctx, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to purge expired reset tokens", "error", err)
		return 0, err
	}
	return int(removed), nil
}
