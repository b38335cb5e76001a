package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/deskline-inc/deskline/internal/domain/user"
	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
	"github.com/deskline-inc/deskline/internal/shared/utils"
)

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetResult is success-shaped whether or not an account
// matched. Token is the plaintext secret and stays empty when nothing was
// issued; it must never be written to an HTTP response.
type RequestPasswordResetResult struct {
	Token     string
	UserID    uint
	ExpiresAt time.Time
}

type RequestPasswordResetUseCase struct {
	userRepo  user.Repository
	tokenRepo user.PasswordResetTokenRepository
	txMgr     Transactor
	ttl       time.Duration
	logger    logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	tokenRepo user.PasswordResetTokenRepository,
	txMgr Transactor,
	ttl time.Duration,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	if ttl <= 0 {
		ttl = user.DefaultResetTokenTTL
	}
	return &RequestPasswordResetUseCase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		txMgr:     txMgr,
		ttl:       ttl,
		logger:    logger,
	}
}

// Execute replaces any live token of the matching active account with a
// fresh one.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) (*RequestPasswordResetResult, error) {
	if strings.TrimSpace(cmd.Email) == "" {
		return nil, errors.NewValidationError("Validation failed", "email is required")
	}
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}
	uc.logger.Infow("executing request password reset use case", "email", utils.MaskEmail(email.String()))

	u, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to load user by email", "error", err)
		return nil, errors.NewStoreError("load user", err)
	}
	if u == nil || !u.IsActive() {
		uc.logger.Infow("password reset requested for unknown or inactive account")
		return &RequestPasswordResetResult{}, nil
	}

	secret, err := vo.GenerateToken()
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to generate reset token")
	}
	token, err := user.NewPasswordResetToken(u.ID(), secret.Hash(), uc.ttl)
	if err != nil {
		return nil, errors.NewInternalError("Failed to generate reset token")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.tokenRepo.DeleteByUserID(txCtx, u.ID()); err != nil {
			return err
		}
		return uc.tokenRepo.Create(txCtx, token)
	})
	if err != nil {
		uc.logger.Errorw("failed to store reset token", "user_id", u.ID(), "error", err)
		return nil, errors.NewStoreError("store reset token", err)
	}

	uc.logger.Debugw("password reset token issued", "user_id", u.ID(), "token", secret.Value(), "expires_at", token.ExpiresAt())
	return &RequestPasswordResetResult{
		Token:     secret.Value(),
		UserID:    u.ID(),
		ExpiresAt: token.ExpiresAt(),
	}, nil
}
