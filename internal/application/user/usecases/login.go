package usecases

import (
	"context"
	"sync"

	"github.com/deskline-inc/deskline/internal/application/user/dto"
	"github.com/deskline-inc/deskline/internal/domain/user"
	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type LoginCommand struct {
	EmailOrUsername string
	Password        string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface

	dummyOnce sync.Once
	dummyHash string
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute verifies credentials and issues an access token. Unknown,
// inactive and wrong-password logins fail identically.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error) {
	identifier := vo.NormalizeIdentifier(cmd.EmailOrUsername)
	uc.logger.Infow("executing login use case", "identifier", identifier)

	u, err := uc.userRepo.GetByEmailOrUsername(ctx, identifier)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err)
		return nil, errors.NewStoreError("load user", err)
	}
	if u == nil || !u.IsActive() {
		uc.verifyDummy(cmd.Password)
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokens.Issue(u.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("Failed to issue token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID())
	return &dto.LoginDTO{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		User:      dto.ToUserDTO(u),
	}, nil
}

// verifyDummy spends one hash comparison so unknown and inactive accounts
// answer in the same time as a wrong password.
func (uc *LoginUseCase) verifyDummy(password string) {
	uc.dummyOnce.Do(func() {
		hash, err := uc.hasher.Hash("deskline-unknown-account")
		if err != nil {
			uc.logger.Warnw("failed to prepare dummy password hash", "error", err)
			return
		}
		uc.dummyHash = hash
	})
	_ = uc.hasher.Verify(password, uc.dummyHash)
}
