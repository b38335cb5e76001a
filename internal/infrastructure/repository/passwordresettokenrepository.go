package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/mappers"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	db "github.com/deskline-inc/deskline/internal/shared/db"
)

type PasswordResetTokenRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewPasswordResetTokenRepository(db *gorm.DB) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

var _ user.PasswordResetTokenRepository = (*PasswordResetTokenRepository)(nil)

func (r *PasswordResetTokenRepository) Create(ctx context.Context, t *user.PasswordResetToken) error {
	model := r.mapper.ResetTokenToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *PasswordResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*user.PasswordResetToken, error) {
	var model models.PasswordResetTokenModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("token_hash = ?", tokenHash).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find password reset token: %w", err)
	}
	return r.mapper.ResetTokenToDomain(&model), nil
}

func (r *PasswordResetTokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).Delete(&models.PasswordResetTokenModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete password reset tokens: %w", err)
	}
	return nil
}

func (r *PasswordResetTokenRepository) DeleteByID(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.PasswordResetTokenModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete password reset token: %w", err)
	}
	return nil
}

func (r *PasswordResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("expires_at <= ?", biztime.ToMillis(now)).Delete(&models.PasswordResetTokenModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired password reset tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
