package mappers

import (
	"fmt"

	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
)

// UserMapper converts between the user aggregate and its models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ResetTokenToModel(t *user.PasswordResetToken) *models.PasswordResetTokenModel
	ResetTokenToDomain(model *models.PasswordResetTokenModel) *user.PasswordResetToken
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:              u.ID(),
		Username:        u.Username(),
		Email:           u.Email(),
		PasswordHash:    u.PasswordHash(),
		FirstName:       u.FirstName(),
		LastName:        u.LastName(),
		PhoneNumber:     u.PhoneNumber(),
		Department:      u.Department(),
		ProfileImageURL: u.ProfileImageURL(),
		RoleID:          u.Role().ID(),
		IsActive:        u.IsActive(),
		CreatedAt:       biztime.ToMillis(u.CreatedAt()),
		UpdatedAt:       biztime.ToMillis(u.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := authorization.RoleFromID(model.RoleID)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", model.ID, err)
	}
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		user.Profile{
			FirstName:       model.FirstName,
			LastName:        model.LastName,
			PhoneNumber:     model.PhoneNumber,
			Department:      model.Department,
			ProfileImageURL: model.ProfileImageURL,
		},
		role,
		model.IsActive,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) ResetTokenToModel(t *user.PasswordResetToken) *models.PasswordResetTokenModel {
	return &models.PasswordResetTokenModel{
		ID:        t.ID(),
		UserID:    t.UserID(),
		TokenHash: t.TokenHash(),
		ExpiresAt: biztime.ToMillis(t.ExpiresAt()),
		CreatedAt: biztime.ToMillis(t.CreatedAt()),
	}
}

func (m *UserMapperImpl) ResetTokenToDomain(model *models.PasswordResetTokenModel) *user.PasswordResetToken {
	return user.ReconstructPasswordResetToken(
		model.ID,
		model.UserID,
		model.TokenHash,
		biztime.FromMillis(model.ExpiresAt),
		biztime.FromMillis(model.CreatedAt),
	)
}
