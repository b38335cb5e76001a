package dto

import (
	"time"

	"github.com/deskline-inc/deskline/internal/domain/user"
)

// UserDTO is the public profile of an account. It never carries the
// password hash.
type UserDTO struct {
	UserID          uint      `json:"userId"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	FullName        string    `json:"fullName"`
	PhoneNumber     string    `json:"phoneNumber"`
	Department      *string   `json:"department"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	RoleID          int       `json:"roleId"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type LoginDTO struct {
	Token     string   `json:"token"`
	TokenType string   `json:"tokenType"`
	ExpiresIn int64    `json:"expiresIn"`
	User      *UserDTO `json:"user"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		UserID:          u.ID(),
		Username:        u.Username(),
		Email:           u.Email(),
		FirstName:       u.FirstName(),
		LastName:        u.LastName(),
		FullName:        u.FullName(),
		PhoneNumber:     u.PhoneNumber(),
		Department:      u.Department(),
		ProfileImageURL: u.ProfileImageURL(),
		RoleID:          u.Role().ID(),
		Role:            u.Role().String(),
		IsActive:        u.IsActive(),
		CreatedAt:       u.CreatedAt(),
		UpdatedAt:       u.UpdatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	out := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}
