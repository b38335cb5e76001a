package admin

import (
	"encoding/json"

	"github.com/deskline-inc/deskline/internal/application/user/usecases"
)

type CreateUserRequest struct {
	Username        string  `json:"username" binding:"required,notblank,min=3,max=50"`
	Email           string  `json:"email" binding:"required,email,max=255"`
	Password        string  `json:"password" binding:"required,password"`
	FirstName       string  `json:"firstName" binding:"required,notblank,max=100"`
	LastName        string  `json:"lastName" binding:"required,notblank,max=100"`
	PhoneNumber     string  `json:"phoneNumber" binding:"required,phone"`
	Department      *string `json:"department" binding:"omitempty,max=255"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,max=255"`
	RoleID          int     `json:"roleId" binding:"required,oneof=1 2 3"`
	IsActive        *bool   `json:"isActive"`
}

func (r CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Registration: usecases.Registration{
			Username:        r.Username,
			Email:           r.Email,
			Password:        r.Password,
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			PhoneNumber:     r.PhoneNumber,
			Department:      r.Department,
			ProfileImageURL: r.ProfileImageURL,
		},
		RoleID:   r.RoleID,
		IsActive: r.IsActive,
	}
}

// UpdateUserRequest is the raw JSON object of a partial account update.
type UpdateUserRequest map[string]json.RawMessage
