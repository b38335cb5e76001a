package handlers

import (
	"github.com/deskline-inc/deskline/internal/application/user/usecases"
)

type RegisterRequest struct {
	Username        string  `json:"username" binding:"required,notblank,min=3,max=50"`
	Email           string  `json:"email" binding:"required,email,max=255"`
	Password        string  `json:"password" binding:"required,password"`
	FirstName       string  `json:"firstName" binding:"required,notblank,max=100"`
	LastName        string  `json:"lastName" binding:"required,notblank,max=100"`
	PhoneNumber     string  `json:"phoneNumber" binding:"required,phone"`
	Department      *string `json:"department" binding:"omitempty,max=255"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,max=255"`
}

func (r RegisterRequest) ToRegistration() usecases.Registration {
	return usecases.Registration{
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		PhoneNumber:     r.PhoneNumber,
		Department:      r.Department,
		ProfileImageURL: r.ProfileImageURL,
	}
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required,notblank"`
	Password        string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required,notblank"`
	NewPassword string `json:"newPassword" binding:"required,password"`
}
