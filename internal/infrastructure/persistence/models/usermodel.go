package models

import (
	"github.com/deskline-inc/deskline/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
// Username and email are stored normalized to lower case.
type UserModel struct {
	ID              uint    `gorm:"primaryKey"`
	Username        string  `gorm:"uniqueIndex;size:50;not null"`
	Email           string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string  `gorm:"size:255;not null"`
	FirstName       string  `gorm:"size:100;not null"`
	LastName        string  `gorm:"size:100;not null"`
	PhoneNumber     string  `gorm:"size:30;not null"`
	Department      *string `gorm:"size:255"`
	ProfileImageURL *string `gorm:"column:profile_image_url;size:255"`
	RoleID          int     `gorm:"not null;index"`
	IsActive        bool    `gorm:"not null"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

type PasswordResetTokenModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	TokenHash string `gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt int64  `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (PasswordResetTokenModel) TableName() string {
	return constants.TablePasswordResetTokens
}
