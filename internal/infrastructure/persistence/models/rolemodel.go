package models

import (
	"github.com/deskline-inc/deskline/internal/shared/constants"
)

// RoleModel is the read-only lookup of role names. Rows are seeded by
// migration and mirror authorization.Role.
type RoleModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
