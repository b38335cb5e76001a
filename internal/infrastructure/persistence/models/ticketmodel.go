package models

import (
	"gorm.io/datatypes"

	"github.com/deskline-inc/deskline/internal/shared/constants"
)

// TicketModel times are unix milliseconds written by the domain.
type TicketModel struct {
	ID               uint            `gorm:"primaryKey"`
	RequesterUserID  uint            `gorm:"not null;index"`
	AssigneeUserID   *uint           `gorm:"index"`
	Subject          string          `gorm:"size:255;not null"`
	Description      string          `gorm:"type:text;not null"`
	Status           string          `gorm:"size:32;not null;index"`
	Priority         string          `gorm:"size:16;not null"`
	Category         string          `gorm:"size:64;not null"`
	DueDate          *datatypes.Date `gorm:"column:due_date"`
	FirstRespondedAt *int64
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null;index"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID                   uint   `gorm:"primaryKey"`
	TicketID             uint   `gorm:"not null;index"`
	UserID               uint   `gorm:"not null;index"`
	CommentText          string `gorm:"type:text;not null"`
	IsInternal           bool   `gorm:"not null"`
	ParentCommentID      *uint  `gorm:"index"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`
	FirstViewedByAgentAt *int64
}

func (CommentModel) TableName() string {
	return constants.TableTicketComments
}

// TicketListRow is the scan target of the ticket listing join.
type TicketListRow struct {
	TicketModel
	RequesterFirstName string
	RequesterLastName  string
	AssigneeFirstName  *string
	AssigneeLastName   *string
}

// CommentViewRow is the scan target of the comment listing join.
type CommentViewRow struct {
	CommentModel
	AuthorFirstName string
	AuthorLastName  string
	AuthorRoleID    int
}
