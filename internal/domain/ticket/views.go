package ticket

import (
	"time"

	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
)

// ListItem is the summary row of a ticket listing with user names joined in.
type ListItem struct {
	ID               uint
	Subject          string
	Status           vo.TicketStatus
	Priority         vo.Priority
	Category         vo.Category
	RequesterUserID  uint
	RequesterName    string
	AssigneeUserID   *uint
	AssigneeName     *string
	FirstRespondedAt *time.Time
	UpdatedAt        time.Time
}

type CommentAuthor struct {
	UserID   uint
	FullName string
	Role     authorization.Role
}

type CommentView struct {
	Comment *Comment
	Author  CommentAuthor
}
