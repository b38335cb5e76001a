package ticket

import (
	"encoding/json"

	"github.com/deskline-inc/deskline/internal/application/ticket/usecases"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
)

type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required,notblank,min=3,max=255"`
	Description string `json:"description" binding:"required,notblank"`
	Priority    string `json:"priority" binding:"omitempty,ticketpriority"`
	Category    string `json:"category" binding:"omitempty,ticketcategory"`
}

func (r CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       actor,
		Subject:     r.Subject,
		Description: r.Description,
		Priority:    r.Priority,
		Category:    r.Category,
	}
}

// UpdateTicketRequest is the raw JSON object of a partial update. Field
// names and values are checked against the ticket whitelist downstream.
type UpdateTicketRequest map[string]json.RawMessage

type AddCommentRequest struct {
	CommentText     string `json:"commentText" binding:"required,notblank,max=5000"`
	IsInternal      bool   `json:"isInternal"`
	ParentCommentID *uint  `json:"parentCommentId" binding:"omitempty,gt=0"`
}

type UpdateCommentRequest struct {
	CommentText string `json:"commentText" binding:"required,notblank,max=5000"`
}
