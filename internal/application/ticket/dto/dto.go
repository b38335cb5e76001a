package dto

import (
	"time"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
)

type TicketDTO struct {
	TicketID         uint       `json:"ticketId"`
	RequesterUserID  uint       `json:"requesterUserId"`
	AssigneeUserID   *uint      `json:"assigneeUserId"`
	Subject          string     `json:"subject"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	Category         string     `json:"category"`
	DueDate          *string    `json:"dueDate"`
	FirstRespondedAt *time.Time `json:"firstRespondedAt"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type TicketListItemDTO struct {
	TicketID         uint       `json:"ticketId"`
	Subject          string     `json:"subject"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	Category         string     `json:"category"`
	RequesterUserID  uint       `json:"requesterUserId"`
	RequesterName    string     `json:"requesterName"`
	AssigneeUserID   *uint      `json:"assigneeUserId"`
	AssigneeName     *string    `json:"assigneeName"`
	FirstRespondedAt *time.Time `json:"firstRespondedAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type CommentAuthorDTO struct {
	UserID   uint   `json:"userId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	RoleID   int    `json:"roleId"`
}

type CommentDTO struct {
	CommentID            uint              `json:"commentId"`
	TicketID             uint              `json:"ticketId"`
	UserID               uint              `json:"userId"`
	CommentText          string            `json:"commentText"`
	CommentHTML          string            `json:"commentHtml,omitempty"`
	IsInternal           bool              `json:"isInternal"`
	ParentCommentID      *uint             `json:"parentCommentId"`
	CreatedAt            time.Time         `json:"createdAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
	FirstViewedByAgentAt *time.Time        `json:"firstViewedByAgentAt"`
	Author               *CommentAuthorDTO `json:"author,omitempty"`
}

type DashboardDTO struct {
	Greeting     string           `json:"greeting"`
	AdminUserID  uint             `json:"adminUserId"`
	AdminName    string           `json:"adminName"`
	TicketCounts map[string]int64 `json:"ticketCounts"`
	TotalTickets int64            `json:"totalTickets"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	var due *string
	if d := t.DueDate(); d != nil {
		s := d.Format(ticket.DueDateLayout)
		due = &s
	}

	return &TicketDTO{
		TicketID:         t.ID(),
		RequesterUserID:  t.RequesterUserID(),
		AssigneeUserID:   t.AssigneeUserID(),
		Subject:          t.Subject(),
		Description:      t.Description(),
		Status:           t.Status().String(),
		Priority:         t.Priority().String(),
		Category:         t.Category().String(),
		DueDate:          due,
		FirstRespondedAt: t.FirstRespondedAt(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
	}
}

func ToTicketListItemDTO(item *ticket.ListItem) TicketListItemDTO {
	return TicketListItemDTO{
		TicketID:         item.ID,
		Subject:          item.Subject,
		Status:           item.Status.String(),
		Priority:         item.Priority.String(),
		Category:         item.Category.String(),
		RequesterUserID:  item.RequesterUserID,
		RequesterName:    item.RequesterName,
		AssigneeUserID:   item.AssigneeUserID,
		AssigneeName:     item.AssigneeName,
		FirstRespondedAt: item.FirstRespondedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

// ToCommentDTO converts a comment. html is the rendered text and may be empty.
func ToCommentDTO(c *ticket.Comment, html string) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		CommentID:            c.ID(),
		TicketID:             c.TicketID(),
		UserID:               c.UserID(),
		CommentText:          c.Text(),
		CommentHTML:          html,
		IsInternal:           c.IsInternal(),
		ParentCommentID:      c.ParentCommentID(),
		CreatedAt:            c.CreatedAt(),
		UpdatedAt:            c.UpdatedAt(),
		FirstViewedByAgentAt: c.FirstViewedByAgentAt(),
	}
}

func ToCommentViewDTO(v *ticket.CommentView, html string) CommentDTO {
	out := ToCommentDTO(v.Comment, html)
	out.Author = &CommentAuthorDTO{
		UserID:   v.Author.UserID,
		FullName: v.Author.FullName,
		Role:     v.Author.Role.String(),
		RoleID:   v.Author.Role.ID(),
	}
	return *out
}
