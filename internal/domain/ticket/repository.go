package ticket

import (
	"context"
	"time"

	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. Getters return (nil, nil) when the
// ticket does not exist.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// Update writes only the given columns plus updated_at.
	Update(ctx context.Context, t *Ticket, columns []string) error
	Delete(ctx context.Context, ticketID uint) (int64, error)
	List(ctx context.Context, filter ListFilter) ([]*ListItem, error)
	// SetFirstRespondedAt sets first_responded_at only while it is null and
	// reports whether this call did so.
	SetFirstRespondedAt(ctx context.Context, ticketID uint, at time.Time) (bool, error)
	CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error)
}

// ListFilter narrows a ticket listing. Nil fields do not filter.
type ListFilter struct {
	RequesterUserID *uint
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// ListByTicket returns comments oldest first with their authors.
	ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*CommentView, error)
	UpdateText(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, commentID uint) (int64, error)
	DeleteByTicket(ctx context.Context, ticketID uint) (int64, error)
	// MarkViewed sets first_viewed_by_agent_at only while it is null and
	// reports whether this call did so.
	MarkViewed(ctx context.Context, commentID uint, at time.Time) (bool, error)
}
