package ticket

import "time"

type EventType string

const (
	EventTicketCreated  EventType = "ticket.created"
	EventTicketUpdated  EventType = "ticket.updated"
	EventTicketDeleted  EventType = "ticket.deleted"
	EventCommentCreated EventType = "comment.created"
	EventFirstResponse  EventType = "ticket.first_response"
)

// Event is published after a ticket or comment change has been committed.
type Event struct {
	Type       EventType
	TicketID   uint
	CommentID  uint
	ActorID    uint
	Fields     []string
	OccurredAt time.Time
}

func NewTicketEvent(eventType EventType, ticketID, actorID uint, at time.Time) Event {
	return Event{
		Type:       eventType,
		TicketID:   ticketID,
		ActorID:    actorID,
		OccurredAt: at,
	}
}

func NewCommentCreatedEvent(c *Comment, at time.Time) Event {
	return Event{
		Type:       EventCommentCreated,
		TicketID:   c.TicketID(),
		CommentID:  c.ID(),
		ActorID:    c.UserID(),
		OccurredAt: at,
	}
}
