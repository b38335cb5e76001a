package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/domain/user"
)

// Transactor runs fn in one unit of work. *db.TransactionManager satisfies it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher delivers committed ticket events. Failures are reported
// but never undo the change.
type EventPublisher interface {
	Publish(ctx context.Context, event ticket.Event) error
}

// CommentRenderer turns comment text into safe HTML.
type CommentRenderer interface {
	Render(text string) string
}

type UserReader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketListItemDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type UpdateCommentExecutor interface {
	Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error)
}

type MarkCommentViewedExecutor interface {
	Execute(ctx context.Context, cmd MarkCommentViewedCommand) (*MarkCommentViewedResult, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error)
}
