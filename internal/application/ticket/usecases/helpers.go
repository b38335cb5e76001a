package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

func forbidden(reason authorization.ForbiddenReason) error {
	return errors.NewForbiddenError("Forbidden", string(reason))
}

func ticketNotFound() error {
	return errors.NewNotFoundError("Ticket not found")
}

func commentNotFound() error {
	return errors.NewNotFoundError("Comment not found")
}

// loadTicket returns the ticket or a NotFound error.
func loadTicket(ctx context.Context, repo ticket.TicketRepository, id uint, log logger.Interface) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load ticket", "ticket_id", id, "error", err)
		return nil, errors.NewStoreError("load ticket", err)
	}
	if t == nil {
		return nil, ticketNotFound()
	}
	return t, nil
}

func loadComment(ctx context.Context, repo ticket.CommentRepository, id uint, log logger.Interface) (*ticket.Comment, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to load comment", "comment_id", id, "error", err)
		return nil, errors.NewStoreError("load comment", err)
	}
	if c == nil {
		return nil, commentNotFound()
	}
	return c, nil
}

// asStoreError keeps typed errors and wraps everything else.
func asStoreError(op string, err error) error {
	if errors.IsAppError(err) {
		return err
	}
	return errors.NewStoreError(op, err)
}

func publish(ctx context.Context, pub EventPublisher, log logger.Interface, events ...ticket.Event) {
	if pub == nil {
		return
	}
	for _, ev := range events {
		if err := pub.Publish(ctx, ev); err != nil {
			log.Warnw("failed to publish ticket event", "type", ev.Type, "ticket_id", ev.TicketID, "error", err)
		}
	}
}

func render(r CommentRenderer, text string) string {
	if r == nil {
		return ""
	}
	return r.Render(text)
}
