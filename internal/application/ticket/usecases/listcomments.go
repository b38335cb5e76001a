package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type ListCommentsQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	renderer    CommentRenderer
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	renderer CommentRenderer,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute returns the thread oldest first. Internal comments are left out
// for actors that may not see them.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	uc.logger.Infow("executing list comments use case", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)

	t, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}
	if !authorization.CanAccessTicket(query.Actor, t.RequesterUserID()) {
		return nil, forbidden(authorization.ReasonNotOwner)
	}

	views, err := uc.commentRepo.ListByTicket(ctx, t.ID(), authorization.CanViewInternal(query.Actor))
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewStoreError("list comments", err)
	}

	out := make([]dto.CommentDTO, 0, len(views))
	for _, v := range views {
		out = append(out, dto.ToCommentViewDTO(v, render(uc.renderer, v.Comment.Text())))
	}
	return out, nil
}
