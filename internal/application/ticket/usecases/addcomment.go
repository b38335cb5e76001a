package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor           authorization.Actor
	TicketID        uint
	Text            string
	IsInternal      bool
	ParentCommentID *uint
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       Transactor
	renderer    CommentRenderer
	publisher   EventPublisher
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr Transactor,
	renderer CommentRenderer,
	publisher EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		renderer:    renderer,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute posts a comment. The ticket check, parent check, insert and the
// first-response stamp run in one transaction.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if cmd.IsInternal && !authorization.CanCreateInternal(cmd.Actor) {
		uc.logger.Warnw("user cannot create internal comment", "user_id", cmd.Actor.UserID)
		return nil, forbidden(authorization.ReasonRoleInsufficient)
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.UserID, cmd.Text, cmd.IsInternal, cmd.ParentCommentID)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	firstResponse := false
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := loadTicket(txCtx, uc.ticketRepo, cmd.TicketID, uc.logger)
		if err != nil {
			return err
		}
		if !authorization.CanAccessTicket(cmd.Actor, t.RequesterUserID()) {
			return forbidden(authorization.ReasonNotOwner)
		}

		if parentID := comment.ParentCommentID(); parentID != nil {
			parent, err := uc.commentRepo.GetByID(txCtx, *parentID)
			if err != nil {
				return errors.NewStoreError("load parent comment", err)
			}
			if parent == nil || parent.TicketID() != t.ID() {
				uc.logger.Warnw("parent comment not on ticket", "ticket_id", t.ID(), "parent_comment_id", *parentID)
				return errors.NewInvalidReferenceError("Parent comment does not belong to this ticket", "parentCommentId")
			}
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "error", err)
			return asStoreError("save comment", err)
		}

		if comment.CountsAsFirstResponse(cmd.Actor) && !t.HasFirstResponse() {
			set, err := uc.ticketRepo.SetFirstRespondedAt(txCtx, t.ID(), comment.CreatedAt())
			if err != nil {
				uc.logger.Errorw("failed to record first response", "ticket_id", t.ID(), "error", err)
				return errors.NewStoreError("record first response", err)
			}
			firstResponse = set
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	events := []ticket.Event{ticket.NewCommentCreatedEvent(comment, comment.CreatedAt())}
	if firstResponse {
		events = append(events, ticket.NewTicketEvent(ticket.EventFirstResponse, cmd.TicketID, cmd.Actor.UserID, comment.CreatedAt()))
	}
	publish(ctx, uc.publisher, uc.logger, events...)

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID, "first_response", firstResponse)
	return dto.ToCommentDTO(comment, render(uc.renderer, comment.Text())), nil
}
