package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type DeleteTicketResult struct {
	DeletedCount int64
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       Transactor
	publisher   EventPublisher
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr Transactor,
	publisher EventPublisher,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute removes the ticket and its comments together. A missing ticket
// yields DeletedCount 0.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if !cmd.Actor.Role.IsAdmin() {
		return nil, forbidden(authorization.ReasonRoleInsufficient)
	}

	var deleted int64
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.commentRepo.DeleteByTicket(txCtx, cmd.TicketID); err != nil {
			return err
		}
		n, err := uc.ticketRepo.Delete(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewStoreError("delete ticket", err)
	}

	if deleted > 0 {
		publish(ctx, uc.publisher, uc.logger,
			ticket.NewTicketEvent(ticket.EventTicketDeleted, cmd.TicketID, cmd.Actor.UserID, biztime.NowUTC()))
		uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	}
	return &DeleteTicketResult{DeletedCount: deleted}, nil
}
