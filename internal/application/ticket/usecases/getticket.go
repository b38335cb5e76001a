package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket use case", "ticket_id", query.TicketID, "user_id", query.Actor.UserID)

	t, err := loadTicket(ctx, uc.ticketRepo, query.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}

	if !authorization.CanAccessTicket(query.Actor, t.RequesterUserID()) {
		uc.logger.Warnw("user cannot view ticket", "ticket_id", t.ID(), "user_id", query.Actor.UserID)
		return nil, forbidden(authorization.ReasonNotOwner)
	}

	return dto.ToTicketDTO(t), nil
}
