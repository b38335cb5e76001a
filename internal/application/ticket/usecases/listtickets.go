package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor authorization.Actor
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute lists the tickets visible to the actor, most recently updated
// first. Standard users only see tickets they requested.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketListItemDTO, error) {
	uc.logger.Infow("executing list tickets use case", "user_id", query.Actor.UserID, "role", query.Actor.Role)

	scope := authorization.ScopeTicketList(query.Actor)
	items, err := uc.ticketRepo.List(ctx, ticket.ListFilter{RequesterUserID: scope.RequesterUserID})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewStoreError("list tickets", err)
	}

	out := make([]dto.TicketListItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToTicketListItemDTO(item))
	}
	return out, nil
}
