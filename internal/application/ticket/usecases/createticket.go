package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       authorization.Actor
	Subject     string
	Description string
	// Priority and Category fall back to their defaults when empty.
	Priority string
	Category string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	publisher  EventPublisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	publisher EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "requester_user_id", cmd.Actor.UserID)

	var priority vo.Priority
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("Validation failed", err.Error())
		}
		priority = p
	}
	var category vo.Category
	if cmd.Category != "" {
		c, err := vo.NewCategory(cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError("Validation failed", err.Error())
		}
		category = c
	}

	t, err := ticket.NewTicket(cmd.Actor.UserID, cmd.Subject, cmd.Description, priority, category)
	if err != nil {
		uc.logger.Warnw("invalid ticket", "error", err)
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, asStoreError("save ticket", err)
	}

	publish(ctx, uc.publisher, uc.logger,
		ticket.NewTicketEvent(ticket.EventTicketCreated, t.ID(), cmd.Actor.UserID, t.CreatedAt()))

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID())
	return dto.ToTicketDTO(t), nil
}
