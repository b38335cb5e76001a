package usecases

import (
	"context"
	"encoding/json"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
	// Fields is the raw request object, keyed by API field name.
	Fields map[string]json.RawMessage
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   UserReader
	publisher  EventPublisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo UserReader,
	publisher EventPublisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute applies a whitelisted partial update. Unknown fields are rejected
// before storage is read.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	patch, err := ticket.ParsePatch(cmd.Fields)
	if err != nil {
		uc.logger.Warnw("invalid ticket update", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	t, err := loadTicket(ctx, uc.ticketRepo, cmd.TicketID, uc.logger)
	if err != nil {
		return nil, err
	}

	if !cmd.Actor.Role.IsStaff() {
		if decision := authorization.CanModify(cmd.Actor, authorization.Resource{OwnerUserID: t.RequesterUserID()}); !decision.Allowed {
			uc.logger.Warnw("user cannot update ticket", "ticket_id", t.ID(), "user_id", cmd.Actor.UserID, "reason", decision.Reason)
			return nil, forbidden(decision.Reason)
		}
		if patch.RequiresStaff() {
			uc.logger.Warnw("user cannot update staff fields", "ticket_id", t.ID(), "fields", patch.Fields())
			return nil, forbidden(authorization.ReasonRoleInsufficient)
		}
	}

	if patch.AssigneeUserID.Set && patch.AssigneeUserID.Value != nil {
		if err := uc.checkAssignee(ctx, *patch.AssigneeUserID.Value); err != nil {
			return nil, err
		}
	}

	if err := t.Apply(patch); err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t, patch.Columns()); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, asStoreError("update ticket", err)
	}

	ev := ticket.NewTicketEvent(ticket.EventTicketUpdated, t.ID(), cmd.Actor.UserID, t.UpdatedAt())
	ev.Fields = patch.Fields()
	publish(ctx, uc.publisher, uc.logger, ev)

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "fields", patch.Fields())
	return dto.ToTicketDTO(t), nil
}

func (uc *UpdateTicketUseCase) checkAssignee(ctx context.Context, userID uint) error {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load assignee", "user_id", userID, "error", err)
		return errors.NewStoreError("load assignee", err)
	}
	if u == nil {
		return errors.NewInvalidReferenceError("Assignee does not exist", "assigneeUserId")
	}
	return nil
}
