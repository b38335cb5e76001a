package usecases

import (
	"context"
	"fmt"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type GetDashboardQuery struct {
	Actor authorization.Actor
}

type GetDashboardUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   UserReader
	logger     logger.Interface
}

func NewGetDashboardUseCase(ticketRepo ticket.TicketRepository, userRepo UserReader, logger logger.Interface) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*dto.DashboardDTO, error) {
	uc.logger.Infow("executing get dashboard use case", "user_id", query.Actor.UserID)

	if !query.Actor.Role.IsAdmin() {
		return nil, forbidden(authorization.ReasonRoleInsufficient)
	}

	admin, err := uc.userRepo.GetByID(ctx, query.Actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load admin", "user_id", query.Actor.UserID, "error", err)
		return nil, errors.NewStoreError("load admin", err)
	}
	if admin == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, errors.NewStoreError("count tickets", err)
	}

	out := &dto.DashboardDTO{
		Greeting:     fmt.Sprintf("Welcome to the admin dashboard, %s", admin.FullName()),
		AdminUserID:  admin.ID(),
		AdminName:    admin.FullName(),
		TicketCounts: make(map[string]int64, len(counts)),
	}
	for _, status := range vo.AllStatuses() {
		out.TicketCounts[status.String()] = counts[status]
		out.TotalTickets += counts[status]
	}
	return out, nil
}
