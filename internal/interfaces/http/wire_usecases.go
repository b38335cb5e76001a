package http

import (
	"time"

	ticketUsecases "github.com/deskline-inc/deskline/internal/application/ticket/usecases"
	userUsecases "github.com/deskline-inc/deskline/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth & users
	register             *userUsecases.RegisterUseCase
	login                *userUsecases.LoginUseCase
	getUser              *userUsecases.GetUserUseCase
	requestPasswordReset *userUsecases.RequestPasswordResetUseCase
	resetPassword        *userUsecases.ResetPasswordUseCase
	createUser           *userUsecases.CreateUserUseCase
	listUsers            *userUsecases.ListUsersUseCase
	updateUser           *userUsecases.UpdateUserUseCase
	purgeResetTokens     *userUsecases.PurgeExpiredResetTokensUseCase

	// Tickets
	createTicket *ticketUsecases.CreateTicketUseCase
	listTickets  *ticketUsecases.ListTicketsUseCase
	getTicket    *ticketUsecases.GetTicketUseCase
	updateTicket *ticketUsecases.UpdateTicketUseCase
	deleteTicket *ticketUsecases.DeleteTicketUseCase
	getDashboard *ticketUsecases.GetDashboardUseCase

	// Comments
	listComments      *ticketUsecases.ListCommentsUseCase
	addComment        *ticketUsecases.AddCommentUseCase
	updateComment     *ticketUsecases.UpdateCommentUseCase
	deleteComment     *ticketUsecases.DeleteCommentUseCase
	markCommentViewed *ticketUsecases.MarkCommentViewedUseCase
}

// initUseCases builds every use case from the repositories and the
// infrastructure services created in initInfrastructure.
func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	resetTTL := time.Duration(c.cfg.Auth.Token.ResetExpiresMinutes) * time.Minute

	c.ucs = &allUseCases{
		register:             userUsecases.NewRegisterUseCase(r.userRepo, c.hasher, log),
		login:                userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, log),
		getUser:              userUsecases.NewGetUserUseCase(r.userRepo, log),
		requestPasswordReset: userUsecases.NewRequestPasswordResetUseCase(r.userRepo, r.resetTokenRepo, r.txMgr, resetTTL, log),
		resetPassword:        userUsecases.NewResetPasswordUseCase(r.userRepo, r.resetTokenRepo, c.hasher, r.txMgr, log),
		createUser:           userUsecases.NewCreateUserUseCase(r.userRepo, c.hasher, log),
		listUsers:            userUsecases.NewListUsersUseCase(r.userRepo, log),
		updateUser:           userUsecases.NewUpdateUserUseCase(r.userRepo, c.hasher, log),
		purgeResetTokens:     userUsecases.NewPurgeExpiredResetTokensUseCase(r.resetTokenRepo, log),

		createTicket: ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, c.publisher, log),
		listTickets:  ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log),
		getTicket:    ticketUsecases.NewGetTicketUseCase(r.ticketRepo, log),
		updateTicket: ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.userRepo, c.publisher, log),
		deleteTicket: ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, r.commentRepo, r.txMgr, c.publisher, log),
		getDashboard: ticketUsecases.NewGetDashboardUseCase(r.ticketRepo, r.userRepo, log),

		listComments:      ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.commentRepo, c.renderer, log),
		addComment:        ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, r.txMgr, c.renderer, c.publisher, log),
		updateComment:     ticketUsecases.NewUpdateCommentUseCase(r.commentRepo, c.renderer, log),
		deleteComment:     ticketUsecases.NewDeleteCommentUseCase(r.commentRepo, log),
		markCommentViewed: ticketUsecases.NewMarkCommentViewedUseCase(r.commentRepo, c.renderer, log),
	}
}
