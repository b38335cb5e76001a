package http

import (
	"github.com/deskline-inc/deskline/internal/interfaces/http/handlers"
	adminHandlers "github.com/deskline-inc/deskline/internal/interfaces/http/handlers/admin"
	ticketHandlers "github.com/deskline-inc/deskline/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler    *handlers.HealthHandler
	authHandler      *handlers.AuthHandler
	ticketHandler    *ticketHandlers.TicketHandler
	commentHandler   *ticketHandlers.CommentHandler
	userHandler      *adminHandlers.UserHandler
	dashboardHandler *adminHandlers.DashboardHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	} else {
		log.Warnw("database handle unavailable for health checks", "error", err)
	}

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(pinger, log),
		authHandler: handlers.NewAuthHandler(
			u.register, u.login, u.getUser, u.requestPasswordReset, u.resetPassword, log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicket, u.listTickets, u.getTicket, u.updateTicket, u.deleteTicket, log,
		),
		commentHandler: ticketHandlers.NewCommentHandler(
			u.listComments, u.addComment, u.updateComment, u.deleteComment, u.markCommentViewed, log,
		),
		userHandler:      adminHandlers.NewUserHandler(u.createUser, u.listUsers, u.getUser, u.updateUser, log),
		dashboardHandler: adminHandlers.NewDashboardHandler(u.getDashboard, log),
	}
}
