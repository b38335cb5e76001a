package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "github.com/deskline-inc/deskline/internal/interfaces/http/handlers/ticket"
	"github.com/deskline-inc/deskline/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket and comment routes.
type TicketRouteConfig struct {
	TicketHandler        *ticketHandlers.TicketHandler
	CommentHandler       *ticketHandlers.CommentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTicketRoutes configures ticket routes and the comment routes nested
// under a ticket.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.CreateTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		tickets.GET("/:ticketId/comments", cfg.CommentHandler.ListComments)
		tickets.POST("/:ticketId/comments", cfg.CommentHandler.AddComment)

		tickets.GET("/:ticketId", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:ticketId", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:ticketId",
			cfg.PermissionMiddleware.RequirePermission("tickets", "delete"),
			cfg.TicketHandler.DeleteTicket)
	}
}

// SetupCommentRoutes configures routes that address a comment directly.
func SetupCommentRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	comments := api.Group("/comments")
	comments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		comments.PUT("/:commentId", cfg.CommentHandler.UpdateComment)
		comments.DELETE("/:commentId", cfg.CommentHandler.DeleteComment)
		comments.POST("/:commentId/mark-viewed",
			cfg.PermissionMiddleware.RequirePermission("comments", "mark_viewed"),
			cfg.CommentHandler.MarkCommentViewed)
	}
}
