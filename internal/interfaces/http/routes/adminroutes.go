package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/deskline-inc/deskline/internal/interfaces/http/handlers/admin"
	"github.com/deskline-inc/deskline/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for admin-only routes.
type AdminRouteConfig struct {
	UserHandler          *adminHandlers.UserHandler
	DashboardHandler     *adminHandlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures admin-only routes.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	{
		admin.GET("/dashboard",
			cfg.PermissionMiddleware.RequirePermission("admin", "read"),
			cfg.DashboardHandler.GetDashboard)

		users := admin.Group("/users")
		users.POST("", cfg.PermissionMiddleware.RequirePermission("users", "write"), cfg.UserHandler.CreateUser)
		users.GET("", cfg.PermissionMiddleware.RequirePermission("users", "read"), cfg.UserHandler.ListUsers)
		users.GET("/:userId", cfg.PermissionMiddleware.RequirePermission("users", "read"), cfg.UserHandler.GetUser)
		users.PUT("/:userId", cfg.PermissionMiddleware.RequirePermission("users", "write"), cfg.UserHandler.UpdateUser)
	}
}
