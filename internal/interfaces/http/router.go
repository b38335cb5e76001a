package http

import (
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/deskline-inc/deskline/internal/infrastructure/config"
	"github.com/deskline-inc/deskline/internal/interfaces/http/middleware"
	"github.com/deskline-inc/deskline/internal/interfaces/http/routes"
	"github.com/deskline-inc/deskline/internal/shared/constants"
	"github.com/deskline-inc/deskline/internal/shared/logger"
	"github.com/deskline-inc/deskline/internal/shared/utils"
)

// Router owns the gin engine and the container that feeds it.
type Router struct {
	*Container
}

// NewRouter wires every dependency. Routes are registered by SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	utils.RegisterValidators()

	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(r.httpMetrics.Handler())

	r.engine.GET("/", r.hdlrs.healthHandler.Root)
	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/version", r.hdlrs.healthHandler.Version)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))

	api := r.engine.Group(constants.APIVersionPrefix)
	api.GET("/", r.hdlrs.healthHandler.Root)

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
	})

	ticketCfg := &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		CommentHandler:       r.hdlrs.commentHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	}
	routes.SetupTicketRoutes(api, ticketCfg)
	routes.SetupCommentRoutes(api, ticketCfg)

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		UserHandler:          r.hdlrs.userHandler,
		DashboardHandler:     r.hdlrs.dashboardHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	r.engine.NoRoute(func(c *gin.Context) {
		utils.ErrorResponse(c, nethttp.StatusNotFound, "route not found")
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
