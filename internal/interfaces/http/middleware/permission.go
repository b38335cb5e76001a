package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type PermissionEnforcer interface {
	Enforce(role, resource, action string) (bool, error)
}

// PermissionMiddleware gates routes on the casbin policy for the actor's
// role. It runs after RequireAuth.
type PermissionMiddleware struct {
	enforcer PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PermissionEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := authorization.ActorFromContext(c)
		if !ok {
			abortWithError(c, errors.NewUnauthorizedError("user not authenticated"))
			return
		}

		allowed, err := m.enforcer.Enforce(actor.Role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", actor.UserID, "resource", resource, "action", action)
			abortWithError(c, errors.NewInternalError("permission check failed"))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", actor.UserID, "role", actor.Role.String(), "resource", resource, "action", action)
			abortWithError(c, errors.NewForbiddenError("insufficient permissions", string(authorization.ReasonRoleInsufficient)))
			return
		}

		c.Next()
	}
}
