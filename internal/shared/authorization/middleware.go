package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys written by the auth middleware.
const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// ActorFromContext returns the authenticated actor set by the auth
// middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	userID, ok := c.Get(ContextKeyUserID)
	if !ok {
		return Actor{}, false
	}
	id, ok := userID.(uint)
	if !ok {
		return Actor{}, false
	}
	role, ok := c.Get(ContextKeyRole)
	if !ok {
		return Actor{}, false
	}
	r, ok := role.(Role)
	if !ok || !r.IsValid() {
		return Actor{}, false
	}
	return Actor{UserID: id, Role: r}, true
}

// SetActor stores the actor on the gin context.
func SetActor(c *gin.Context, actor Actor) {
	c.Set(ContextKeyUserID, actor.UserID)
	c.Set(ContextKeyRole, actor.Role)
}

// RequireRole aborts with 403 unless the actor holds one of roles.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"type": "unauthorized", "message": "user not authenticated"},
			})
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   gin.H{"type": "forbidden", "message": "insufficient role", "details": string(ReasonRoleInsufficient)},
		})
	}
}
