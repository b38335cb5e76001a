package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deskline-inc/deskline/internal/infrastructure/auth"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/constants"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
	"github.com/deskline-inc/deskline/internal/shared/utils"
)

const contextKeyClaims = "token_claims"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	logger   logger.Interface
}

// NewAuthMiddleware builds the bearer token check. Tokens are stateless and
// stay valid until they expire.
func NewAuthMiddleware(verifier TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			abortWithError(c, errors.NewUnauthorizedError("missing or malformed authorization header"))
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			if stderrors.Is(err, auth.ErrTokenExpired) {
				abortWithError(c, errors.NewTokenExpiredError("access token"))
				return
			}
			m.logger.Warnw("failed to verify token", "error", err)
			abortWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			return
		}

		actor, err := claims.Actor()
		if err != nil {
			m.logger.Warnw("token carries an invalid identity", "error", err)
			abortWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			return
		}

		authorization.SetActor(c, actor)
		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(contextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func abortWithError(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}
