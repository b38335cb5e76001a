package auth

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	"github.com/deskline-inc/deskline/internal/shared/errors"
)

// DefaultAccessTTL applies when no expiry is configured.
const DefaultAccessTTL = time.Hour

// Claims carries the actor identity. roleId is the integer role at the token
// boundary.
type Claims struct {
	UserID uint `json:"userId"`
	RoleID int  `json:"roleId"`
	jwt.RegisteredClaims
}

// Actor converts the claims, rejecting unknown roles.
func (c *Claims) Actor() (authorization.Actor, error) {
	role, err := authorization.RoleFromID(c.RoleID)
	if err != nil {
		return authorization.Actor{}, err
	}
	if c.UserID == 0 {
		return authorization.Actor{}, fmt.Errorf("token has no user id")
	}
	return authorization.Actor{UserID: c.UserID, Role: role}, nil
}

var ErrTokenExpired = stderrors.New("token expired")

// JWTService signs and verifies HS256 access tokens.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTService fails with a configuration error when secret is empty.
func NewJWTService(secret string, accessExpSeconds int) (*JWTService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.NewConfigurationError("JWT secret is not configured")
	}
	ttl := time.Duration(accessExpSeconds) * time.Second
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: ttl,
	}, nil
}

// Issue signs a token for actor and returns it with its lifetime in seconds.
func (s *JWTService) Issue(actor authorization.Actor) (string, int64, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		UserID: actor.UserID,
		RoleID: actor.Role.ID(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", actor.UserID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, int64(s.accessTTL / time.Second), nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(biztime.NowUTC))
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}
