package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"catalog-review-backend/internal/shared"
	"catalog-review-backend/internal/shared/policy"
	"catalog-review-backend/internal/shared/response"
	"catalog-review-backend/pkg/jwt"
)

const actorKey = "actor"

// TokenValidator validates access tokens
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// ActorLoader resolves the current state of the token's user. Role and
// superuser flag are read from storage on every request so role changes
// take effect immediately.
type ActorLoader interface {
	LoadActor(ctx context.Context, userID uuid.UUID) (policy.Actor, error)
}

// AuthMiddleware resolves the request actor. A request without an
// Authorization header is anonymous; a present but invalid token is 401.
func AuthMiddleware(tokens TokenValidator, users ActorLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			SetActor(c, policy.Anonymous())
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		actor, err := users.LoadActor(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				response.Unauthorized(c, "user no longer exists")
				c.Abort()
				return
			}
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to load actor")
			response.InternalServerError(c, "Internal server error")
			c.Abort()
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

func SetActor(c *gin.Context, actor policy.Actor) {
	c.Set(actorKey, actor)
}

// ActorFrom returns the request actor, anonymous when none was set
func ActorFrom(c *gin.Context) policy.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Anonymous()
}

// Authorize gates a route group on the resource kind. Ownership of
// authored objects is checked later by the service.
func Authorize(kind policy.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := policy.Request{
			Kind:   kind,
			Class:  policy.ClassOf(c.Request.Method),
			Action: policy.ActionOf(c.Request.Method),
		}
		if err := policy.Precheck(ActorFrom(c), req); err != nil {
			response.HandleError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
