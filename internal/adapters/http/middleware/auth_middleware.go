package middleware

import (
	"strings"

	"healthclaim-portal/internal/config"
	"healthclaim-portal/internal/core/domain"
	"healthclaim-portal/internal/pkg/jwt"
	"healthclaim-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ActorKey is the fiber locals key holding the caller's domain.Actor
const ActorKey = "actor"

// bearerToken extracts the token from the Authorization header
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

func actorFromClaims(claims *jwt.Claims) domain.Actor {
	return domain.Actor{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  domain.Role(claims.Role),
	}
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := bearerToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals(ActorKey, actorFromClaims(claims))
		return c.Next()
	}
}

// OptionalAuth middleware - doesn't require auth but sets the actor if a valid token is present
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessToken := bearerToken(c); accessToken != "" {
			if claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret); err == nil {
				c.Locals(ActorKey, actorFromClaims(claims))
			}
		}
		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if !actor.IsAuthenticated() {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if actor.Role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// ReviewerOnly middleware allows only REVIEWER role
func ReviewerOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleReviewer)
}

// GetActor returns the caller identity, or the anonymous actor
func GetActor(c *fiber.Ctx) domain.Actor {
	actor, _ := c.Locals(ActorKey).(domain.Actor)
	return actor
}
