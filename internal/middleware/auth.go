package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/slooze/foodorder/internal/authz"
	"github.com/slooze/foodorder/internal/models"
	"github.com/slooze/foodorder/internal/token"
)

const actorKey = "actor"

type AuthMiddleware struct {
	codec *token.Codec
}

func NewAuthMiddleware(codec *token.Codec) *AuthMiddleware {
	return &AuthMiddleware{
		codec: codec,
	}
}

// Populate attaches the actor's identity to the request when a valid bearer
// token is present. It never rejects: a missing or bad token just leaves the
// request unauthenticated, and each handler decides whether that matters.
func (m *AuthMiddleware) Populate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		claims, err := m.codec.Verify(parts[1])
		if err != nil {
			return c.Next()
		}

		c.Locals(actorKey, authz.Context{
			Username:  claims.Subject,
			Role:      claims.Role,
			CountryID: claims.CountryID,
		})
		return c.Next()
	}
}

// RequireRole rejects requests whose actor is missing (401) or whose role is
// not in the allowed set (403).
func (m *AuthMiddleware) RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		for _, role := range roles {
			if actor.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}

// ActorFromCtx returns the identity attached by Populate, if any.
func ActorFromCtx(c *fiber.Ctx) (authz.Context, bool) {
	actor, ok := c.Locals(actorKey).(authz.Context)
	return actor, ok
}
