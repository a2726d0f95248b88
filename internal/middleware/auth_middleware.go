package middleware

import (
	"strings"

	"progee-api/internal/policy"
	"progee-api/internal/repository"
	"progee-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const actorKey = "actor"

// ResolveActor builds the request's actor from the Authorization header
// and stores it in the context. Permissions are loaded fresh from the
// database so role changes take effect immediately. A missing or
// invalid token resolves to the anonymous actor; public read endpoints
// still work, every permission check simply fails.
func ResolveActor(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(actorKey, resolve(c, userRepo))
		return c.Next()
	}
}

// RequireAuth rejects requests whose actor is anonymous. Used on
// endpoints where even the permission check needs an identity, such as
// voting.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := Actor(c)
		if !actor.Authenticated {
			return c.Status(401).JSON(fiber.Map{"error": "Missing or invalid authorization token"})
		}
		return c.Next()
	}
}

// Actor returns the actor resolved for this request. Falls back to
// anonymous if the resolve middleware did not run.
func Actor(c *fiber.Ctx) policy.Actor {
	if actor, ok := c.Locals(actorKey).(policy.Actor); ok {
		return actor
	}
	return policy.Anonymous()
}

func resolve(c *fiber.Ctx, userRepo repository.UserRepository) policy.Actor {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return policy.Anonymous()
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return policy.Anonymous()
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return policy.Anonymous()
	}

	user, err := userRepo.FindByID(claims.UserID)
	if err != nil || !user.IsActive {
		return policy.Anonymous()
	}

	return policy.NewActor(user.ID, user.PermissionCodes())
}
