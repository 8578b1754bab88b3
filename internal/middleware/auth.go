// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"context"
	"strings"

	"devconnect/internal/auth"
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// IdentityLocal is the Fiber locals key holding the verified auth.Identity.
const IdentityLocal = "identity"

// AuthRequired enforces bearer-token authentication for protected routes.
// On success the decoded identity is stored in c.Locals(IdentityLocal) and
// the user id in c.Locals("userID"); failure terminates the request.
func AuthRequired(codec *auth.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("No token, authorization denied"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		// The web client persists an absent token as the literal strings
		// "null" or "undefined"; treat those the same as no token.
		if tokenString == "" || tokenString == "null" || tokenString == "undefined" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token, authorization denied"))
		}

		identity, err := codec.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Token is not valid"))
		}

		c.Locals(IdentityLocal, identity)
		c.Locals("userID", identity.UserID)
		// Sync to UserContext for logging and downstream services.
		ctx := context.WithValue(c.UserContext(), UserIDKey, identity.UserID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// AdminRequired rejects requests whose identity does not carry the admin
// role. It must be composed after AuthRequired; it never runs standalone.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := c.Locals(IdentityLocal).(auth.Identity)
		if !ok || !identity.IsAdmin() {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Access denied. Admins only."))
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the verified identity attached by AuthRequired.
func IdentityFromCtx(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(IdentityLocal).(auth.Identity)
	return identity, ok
}
