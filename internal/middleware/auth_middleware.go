package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/auth"
)

const identityKey = "identity"

// Auth verifies the bearer token and stores the caller's identity in the
// request context. A missing token is 401; a bad or expired one is 403.
func Auth(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Access token required"})
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// CurrentUser returns the identity stored by Auth. ok is false on routes that
// are not behind Auth.
func CurrentUser(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(identityKey).(auth.Identity)
	return identity, ok
}

// bearerToken takes the second single-space separated part of the header.
// Any scheme word is accepted; a doubled space leaves the token empty.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
