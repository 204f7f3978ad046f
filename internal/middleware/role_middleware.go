package middleware

import "github.com/gofiber/fiber/v2"

// Role lets the request through only when the caller holds one of the
// allowed roles. It must run after Auth.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := CurrentUser(c)
		if ok {
			for _, role := range allowedRoles {
				if role == identity.Role {
					return c.Next()
				}
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
	}
}
