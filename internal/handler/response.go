package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/auth"
	"dayflow-backend/internal/middleware"
)

// respondError writes err as {"error": message} with the status of its kind.
func respondError(c *fiber.Ctx, err error) error {
	appErr := apperror.From(err)
	return c.Status(appErr.Status()).JSON(fiber.Map{"error": appErr.Message})
}

// caller returns the identity stored by middleware.Auth.
func caller(c *fiber.Ctx) (auth.Identity, error) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		return identity, apperror.Unauthenticated("Access token required")
	}
	return identity, nil
}
