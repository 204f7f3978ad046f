package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
)

var validate = validator.New()

// bind parses the JSON body into out and checks its validate tags. Any
// failure is reported as a validation error carrying message.
func bind(c *fiber.Ctx, out interface{}, message string) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.Validation(message)
	}
	if err := validate.Struct(out); err != nil {
		return apperror.Validation(message)
	}
	return nil
}
