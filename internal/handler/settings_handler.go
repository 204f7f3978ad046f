package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/usecase"
)

type SettingsHandler struct {
	usecase *usecase.SettingsUsecase
}

func NewSettingsHandler(u *usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{usecase: u}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.usecase.Get())
}

// Update merges the known keys of the body into the settings; unknown keys
// are ignored.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var patch model.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return respondError(c, apperror.Validation("Invalid request body"))
	}

	settings := h.usecase.Update(c.UserContext(), patch)
	return c.JSON(fiber.Map{"message": "Settings updated", "settings": settings})
}
