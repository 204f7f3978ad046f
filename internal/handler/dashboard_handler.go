package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/usecase"
)

type DashboardHandler struct {
	usecase *usecase.DashboardUsecase
}

func NewDashboardHandler(u *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{usecase: u}
}

// GetStats answers with admin or employee statistics depending on the caller.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.usecase.Stats(identity))
}
