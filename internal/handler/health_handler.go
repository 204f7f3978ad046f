package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/repository"
)

type HealthHandler struct {
	db *repository.DB
}

func NewHealthHandler(db *repository.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	counts := h.db.Counts()
	return c.JSON(fiber.Map{
		"status":     "ok",
		"message":    "Dayflow API is running",
		"users":      counts.Users,
		"attendance": counts.Attendance,
		"leaves":     counts.Leaves,
		"payroll":    counts.Payroll,
	})
}
