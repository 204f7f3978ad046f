package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/usecase"
)

type EmployeeHandler struct {
	usecase *usecase.EmployeeUsecase
}

func NewEmployeeHandler(u *usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{usecase: u}
}

// UpdateEmployeeRequest replaces the whole profile; omitted fields are cleared.
type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.usecase.List())
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return respondError(c, apperror.NotFound("Employee not found"))
	}

	user, err := h.usecase.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return respondError(c, apperror.NotFound("Employee not found"))
	}

	var req UpdateEmployeeRequest
	if err := bind(c, &req, "Invalid request body"); err != nil {
		return respondError(c, err)
	}

	err := h.usecase.Update(id, model.Profile{
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Employee updated successfully"})
}

// paramID reads a positive :id path parameter.
func paramID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
