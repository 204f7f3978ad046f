package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/usecase"
)

type PayrollHandler struct {
	usecase *usecase.PayrollUsecase
}

func NewPayrollHandler(u *usecase.PayrollUsecase) *PayrollHandler {
	return &PayrollHandler{usecase: u}
}

type CreatePayrollRequest struct {
	UserID      uint     `json:"user_id" validate:"required"`
	Month       string   `json:"month" validate:"required"`
	Year        int      `json:"year" validate:"required"`
	BasicSalary *float64 `json:"basic_salary" validate:"required"`
	Allowances  float64  `json:"allowances"`
	Deductions  float64  `json:"deductions"`
}

func (h *PayrollHandler) List(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.usecase.List(identity))
}

func (h *PayrollHandler) Create(c *fiber.Ctx) error {
	var req CreatePayrollRequest
	if err := bind(c, &req, "user_id, month, year, and basic_salary are required"); err != nil {
		return respondError(c, err)
	}

	p, err := h.usecase.Create(c.UserContext(), usecase.PayrollInput{
		UserID:      req.UserID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: *req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Payroll created", "payroll": p})
}
