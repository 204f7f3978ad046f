package handler

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/usecase"
)

type LeaveHandler struct {
	usecase *usecase.LeaveUsecase
}

func NewLeaveHandler(u *usecase.LeaveUsecase) *LeaveHandler {
	return &LeaveHandler{usecase: u}
}

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
}

type UpdateLeaveRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}

	var req CreateLeaveRequest
	if err = bind(c, &req, "leave_type, start_date, and end_date are required (YYYY-MM-DD)"); err != nil {
		return respondError(c, err)
	}

	leave, err := h.usecase.Create(c.UserContext(), identity.ID, usecase.LeaveInput{
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Leave request created", "leave": leave})
}

func (h *LeaveHandler) List(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.usecase.List(identity))
}

func (h *LeaveHandler) Balance(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.usecase.Balance(identity.ID))
}

func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return respondError(c, apperror.NotFound("Leave request not found"))
	}

	var req UpdateLeaveRequest
	if err := bind(c, &req, "Status is required"); err != nil {
		return respondError(c, err)
	}

	leave, err := h.usecase.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Leave request updated", "leave": leave})
}
