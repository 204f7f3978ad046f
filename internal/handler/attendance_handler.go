package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/usecase"
)

type AttendanceHandler struct {
	usecase *usecase.AttendanceUsecase
}

func NewAttendanceHandler(u *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{usecase: u}
}

type AttendanceQuery struct {
	UserID    string `query:"userId" validate:"omitempty,number"`
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := h.usecase.CheckIn(c.UserContext(), identity.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Checked in successfully", "attendance": record})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}

	record, err := h.usecase.CheckOut(c.UserContext(), identity.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Checked out successfully", "attendance": record})
}

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	identity, err := caller(c)
	if err != nil {
		return respondError(c, err)
	}

	var q AttendanceQuery
	if err = c.QueryParser(&q); err != nil {
		return respondError(c, apperror.Validation("Invalid query parameters"))
	}
	if err = validate.Struct(q); err != nil {
		return respondError(c, apperror.Validation("userId must be a number and dates must use YYYY-MM-DD"))
	}

	filter := usecase.AttendanceFilter{StartDate: q.StartDate, EndDate: q.EndDate}
	if q.UserID != "" {
		id, err := strconv.ParseUint(q.UserID, 10, 0)
		if err != nil {
			return respondError(c, apperror.Validation("userId must be a number and dates must use YYYY-MM-DD"))
		}
		userID := uint(id)
		filter.UserID = &userID
	}

	return c.JSON(h.usecase.List(identity, filter))
}
