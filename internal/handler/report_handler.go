package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/apperror"
	"dayflow-backend/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	usecase *usecase.ReportUsecase
}

func NewReportHandler(u *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{usecase: u}
}

type ExportQuery struct {
	StartDate string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

func (h *ReportHandler) GetOverview(c *fiber.Ctx) error {
	return c.JSON(h.usecase.Overview())
}

// ExportAttendance streams the attendance workbook as a download.
func (h *ReportHandler) ExportAttendance(c *fiber.Ctx) error {
	var q ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, apperror.Validation("Invalid query parameters"))
	}
	if err := validate.Struct(q); err != nil {
		return respondError(c, apperror.Validation("Dates must use YYYY-MM-DD"))
	}

	buf, err := h.usecase.AttendanceExport(c.UserContext(), q.StartDate, q.EndDate)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, exportFileName(q)))
	return c.Send(buf.Bytes())
}

func exportFileName(q ExportQuery) string {
	name := "attendance"
	if q.StartDate != "" {
		name += "_" + q.StartDate
	}
	if q.EndDate != "" {
		name += "_" + q.EndDate
	}
	return name + ".xlsx"
}
