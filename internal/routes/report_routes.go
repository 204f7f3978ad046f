package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupReportRoutes(app *fiber.App, deps Deps) {
	uc := usecase.NewReportUsecase(
		repository.NewAttendanceRepository(deps.DB),
		repository.NewUserRepository(deps.DB),
		deps.Metrics,
		deps.logger(),
	)
	hdl := handler.NewReportHandler(uc)

	api := app.Group("/api/reports", middleware.Auth(deps.Tokens), middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.GetOverview)
	api.Get("/attendance.xlsx", hdl.ExportAttendance)
}
