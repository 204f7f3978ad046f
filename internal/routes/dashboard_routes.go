package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupDashboardRoutes(app *fiber.App, deps Deps) {
	uc := usecase.NewDashboardUsecase(
		repository.NewDashboardRepository(deps.DB),
		repository.NewAttendanceRepository(deps.DB),
		repository.NewLeaveRepository(deps.DB),
		deps.clock(),
	)
	hdl := handler.NewDashboardHandler(uc)

	api := app.Group("/api/stats", middleware.Auth(deps.Tokens))
	api.Get("/dashboard", hdl.GetStats)
}
