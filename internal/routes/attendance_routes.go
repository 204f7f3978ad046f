package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupAttendanceRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewAttendanceRepository(deps.DB)
	uc := usecase.NewAttendanceUsecase(repo, deps.Metrics, deps.logger(), deps.clock())
	hdl := handler.NewAttendanceHandler(uc)

	api := app.Group("/api/attendance", middleware.Auth(deps.Tokens))
	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/", hdl.List)
}
