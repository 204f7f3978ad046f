package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupPayrollRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewPayrollRepository(deps.DB)
	uc := usecase.NewPayrollUsecase(repo, deps.Metrics, deps.logger(), deps.clock())
	hdl := handler.NewPayrollHandler(uc)

	api := app.Group("/api/payroll", middleware.Auth(deps.Tokens))
	api.Get("/", hdl.List)
	api.Post("/", middleware.Role(model.RoleAdmin), hdl.Create)
}
