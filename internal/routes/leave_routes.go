package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupLeaveRoutes(app *fiber.App, deps Deps) {
	uc := usecase.NewLeaveUsecase(
		repository.NewLeaveRepository(deps.DB),
		repository.NewUserRepository(deps.DB),
		repository.NewSettingsRepository(deps.DB),
		deps.Notifier,
		deps.Metrics,
		deps.logger(),
		deps.clock(),
	)
	hdl := handler.NewLeaveHandler(uc)

	api := app.Group("/api/leave", middleware.Auth(deps.Tokens))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
	api.Get("/balance", hdl.Balance)
	api.Put("/:id", middleware.Role(model.RoleAdmin), hdl.UpdateStatus)
}
