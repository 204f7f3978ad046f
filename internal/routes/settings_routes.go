package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupSettingsRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewSettingsRepository(deps.DB)
	hdl := handler.NewSettingsHandler(usecase.NewSettingsUsecase(repo, deps.logger()))

	api := app.Group("/api/settings", middleware.Auth(deps.Tokens))
	api.Get("/", hdl.Get)
	api.Put("/", middleware.Role(model.RoleAdmin), hdl.Update)
}
