package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/model"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupEmployeeRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewUserRepository(deps.DB)
	hdl := handler.NewEmployeeHandler(usecase.NewEmployeeUsecase(repo))

	api := app.Group("/api/employees", middleware.Auth(deps.Tokens))
	api.Get("/", middleware.Role(model.RoleAdmin), hdl.List)
	api.Get("/:id", hdl.Get)
	// any signed-in user may edit any profile
	api.Put("/:id", hdl.Update)
}
