package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/repository"
	"dayflow-backend/internal/usecase"
)

func SetupAuthRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewUserRepository(deps.DB)
	uc := usecase.NewAuthUsecase(repo, deps.Tokens, deps.Metrics, deps.logger(), deps.clock())
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/auth")
	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
	api.Get("/me", middleware.Auth(deps.Tokens), hdl.Me)
}
