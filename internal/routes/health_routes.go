package routes

import (
	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/handler"
)

func SetupHealthRoutes(app *fiber.App, deps Deps) {
	hdl := handler.NewHealthHandler(deps.DB)
	app.Get("/api/health", hdl.Check)
}
