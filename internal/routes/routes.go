package routes

import (
	"github.com/gofiber/fiber/v2"
)

// Setup registers every API route on app.
func Setup(app *fiber.App, deps Deps) {
	SetupHealthRoutes(app, deps)
	SetupAuthRoutes(app, deps)
	SetupEmployeeRoutes(app, deps)
	SetupAttendanceRoutes(app, deps)
	SetupLeaveRoutes(app, deps)
	SetupPayrollRoutes(app, deps)
	SetupSettingsRoutes(app, deps)
	SetupReportRoutes(app, deps)
	SetupDashboardRoutes(app, deps)
}
