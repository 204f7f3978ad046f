package server

import (
	"errors"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dayflow-backend/internal/middleware"
	"dayflow-backend/internal/routes"
)

type Options struct {
	// CORSOrigins is a comma separated allow list, "*" for any.
	CORSOrigins string
	// AccessLog receives one line per request. Nil disables access logging.
	AccessLog io.Writer
	// Gatherer backs GET /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// New builds the fiber app with the global middleware stack and all routes.
func New(deps routes.Deps, opts Options) *fiber.App {
	log := deps.Log

	app := fiber.New(fiber.Config{
		AppName:               "Dayflow API",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"

			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
				message = fe.Message
				if code == fiber.StatusNotFound {
					message = "Not found"
				}
			}
			if code >= fiber.StatusInternalServerError && log != nil {
				log.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
			}
			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	origins := strings.TrimSpace(opts.CORSOrigins)
	if origins == "" {
		origins = "*"
	}

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
			Output: opts.AccessLog,
		}))
	}
	app.Use(middleware.Metrics(deps.Metrics))

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	routes.Setup(app, deps)
	return app
}
