package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"dayflow-backend/internal/metrics"
)

// Metrics records request count and latency by matched route pattern.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		// the error handler has not written the response yet
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		m.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(started).Seconds())
		return err
	}
}
