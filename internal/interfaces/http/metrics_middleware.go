package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dynastyos/dynasty-ops-api/internal/metrics"
)

// MetricsMiddleware registra contador y latencia por request.
// Usa la ruta registrada (c.Route().Path) y no la URL cruda para no
// explotar la cardinalidad con IDs.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		labels := []string{c.Method(), c.Route().Path, strconv.Itoa(status)}
		metrics.HTTPRequests.WithLabelValues(labels...).Inc()
		metrics.HTTPDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
