package middleware

import (
	"time"

	"skillbridge/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
)

func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		status := c.Response().StatusCode()
		if err != nil {
			status, _, _ = normalizeError(err)
		}
		metrics.ObserveHTTP(c.Method(), path, status, time.Since(start))
		return err
	}
}
