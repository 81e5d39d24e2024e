package middleware

import (
	"strconv"
	"time"

	"parish-match/internal/metrics"

	"github.com/gofiber/fiber/v3"
)

// Metrics records request counts and latency per route template, so ids in
// paths do not explode label cardinality. It must run outside the error
// middleware to see the final status code.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}

		metrics.HTTPRequestsTotal.WithLabelValues(route, c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, c.Method()).Observe(time.Since(start).Seconds())
		return err
	}
}
