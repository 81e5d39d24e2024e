package app

import (
	"fmt"
	"strings"

	"parish-match/internal/delivery/http/handler"
	"parish-match/internal/delivery/http/middleware"
	"parish-match/internal/delivery/http/routes"
	v1 "parish-match/internal/delivery/http/routes/v1"
	"parish-match/internal/metrics"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Middleware order matters: the error middleware must sit inside the access
// log and metrics so they observe the rendered status.
func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.Metrics())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var cachePinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, cachePinger),
		metrics.Handler(),
		v1.Handlers{
			Auth:      middleware.NewAuthMiddleware(c.JWT),
			Parishes:  handler.NewParishHandler(c.Parishes),
			Matching:  handler.NewMatchingHandler(c.Matching),
			Analytics: handler.NewAnalyticsHandler(c.Analytics),
		},
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
