package v1

import (
	"parish-match/internal/delivery/http/handler"
	"parish-match/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth      *middleware.AuthMiddleware
	Parishes  *handler.ParishHandler
	Matching  *handler.MatchingHandler
	Analytics *handler.AnalyticsHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Parishes != nil {
		h.Parishes.RegisterRoutes(r)
	}

	if h.Auth == nil {
		return
	}
	protected := r.Group("", h.Auth.Middleware())

	if h.Matching != nil {
		h.Matching.RegisterRoutes(protected)
	}
	if h.Analytics != nil {
		h.Analytics.RegisterRoutes(protected)
	}
}
