package handler

import (
	"errors"

	"parish-match/internal/delivery/http/dto"
	"parish-match/internal/delivery/http/middleware"
	"parish-match/internal/pkg/response"
	"parish-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/analytics")
	grp.Get("/dashboard", h.Dashboard)
	grp.Get("/user-stats", h.UserStats)
}

func (h *AnalyticsHandler) Dashboard(c fiber.Ctx) error {
	days, err := queryInt(c, "days", usecase.DefaultDashboardDays)
	if err != nil {
		return middleware.BadRequest("Invalid input", err)
	}
	if days < 1 {
		return middleware.BadRequest("days must be positive", nil)
	}

	d, err := h.uc.Dashboard(c.Context(), days)
	if err != nil {
		return mapAnalyticsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDashboardResponse(d))
}

func (h *AnalyticsHandler) UserStats(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("Unauthorized", nil)
	}

	st, err := h.uc.UserStats(c.Context(), userID)
	if err != nil {
		return mapAnalyticsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserStatsResponse(st))
}

func mapAnalyticsUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.Unauthorized("Unauthorized", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.BadRequest("Invalid input", err)
	default:
		return middleware.Internal("analytics: %w", err)
	}
}
