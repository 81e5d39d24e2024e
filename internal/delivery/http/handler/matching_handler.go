package handler

import (
	"errors"
	"strings"

	"parish-match/internal/delivery/http/dto"
	"parish-match/internal/delivery/http/middleware"
	"parish-match/internal/pkg/response"
	"parish-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchingHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchingHandler(uc usecase.MatchingUsecase) *MatchingHandler {
	return &MatchingHandler{uc: uc}
}

func (h *MatchingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	matching := r.Group("/matching")
	matching.Get("/jobs", h.MatchedJobs)
	matching.Get("/users", h.MatchedUsers)

	r.Group("/jobs").Get("/recommendations", h.RecommendedJobs)
}

func (h *MatchingHandler) MatchedJobs(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("Unauthorized", nil)
	}

	items, err := h.uc.MatchedJobs(c.Context(), userID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchResponses(items))
}

func (h *MatchingHandler) RecommendedJobs(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return middleware.Unauthorized("Unauthorized", nil)
	}

	// 0 lets the usecase apply the configured default.
	limit := parseQueryInt(c, "limit", 0)
	if limit < 0 {
		limit = 0
	}

	items, err := h.uc.RecommendedJobs(c.Context(), userID, limit)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchResponses(items))
}

func (h *MatchingHandler) MatchedUsers(c fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("jobId"))
	if raw == "" {
		return middleware.BadRequest("Job ID required", nil)
	}
	jobID, err := uuid.Parse(raw)
	if err != nil || jobID == uuid.Nil {
		return middleware.BadRequest("Invalid job ID", err)
	}

	items, err := h.uc.MatchedUsers(c.Context(), jobID)
	if err != nil {
		return mapMatchingUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserMatchResponses(items))
}

func mapMatchingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.Unauthorized("Unauthorized", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.BadRequest("Invalid input", err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NotFound("User not found", err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NotFound("Job not found", err)
	default:
		return middleware.Internal("matching: %w", err)
	}
}
