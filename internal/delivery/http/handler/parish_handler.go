package handler

import (
	"parish-match/internal/delivery/http/dto"
	"parish-match/internal/delivery/http/middleware"
	"parish-match/internal/pkg/response"
	"parish-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ParishHandler struct {
	uc usecase.ParishUsecase
}

func NewParishHandler(uc usecase.ParishUsecase) *ParishHandler {
	return &ParishHandler{uc: uc}
}

func (h *ParishHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/parishes", h.List)
}

func (h *ParishHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.Internal("list parishes: %w", err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewParishResponses(items))
}
