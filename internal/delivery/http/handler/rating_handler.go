package handler

import (
	"skillbridge/internal/delivery/http/dto"
	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/pkg/response"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

func (h *RatingHandler) RegisterRoutes(r fiber.Router, g Guards) {
	if r == nil {
		return
	}

	r.Post("/applications/:id/rating", g.Auth, g.Actor, h.Rate)
	r.Get("/ratings/freelancer/:id", h.ListForFreelancer)
}

func (h *RatingHandler) Rate(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.RateApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rt, err := h.uc.Rate(c.Context(), middleware.Actor(c), id, usecase.RateApplicationInput{Score: req.Score, Comment: req.Comment})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Rating submitted successfully", dto.NewRatingResponse(rt))
}

func (h *RatingHandler) ListForFreelancer(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	out, err := h.uc.ListForFreelancer(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.FreelancerRatingsResponse{
		FreelancerID: out.FreelancerID,
		Average:      out.Average,
		Count:        out.Count,
		Ratings:      make([]dto.RatingResponse, 0, len(out.Ratings)),
	}
	for _, rt := range out.Ratings {
		res.Ratings = append(res.Ratings, dto.NewRatingResponse(rt))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
