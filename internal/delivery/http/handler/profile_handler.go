package handler

import (
	"context"

	"skillbridge/internal/delivery/http/dto"
	"skillbridge/internal/domain/profile"
	"skillbridge/internal/pkg/response"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type (
	freelanceSaver func(ctx context.Context, userID uuid.UUID, in usecase.FreelanceProfileInput) (profile.FreelanceProfile, error)
	companySaver   func(ctx context.Context, userID uuid.UUID, in usecase.CompanyProfileInput) (profile.CompanyProfile, error)
)

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router, g Guards) {
	if r == nil {
		return
	}

	grp := r.Group("/profiles")
	grp.Post("/freelance/me", g.Auth, h.CreateFreelance)
	grp.Get("/freelance/me", g.Auth, h.GetOwnFreelance)
	grp.Put("/freelance/me", g.Auth, h.UpdateFreelance)
	grp.Get("/freelance/:id", h.GetFreelance)

	grp.Post("/company/me", g.Auth, h.CreateCompany)
	grp.Get("/company/me", g.Auth, h.GetOwnCompany)
	grp.Put("/company/me", g.Auth, h.UpdateCompany)
	grp.Get("/company/:id", h.GetCompany)
}

func (h *ProfileHandler) CreateFreelance(c fiber.Ctx) error {
	return h.saveFreelance(c, fiber.StatusCreated, "Freelance profile created successfully", h.uc.CreateFreelance)
}

func (h *ProfileHandler) UpdateFreelance(c fiber.Ctx) error {
	return h.saveFreelance(c, fiber.StatusOK, "Freelance profile updated successfully", h.uc.UpdateFreelance)
}

func (h *ProfileHandler) saveFreelance(c fiber.Ctx, status int, msg string, save freelanceSaver) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.FreelanceProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := save(c.Context(), userID, usecase.FreelanceProfileInput{
		FullName:   req.FullName,
		Title:      req.Title,
		Bio:        req.Bio,
		HourlyRate: req.HourlyRate,
		Skills:     req.Skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, status, msg, dto.NewFreelanceProfileResponse(p))
}

func (h *ProfileHandler) GetOwnFreelance(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetOwnFreelance(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFreelanceProfileResponse(p))
}

func (h *ProfileHandler) GetFreelance(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetFreelance(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFreelanceProfileResponse(p))
}

func (h *ProfileHandler) CreateCompany(c fiber.Ctx) error {
	return h.saveCompany(c, fiber.StatusCreated, "Company profile created successfully", h.uc.CreateCompany)
}

func (h *ProfileHandler) UpdateCompany(c fiber.Ctx) error {
	return h.saveCompany(c, fiber.StatusOK, "Company profile updated successfully", h.uc.UpdateCompany)
}

func (h *ProfileHandler) saveCompany(c fiber.Ctx, status int, msg string, save companySaver) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.CompanyProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := save(c.Context(), userID, usecase.CompanyProfileInput{
		CompanyName: req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, status, msg, dto.NewCompanyProfileResponse(p))
}

func (h *ProfileHandler) GetOwnCompany(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetOwnCompany(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyProfileResponse(p))
}

func (h *ProfileHandler) GetCompany(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetCompany(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyProfileResponse(p))
}
