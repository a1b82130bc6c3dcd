package handler

import (
	"skillbridge/internal/delivery/http/dto"
	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/pkg/response"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MissionHandler struct {
	uc usecase.MissionUsecase
}

func NewMissionHandler(uc usecase.MissionUsecase) *MissionHandler {
	return &MissionHandler{uc: uc}
}

func (h *MissionHandler) RegisterRoutes(r fiber.Router, g Guards) {
	if r == nil {
		return
	}

	grp := r.Group("/missions")
	grp.Get("/", h.List)
	grp.Post("/", g.Auth, g.Actor, h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id/status", g.Auth, g.Actor, h.UpdateStatus)
}

func (h *MissionHandler) Create(c fiber.Ctx) error {
	var req dto.CreateMissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.uc.Create(c.Context(), middleware.Actor(c), usecase.CreateMissionInput{
		Title:          req.Title,
		Description:    req.Description,
		Budget:         req.Budget,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Mission created successfully", dto.NewMissionResponse(m))
}

func (h *MissionHandler) List(c fiber.Ctx) error {
	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}
	companyID, err := parseQueryUUIDPtr(c, "companyId")
	if err != nil {
		return err
	}

	out, err := h.uc.List(c.Context(), usecase.MissionListInput{
		CompanyID: companyID,
		Status:    c.Query("status"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	meta := fiber.Map{"page": out.Page, "limit": out.Limit, "total": out.Total}
	return response.SuccessWithMeta(c, fiber.StatusOK, "Missions retrieved successfully", dto.NewMissionResponses(out.Data), meta)
}

func (h *MissionHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	m, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMissionResponse(m))
}

func (h *MissionHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateMissionStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.uc.UpdateStatus(c.Context(), middleware.Actor(c), id, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Mission status updated successfully", dto.NewMissionResponse(m))
}
