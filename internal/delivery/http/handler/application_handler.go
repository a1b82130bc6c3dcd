package handler

import (
	"skillbridge/internal/delivery/http/dto"
	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/domain/application"
	"skillbridge/internal/pkg/response"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// RegisterRoutes mounts /applications. Fixed paths are registered before
// /:id so they are never captured as an id.
func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, g Guards) {
	if r == nil {
		return
	}

	grp := r.Group("/applications")
	grp.Get("/search/paginated", g.Optional, g.Actor, h.SearchPaginated)
	grp.Get("/search", h.Search)
	grp.Get("/stats", g.Auth, g.Actor, h.Stats)
	grp.Get("/user/my-applications/paginated", g.Auth, g.Actor, h.MyApplicationsPaginated)
	grp.Get("/user/my-applications", g.Auth, g.Actor, h.MyApplications)
	grp.Get("/mission/:missionId/paginated", g.Auth, g.Actor, h.MissionApplicationsPaginated)
	grp.Get("/mission/:missionId", g.Auth, g.Actor, h.MissionApplications)

	grp.Post("/", g.Auth, g.Actor, h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", g.Auth, g.Actor, h.Update)
	grp.Delete("/:id", g.Auth, g.Actor, h.Delete)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	missionID, err := parseUUID("missionId", req.MissionID)
	if err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), middleware.Actor(c), usecase.CreateApplicationInput{
		MissionID:         missionID,
		Proposal:          req.Proposal,
		ProposedRate:      req.ProposedRate,
		EstimatedDuration: req.EstimatedDuration,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application created successfully", dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	d, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application retrieved successfully", dto.NewApplicationDetailResponse(d))
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Context(), middleware.Actor(c), id, usecase.UpdateApplicationInput{
		Proposal:          req.Proposal,
		ProposedRate:      req.ProposedRate,
		EstimatedDuration: req.EstimatedDuration,
		Status:            req.Status,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application updated successfully", dto.NewApplicationResponse(updated))
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), middleware.Actor(c), id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application deleted successfully", nil)
}

func (h *ApplicationHandler) MyApplications(c fiber.Ctx) error {
	items, err := h.uc.ListForActor(c.Context(), middleware.Actor(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Applications retrieved successfully", dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) MissionApplications(c fiber.Ctx) error {
	missionID, err := parseUUIDParam(c, "missionId")
	if err != nil {
		return err
	}

	items, err := h.uc.ListForMission(c.Context(), middleware.Actor(c), missionID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Applications retrieved successfully", dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) Search(c fiber.Ctx) error {
	f, err := parseApplicationFilter(c, true)
	if err != nil {
		return err
	}

	items, err := h.uc.Search(c.Context(), f)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Applications retrieved successfully", dto.NewApplicationResponses(items))
}

func (h *ApplicationHandler) SearchPaginated(c fiber.Ctx) error {
	f, q, err := parsePagedQuery(c, true)
	if err != nil {
		return err
	}

	page, err := h.uc.Paginate(c.Context(), f, q)
	if err != nil {
		return mapUsecaseError(err)
	}
	return writePage(c, page)
}

func (h *ApplicationHandler) MyApplicationsPaginated(c fiber.Ctx) error {
	f, q, err := parsePagedQuery(c, false)
	if err != nil {
		return err
	}

	page, err := h.uc.PaginateForActor(c.Context(), middleware.Actor(c), f, q)
	if err != nil {
		return mapUsecaseError(err)
	}
	return writePage(c, page)
}

func (h *ApplicationHandler) MissionApplicationsPaginated(c fiber.Ctx) error {
	missionID, err := parseUUIDParam(c, "missionId")
	if err != nil {
		return err
	}
	f, q, err := parsePagedQuery(c, false)
	if err != nil {
		return err
	}

	page, err := h.uc.PaginateForMission(c.Context(), middleware.Actor(c), missionID, f, q)
	if err != nil {
		return mapUsecaseError(err)
	}
	return writePage(c, page)
}

func (h *ApplicationHandler) Stats(c fiber.Ctx) error {
	st, err := h.uc.Stats(c.Context(), middleware.Actor(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Application statistics retrieved successfully", st)
}

func writePage(c fiber.Ctx, page application.Page) error {
	return response.SuccessWithMeta(c, fiber.StatusOK, "Applications retrieved successfully",
		dto.NewApplicationResponses(page.Data), page.Meta)
}

func parsePagedQuery(c fiber.Ctx, withParties bool) (application.Filter, usecase.PageQuery, error) {
	f, err := parseApplicationFilter(c, withParties)
	if err != nil {
		return application.Filter{}, usecase.PageQuery{}, err
	}

	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return application.Filter{}, usecase.PageQuery{}, err
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return application.Filter{}, usecase.PageQuery{}, err
	}

	return f, usecase.PageQuery{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}, nil
}

// parseApplicationFilter reads the shared filter query params. Party ids
// are only accepted on the public search routes; the scoped routes set
// them from the caller.
func parseApplicationFilter(c fiber.Ctx, withParties bool) (application.Filter, error) {
	var f application.Filter
	var err error

	if s := c.Query("status"); s != "" {
		st, ok := application.ParseStatus(s)
		if !ok {
			return f, middleware.NewAppError(fiber.StatusBadRequest, "Invalid status.", nil, nil)
		}
		f.Status = &st
	}
	if f.MinRate, err = parseQueryFloatPtr(c, "minRate"); err != nil {
		return f, err
	}
	if f.MaxRate, err = parseQueryFloatPtr(c, "maxRate"); err != nil {
		return f, err
	}
	if f.MinDuration, err = parseQueryIntPtr(c, "minDuration"); err != nil {
		return f, err
	}
	if f.MaxDuration, err = parseQueryIntPtr(c, "maxDuration"); err != nil {
		return f, err
	}
	if f.DateFrom, err = parseQueryTimePtr(c, "dateFrom", false); err != nil {
		return f, err
	}
	if f.DateTo, err = parseQueryTimePtr(c, "dateTo", true); err != nil {
		return f, err
	}

	if !withParties {
		return f, nil
	}
	if f.MissionID, err = parseQueryUUIDPtr(c, "missionId"); err != nil {
		return f, err
	}
	if f.FreelancerID, err = parseQueryUUIDPtr(c, "freelancerId"); err != nil {
		return f, err
	}
	if f.CompanyID, err = parseQueryUUIDPtr(c, "companyId"); err != nil {
		return f, err
	}
	return f, nil
}
