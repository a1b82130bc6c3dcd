package handler

import (
	"strconv"

	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/pkg/response"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router, g Guards) {
	if r == nil {
		return
	}

	grp := r.Group("/notifications")
	grp.Get("/", g.Auth, h.List)
	grp.Get("/unread-count", g.Auth, h.UnreadCount)
	grp.Put("/read-all", g.Auth, h.MarkAllRead)
	grp.Put("/:id/read", g.Auth, h.MarkRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	unreadOnly := false
	if s := c.Query("unreadOnly"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid unreadOnly", nil, err)
		}
		unreadOnly = v
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID, unreadOnly, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.UnreadCount(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"count": n})
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.MarkAllRead(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Notifications marked as read", fiber.Map{"updated": n})
}
