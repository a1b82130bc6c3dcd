package handler

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"skillbridge/internal/delivery/http/dto"
	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/pkg/response"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Guards are the middleware chains handlers attach to their routes.
// Actor must run after Auth or Optional.
type Guards struct {
	Auth     fiber.Handler
	Optional fiber.Handler
	Actor    fiber.Handler
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	msg := usecase.ErrorMessage(err)
	switch usecase.ErrorKind(err) {
	case usecase.ErrValidation, usecase.ErrState, usecase.ErrPrecondition:
		return middleware.NewAppError(fiber.StatusBadRequest, msg, nil, err)
	case usecase.ErrUnauthorized:
		return middleware.NewAppError(fiber.StatusUnauthorized, msg, nil, err)
	case usecase.ErrForbidden:
		return middleware.NewAppError(fiber.StatusForbidden, msg, nil, err)
	case usecase.ErrNotFound:
		return middleware.NewAppError(fiber.StatusNotFound, msg, nil, err)
	case usecase.ErrConflict:
		return middleware.NewAppError(fiber.StatusConflict, msg, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func bindAndValidate(c fiber.Ctx, req any) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if fields := dto.Validate(req); fields != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, nil)
	}
	return nil
}

func requireUserID(c fiber.Ctx) (uuid.UUID, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return userID, nil
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	return parseUUID(name, c.Params(name))
}

func parseUUID(name, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return v, nil
}

func parseQueryIntPtr(c fiber.Ctx, key string) (*int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return &v, nil
}

func parseQueryFloatPtr(c fiber.Ctx, key string) (*float64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, nil)
	}
	return &v, nil
}

func parseQueryUUIDPtr(c fiber.Ctx, key string) (*uuid.UUID, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	v, err := parseUUID(key, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseQueryTimePtr accepts RFC 3339 timestamps or plain dates. A plain
// date used as an upper bound covers the whole day.
func parseQueryTimePtr(c fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, errors.New("expected RFC3339 or YYYY-MM-DD"))
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
