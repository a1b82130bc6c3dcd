package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"skillbridge/internal/delivery/http/middleware"
	"skillbridge/internal/domain/actor"
	"skillbridge/internal/domain/application"
	"skillbridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubApplications struct {
	usecase.ApplicationUsecase

	createErr  error
	created    usecase.CreateApplicationInput
	createdBy  actor.Actor
	lastFilter application.Filter
	lastQuery  usecase.PageQuery
	searched   bool
	page       application.Page
}

func (s *stubApplications) Create(_ context.Context, a actor.Actor, in usecase.CreateApplicationInput) (application.Application, error) {
	s.created = in
	s.createdBy = a
	if s.createErr != nil {
		return application.Application{}, s.createErr
	}
	return application.Application{
		ID:                uuid.New(),
		MissionID:         in.MissionID,
		FreelancerID:      a.ProfileID,
		Proposal:          in.Proposal,
		ProposedRate:      in.ProposedRate,
		EstimatedDuration: in.EstimatedDuration,
		Status:            application.StatusPending,
	}, nil
}

func (s *stubApplications) Search(_ context.Context, f application.Filter) ([]application.Application, error) {
	s.searched = true
	s.lastFilter = f
	return nil, nil
}

func (s *stubApplications) Paginate(_ context.Context, f application.Filter, q usecase.PageQuery) (application.Page, error) {
	s.lastFilter = f
	s.lastQuery = q
	return s.page, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func newTestApp(t *testing.T, uc usecase.ApplicationUsecase, caller actor.Actor) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	setCaller := func(c fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		c.Locals(middleware.CtxUserIDKey, caller.UserID)
		return c.Next()
	}
	g := Guards{
		Auth:     setCaller,
		Optional: func(c fiber.Ctx) error { return c.Next() },
		Actor: func(c fiber.Ctx) error {
			c.Locals(middleware.CtxActorKey, caller)
			return c.Next()
		},
	}

	NewApplicationHandler(uc).RegisterRoutes(app.Group("/api/v1"), g)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, env
}

func TestApplicationHandler_Create(t *testing.T) {
	uc := &stubApplications{}
	caller := actor.Freelancer(uuid.New(), uuid.New())
	app := newTestApp(t, uc, caller)
	missionID := uuid.New()

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/applications",
		`{"missionId":"`+missionID.String()+`","proposal":"I can build this","proposedRate":120,"estimatedDuration":14}`)
	if status != fiber.StatusCreated || !env.Success {
		t.Fatalf("expected 201 success, got %d %+v", status, env)
	}
	if uc.created.MissionID != missionID || uc.created.ProposedRate != 120 || uc.createdBy != caller {
		t.Fatalf("unexpected usecase input: %+v by %+v", uc.created, uc.createdBy)
	}

	var data map[string]any
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["status"] != "PENDING" {
		t.Fatalf("expected PENDING status, got %v", data["status"])
	}
}

func TestApplicationHandler_CreateRejectsBadBody(t *testing.T) {
	app := newTestApp(t, &stubApplications{}, actor.Freelancer(uuid.New(), uuid.New()))

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/applications", `{"missionId":"nope"}`)
	if status != fiber.StatusBadRequest || env.Success || env.Message != "Validation failed" {
		t.Fatalf("expected validation failure, got %d %+v", status, env)
	}

	var fields map[string]string
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	if _, ok := fields["missionId"]; !ok {
		t.Fatalf("expected missionId field error, got %v", fields)
	}
}

func TestApplicationHandler_UsecaseErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &usecase.Error{Kind: usecase.ErrValidation, Message: "Proposal is required."}, fiber.StatusBadRequest},
		{"precondition", &usecase.Error{Kind: usecase.ErrPrecondition, Message: "Mission is not open for applications."}, fiber.StatusBadRequest},
		{"conflict", &usecase.Error{Kind: usecase.ErrConflict, Message: "You have already applied to this mission."}, fiber.StatusConflict},
		{"forbidden", &usecase.Error{Kind: usecase.ErrForbidden, Message: "Nope."}, fiber.StatusForbidden},
		{"not found", &usecase.Error{Kind: usecase.ErrNotFound, Message: "Mission not found."}, fiber.StatusNotFound},
		{"internal", &usecase.Error{Kind: usecase.ErrInternal, Message: "Internal server error"}, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, &stubApplications{createErr: tc.err}, actor.Freelancer(uuid.New(), uuid.New()))

			status, env := doJSON(t, app, http.MethodPost, "/api/v1/applications",
				`{"missionId":"`+uuid.NewString()+`","proposal":"x","proposedRate":1,"estimatedDuration":1}`)
			if status != tc.status || env.Success {
				t.Fatalf("expected %d, got %d %+v", tc.status, status, env)
			}
			if tc.status < 500 && env.Message != usecase.ErrorMessage(tc.err) {
				t.Fatalf("expected message %q, got %q", usecase.ErrorMessage(tc.err), env.Message)
			}
		})
	}
}

func TestApplicationHandler_SearchPaginated(t *testing.T) {
	uc := &stubApplications{page: application.Page{
		Data: []application.Application{{ID: uuid.New(), Status: application.StatusPending}},
		Meta: application.NewPageMeta(2, 10, 25),
	}}
	app := newTestApp(t, uc, actor.Anonymous(uuid.Nil))

	status, env := doJSON(t, app, http.MethodGet,
		"/api/v1/applications/search/paginated?page=2&limit=10&sortBy=proposedRate&sortOrder=asc&status=pending&minRate=50&dateTo=2024-05-01", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d %+v", status, env)
	}

	var meta application.PageMeta
	if err := json.Unmarshal(env.Meta, &meta); err != nil {
		t.Fatalf("decode meta: %v", err)
	}
	if meta.TotalPages != 3 || !meta.HasNext || !meta.HasPrev {
		t.Fatalf("unexpected meta: %+v", meta)
	}

	if uc.lastQuery.Page != 2 || uc.lastQuery.Limit != 10 || uc.lastQuery.SortBy != "proposedRate" {
		t.Fatalf("unexpected query: %+v", uc.lastQuery)
	}
	if uc.lastFilter.Status == nil || *uc.lastFilter.Status != application.StatusPending {
		t.Fatalf("expected status filter, got %+v", uc.lastFilter.Status)
	}
	if uc.lastFilter.MinRate == nil || *uc.lastFilter.MinRate != 50 {
		t.Fatalf("expected minRate filter")
	}
	wantTo := time.Date(2024, 5, 1, 23, 59, 59, 999999999, time.UTC)
	if uc.lastFilter.DateTo == nil || !uc.lastFilter.DateTo.Equal(wantTo) {
		t.Fatalf("expected dateTo %v, got %v", wantTo, uc.lastFilter.DateTo)
	}
}

func TestApplicationHandler_FilterParseErrors(t *testing.T) {
	app := newTestApp(t, &stubApplications{}, actor.Anonymous(uuid.Nil))

	for _, q := range []string{"status=LOST", "minRate=abc", "page=x", "freelancerId=123", "dateFrom=yesterday"} {
		status, env := doJSON(t, app, http.MethodGet, "/api/v1/applications/search/paginated?"+q, "")
		if status != fiber.StatusBadRequest || env.Success {
			t.Fatalf("%s: expected 400, got %d %+v", q, status, env)
		}
	}
}

func TestApplicationHandler_NonFiniteRateFilters(t *testing.T) {
	uc := &stubApplications{}
	app := newTestApp(t, uc, actor.Anonymous(uuid.Nil))

	cases := []struct {
		target  string
		wantMsg string
	}{
		{target: "/api/v1/applications/search?minRate=NaN", wantMsg: "Invalid minRate"},
		{target: "/api/v1/applications/search?maxRate=Inf&status=ACCEPTED", wantMsg: "Invalid maxRate"},
		{target: "/api/v1/applications/search/paginated?maxRate=-Inf", wantMsg: "Invalid maxRate"},
	}
	for _, tc := range cases {
		status, env := doJSON(t, app, http.MethodGet, tc.target, "")
		if status != fiber.StatusBadRequest || env.Message != tc.wantMsg {
			t.Fatalf("%s: expected 400 %q, got %d %+v", tc.target, tc.wantMsg, status, env)
		}
	}
	if uc.searched {
		t.Fatalf("usecase must not run for non-finite rates")
	}
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()
	got, err := parseUUID("missionId", id.String())
	if err != nil || got != id {
		t.Fatalf("parse valid id: %v %v", got, err)
	}

	_, err = parseUUID("missionId", "not-a-uuid")
	var appErr *middleware.AppError
	if !errors.As(err, &appErr) || appErr.StatusCode != fiber.StatusBadRequest || appErr.Message != "Invalid missionId" {
		t.Fatalf("expected 400 Invalid missionId, got %v", err)
	}
}

func TestApplicationHandler_SearchIsNotCapturedByID(t *testing.T) {
	uc := &stubApplications{}
	app := newTestApp(t, uc, actor.Anonymous(uuid.Nil))

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/applications/search", "")
	if status != fiber.StatusOK || !uc.searched {
		t.Fatalf("expected search route, got %d %+v", status, env)
	}
}

func TestApplicationHandler_InvalidID(t *testing.T) {
	app := newTestApp(t, &stubApplications{}, actor.Anonymous(uuid.Nil))

	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/applications/not-a-uuid", "")
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}
