package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillbridge/internal/domain/actor"
	"skillbridge/internal/domain/mission"
	"skillbridge/internal/domain/profile"
	"skillbridge/internal/domain/rating"
	"skillbridge/internal/domain/user"
	"skillbridge/internal/pkg/jwt"
	ucauth "skillbridge/internal/usecase/auth"

	"github.com/google/uuid"
)

func seedUser(t *testing.T, users *fakeUsers, email, role string) uuid.UUID {
	t.Helper()
	r, ok := user.ParseRole(role)
	if !ok {
		t.Fatalf("bad role %q", role)
	}
	id := uuid.New()
	if err := users.CreateUser(context.Background(), user.User{ID: id, Email: email, Role: r}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

func freelanceProfileFor(userID uuid.UUID) profile.FreelanceProfile {
	return profile.FreelanceProfile{UserID: userID, FullName: "Dana Dev"}
}

func companyProfileFor(userID uuid.UUID) profile.CompanyProfile {
	return profile.CompanyProfile{UserID: userID, CompanyName: "Acme"}
}

func ratingFor(a actor.Actor, score int) rating.Rating {
	return rating.Rating{ApplicationID: uuid.New(), CompanyID: uuid.New(), FreelancerID: a.ProfileID, Score: score}
}

func TestProfiles_CreateFreelance(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	profiles := newFakeProfiles()
	uc := NewProfileUsecase(users, profiles, profiles)

	freelancer := seedUser(t, users, "f@example.com", "FREELANCER")
	company := seedUser(t, users, "c@example.com", "COMPANY")

	_, err := uc.CreateFreelance(ctx, freelancer, FreelanceProfileInput{FullName: " "})
	assertUsecaseError(t, err, ErrValidation, "Full name is required.")

	_, err = uc.CreateFreelance(ctx, company, FreelanceProfileInput{FullName: "Acme"})
	assertUsecaseError(t, err, ErrForbidden, "")

	p, err := uc.CreateFreelance(ctx, freelancer, FreelanceProfileInput{
		FullName: "Dana Dev",
		Skills:   []string{"Go", " go ", "", "PostgreSQL"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "Go" || p.Skills[1] != "PostgreSQL" {
		t.Fatalf("unexpected skills: %v", p.Skills)
	}

	_, err = uc.CreateFreelance(ctx, freelancer, FreelanceProfileInput{FullName: "Again"})
	assertUsecaseError(t, err, ErrConflict, "Freelance profile already exists.")

	updated, err := uc.UpdateFreelance(ctx, freelancer, FreelanceProfileInput{FullName: "Dana D.", HourlyRate: 80})
	if err != nil || updated.FullName != "Dana D." || updated.ID != p.ID {
		t.Fatalf("update: %+v %v", updated, err)
	}
}

func TestProfiles_Company(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	profiles := newFakeProfiles()
	uc := NewProfileUsecase(users, profiles, profiles)
	company := seedUser(t, users, "c@example.com", "COMPANY")

	_, err := uc.GetOwnCompany(ctx, company)
	assertUsecaseError(t, err, ErrNotFound, "Company profile not found.")

	cp, err := uc.CreateCompany(ctx, company, CompanyProfileInput{CompanyName: "Acme", Website: " https://acme.test "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cp.Website != "https://acme.test" {
		t.Fatalf("unexpected website %q", cp.Website)
	}

	got, err := uc.GetCompany(ctx, cp.ID)
	if err != nil || got.CompanyName != "Acme" {
		t.Fatalf("get: %+v %v", got, err)
	}
}

func TestMissions_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMissions()
	uc := NewMissionUsecase(repo, nil)
	company := actor.Company(uuid.New(), uuid.New())

	_, err := uc.Create(ctx, company, CreateMissionInput{Title: "API"})
	assertUsecaseError(t, err, ErrValidation, "Budget must be greater than 0.")

	_, err = uc.Create(ctx, actor.Freelancer(uuid.New(), uuid.New()), CreateMissionInput{Title: "API", Budget: 100})
	assertUsecaseError(t, err, ErrPrecondition, "")

	m, err := uc.Create(ctx, company, CreateMissionInput{Title: " API ", Budget: 1000, RequiredSkills: []string{"Go", " "}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Status != mission.StatusOpen || m.Title != "API" || len(m.RequiredSkills) != 1 {
		t.Fatalf("unexpected mission: %+v", m)
	}

	_, err = uc.UpdateStatus(ctx, actor.Company(uuid.New(), uuid.New()), m.ID, "IN_PROGRESS")
	assertUsecaseError(t, err, ErrForbidden, "")

	_, err = uc.UpdateStatus(ctx, company, m.ID, "COMPLETED")
	assertUsecaseError(t, err, ErrState, "Mission cannot move from OPEN to COMPLETED.")

	if _, err := uc.UpdateStatus(ctx, company, m.ID, "in_progress"); err != nil {
		t.Fatalf("start: %v", err)
	}

	page, err := uc.List(ctx, MissionListInput{Status: "IN_PROGRESS"})
	if err != nil || page.Total != 1 || page.Page != 1 || page.Limit != 10 {
		t.Fatalf("list: %+v %v", page, err)
	}

	_, err = uc.List(ctx, MissionListInput{Status: "DRAFT"})
	assertUsecaseError(t, err, ErrValidation, "Invalid status.")
}

func TestAuth_RegisterLoginRefresh(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	uc := NewAuthUsecase(users, jwt.NewHMACService("a-secret", "r-secret", 15*time.Minute, time.Hour))

	_, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "dev@example.com", Password: "password123", Role: "ADMIN"})
	if !errors.Is(err, ucauth.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}

	usr, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{Email: " Dev@Example.com ", Password: "password123", Role: "freelancer"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "dev@example.com" || usr.Role != user.RoleFreelancer || usr.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected tokens")
	}

	_, _, _, err = uc.Register(ctx, ucauth.RegisterInput{Email: "dev@example.com", Password: "password123", Role: "COMPANY"})
	if !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	_, _, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "dev@example.com", Password: "wrong-password"})
	if !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "dev@example.com", Password: "password123"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := uc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected access token to be refused, got %v", err)
	}
	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	if err != nil || newAccess == "" || newRefresh == "" {
		t.Fatalf("refresh: %v", err)
	}

	me, err := uc.Me(ctx, usr.ID)
	if err != nil || me.ID != usr.ID {
		t.Fatalf("me: %+v %v", me, err)
	}
}
