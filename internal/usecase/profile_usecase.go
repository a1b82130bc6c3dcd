package usecase

import (
	"context"
	"errors"
	"strings"

	"skillbridge/internal/domain/profile"
	"skillbridge/internal/domain/user"

	"github.com/google/uuid"
)

type FreelanceProfileInput struct {
	FullName   string
	Title      string
	Bio        string
	HourlyRate float64
	Skills     []string
}

type CompanyProfileInput struct {
	CompanyName string
	Description string
	Website     string
}

type ProfileUsecase interface {
	CreateFreelance(ctx context.Context, userID uuid.UUID, in FreelanceProfileInput) (profile.FreelanceProfile, error)
	UpdateFreelance(ctx context.Context, userID uuid.UUID, in FreelanceProfileInput) (profile.FreelanceProfile, error)
	GetOwnFreelance(ctx context.Context, userID uuid.UUID) (profile.FreelanceProfile, error)
	GetFreelance(ctx context.Context, id uuid.UUID) (profile.FreelanceProfile, error)

	CreateCompany(ctx context.Context, userID uuid.UUID, in CompanyProfileInput) (profile.CompanyProfile, error)
	UpdateCompany(ctx context.Context, userID uuid.UUID, in CompanyProfileInput) (profile.CompanyProfile, error)
	GetOwnCompany(ctx context.Context, userID uuid.UUID) (profile.CompanyProfile, error)
	GetCompany(ctx context.Context, id uuid.UUID) (profile.CompanyProfile, error)
}

type Profiles struct {
	users       user.Repository
	freelancers profile.FreelanceRepository
	companies   profile.CompanyRepository
}

func NewProfileUsecase(users user.Repository, freelancers profile.FreelanceRepository, companies profile.CompanyRepository) *Profiles {
	return &Profiles{users: users, freelancers: freelancers, companies: companies}
}

func (u *Profiles) CreateFreelance(ctx context.Context, userID uuid.UUID, in FreelanceProfileInput) (profile.FreelanceProfile, error) {
	in, err := normalizeFreelanceInput(in)
	if err != nil {
		return profile.FreelanceProfile{}, err
	}
	if err := u.requireRole(ctx, userID, user.RoleFreelancer, "Only freelancer accounts can create a freelance profile."); err != nil {
		return profile.FreelanceProfile{}, err
	}

	created, err := u.freelancers.CreateFreelance(ctx, profile.FreelanceProfile{
		UserID:     userID,
		FullName:   in.FullName,
		Title:      in.Title,
		Bio:        in.Bio,
		HourlyRate: in.HourlyRate,
		Skills:     in.Skills,
	})
	if err != nil {
		if errors.Is(err, profile.ErrAlreadyExists) {
			return profile.FreelanceProfile{}, newError(ErrConflict, "Freelance profile already exists.")
		}
		return profile.FreelanceProfile{}, internalError(err)
	}
	return created, nil
}

func (u *Profiles) UpdateFreelance(ctx context.Context, userID uuid.UUID, in FreelanceProfileInput) (profile.FreelanceProfile, error) {
	in, err := normalizeFreelanceInput(in)
	if err != nil {
		return profile.FreelanceProfile{}, err
	}

	current, err := u.GetOwnFreelance(ctx, userID)
	if err != nil {
		return profile.FreelanceProfile{}, err
	}
	current.FullName = in.FullName
	current.Title = in.Title
	current.Bio = in.Bio
	current.HourlyRate = in.HourlyRate
	current.Skills = in.Skills

	updated, err := u.freelancers.UpdateFreelance(ctx, current)
	if err != nil {
		return profile.FreelanceProfile{}, internalError(err)
	}
	return updated, nil
}

func (u *Profiles) GetOwnFreelance(ctx context.Context, userID uuid.UUID) (profile.FreelanceProfile, error) {
	p, err := u.freelancers.GetFreelanceByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.FreelanceProfile{}, notFoundError("Freelance profile not found.")
		}
		return profile.FreelanceProfile{}, internalError(err)
	}
	return p, nil
}

func (u *Profiles) GetFreelance(ctx context.Context, id uuid.UUID) (profile.FreelanceProfile, error) {
	p, err := u.freelancers.GetFreelanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.FreelanceProfile{}, notFoundError("Freelance profile not found.")
		}
		return profile.FreelanceProfile{}, internalError(err)
	}
	return p, nil
}

func (u *Profiles) CreateCompany(ctx context.Context, userID uuid.UUID, in CompanyProfileInput) (profile.CompanyProfile, error) {
	in, err := normalizeCompanyInput(in)
	if err != nil {
		return profile.CompanyProfile{}, err
	}
	if err := u.requireRole(ctx, userID, user.RoleCompany, "Only company accounts can create a company profile."); err != nil {
		return profile.CompanyProfile{}, err
	}

	created, err := u.companies.CreateCompany(ctx, profile.CompanyProfile{
		UserID:      userID,
		CompanyName: in.CompanyName,
		Description: in.Description,
		Website:     in.Website,
	})
	if err != nil {
		if errors.Is(err, profile.ErrAlreadyExists) {
			return profile.CompanyProfile{}, newError(ErrConflict, "Company profile already exists.")
		}
		return profile.CompanyProfile{}, internalError(err)
	}
	return created, nil
}

func (u *Profiles) UpdateCompany(ctx context.Context, userID uuid.UUID, in CompanyProfileInput) (profile.CompanyProfile, error) {
	in, err := normalizeCompanyInput(in)
	if err != nil {
		return profile.CompanyProfile{}, err
	}

	current, err := u.GetOwnCompany(ctx, userID)
	if err != nil {
		return profile.CompanyProfile{}, err
	}
	current.CompanyName = in.CompanyName
	current.Description = in.Description
	current.Website = in.Website

	updated, err := u.companies.UpdateCompany(ctx, current)
	if err != nil {
		return profile.CompanyProfile{}, internalError(err)
	}
	return updated, nil
}

func (u *Profiles) GetOwnCompany(ctx context.Context, userID uuid.UUID) (profile.CompanyProfile, error) {
	p, err := u.companies.GetCompanyByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.CompanyProfile{}, notFoundError("Company profile not found.")
		}
		return profile.CompanyProfile{}, internalError(err)
	}
	return p, nil
}

func (u *Profiles) GetCompany(ctx context.Context, id uuid.UUID) (profile.CompanyProfile, error) {
	p, err := u.companies.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.CompanyProfile{}, notFoundError("Company profile not found.")
		}
		return profile.CompanyProfile{}, internalError(err)
	}
	return p, nil
}

func (u *Profiles) requireRole(ctx context.Context, userID uuid.UUID, role user.Role, msg string) error {
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return newError(ErrUnauthorized, "User not found.")
		}
		return internalError(err)
	}
	if usr.Role != role {
		return forbiddenError(msg)
	}
	return nil
}

func normalizeFreelanceInput(in FreelanceProfileInput) (FreelanceProfileInput, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Title = strings.TrimSpace(in.Title)
	in.Bio = strings.TrimSpace(in.Bio)
	if in.FullName == "" {
		return in, validationError("Full name is required.")
	}
	if in.HourlyRate < 0 {
		return in, validationError("Hourly rate must not be negative.")
	}

	skills := make([]string, 0, len(in.Skills))
	seen := make(map[string]struct{}, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
	}
	in.Skills = skills
	return in, nil
}

func normalizeCompanyInput(in CompanyProfileInput) (CompanyProfileInput, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Description = strings.TrimSpace(in.Description)
	in.Website = strings.TrimSpace(in.Website)
	if in.CompanyName == "" {
		return in, validationError("Company name is required.")
	}
	return in, nil
}
