package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

type FreelanceRepository interface {
	CreateFreelance(ctx context.Context, p FreelanceProfile) (FreelanceProfile, error)
	UpdateFreelance(ctx context.Context, p FreelanceProfile) (FreelanceProfile, error)
	GetFreelanceByID(ctx context.Context, id uuid.UUID) (FreelanceProfile, error)
	GetFreelanceByUserID(ctx context.Context, userID uuid.UUID) (FreelanceProfile, error)
}

type CompanyRepository interface {
	CreateCompany(ctx context.Context, p CompanyProfile) (CompanyProfile, error)
	UpdateCompany(ctx context.Context, p CompanyProfile) (CompanyProfile, error)
	GetCompanyByID(ctx context.Context, id uuid.UUID) (CompanyProfile, error)
	GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (CompanyProfile, error)
}
