package dto

import (
	"time"

	"skillbridge/internal/domain/profile"

	"github.com/google/uuid"
)

type FreelanceProfileRequest struct {
	FullName   string   `json:"fullName" validate:"required,max=200"`
	Title      string   `json:"title" validate:"max=200"`
	Bio        string   `json:"bio" validate:"max=5000"`
	HourlyRate float64  `json:"hourlyRate" validate:"gte=0"`
	Skills     []string `json:"skills" validate:"max=50,dive,max=100"`
}

type CompanyProfileRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Website     string `json:"website" validate:"omitempty,url"`
}

type FreelanceProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	FullName   string    `json:"fullName"`
	Title      string    `json:"title"`
	Bio        string    `json:"bio"`
	HourlyRate float64   `json:"hourlyRate"`
	Skills     []string  `json:"skills"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CompanyProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	CompanyName string    `json:"companyName"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewFreelanceProfileResponse(p profile.FreelanceProfile) FreelanceProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return FreelanceProfileResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		FullName:   p.FullName,
		Title:      p.Title,
		Bio:        p.Bio,
		HourlyRate: p.HourlyRate,
		Skills:     skills,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func NewCompanyProfileResponse(p profile.CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Description: p.Description,
		Website:     p.Website,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
