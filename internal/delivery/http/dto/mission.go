package dto

import (
	"time"

	"skillbridge/internal/domain/mission"

	"github.com/google/uuid"
)

type CreateMissionRequest struct {
	Title          string   `json:"title" validate:"required,max=200"`
	Description    string   `json:"description" validate:"max=10000"`
	Budget         float64  `json:"budget" validate:"gt=0"`
	RequiredSkills []string `json:"requiredSkills" validate:"max=50,dive,max=100"`
}

type UpdateMissionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type MissionResponse struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"companyId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Budget         float64   `json:"budget"`
	Status         string    `json:"status"`
	RequiredSkills []string  `json:"requiredSkills"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewMissionResponse(m mission.Mission) MissionResponse {
	skills := m.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return MissionResponse{
		ID:             m.ID,
		CompanyID:      m.CompanyID,
		Title:          m.Title,
		Description:    m.Description,
		Budget:         m.Budget,
		Status:         string(m.Status),
		RequiredSkills: skills,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func NewMissionResponses(items []mission.Mission) []MissionResponse {
	out := make([]MissionResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMissionResponse(m))
	}
	return out
}
