package dto

import (
	"time"

	"skillbridge/internal/domain/application"
	"skillbridge/internal/domain/rating"

	"github.com/google/uuid"
)

// Proposal and rate rules are enforced by the usecase so that their
// messages are the same for create and update.
type CreateApplicationRequest struct {
	MissionID         string  `json:"missionId" validate:"required,uuid"`
	Proposal          string  `json:"proposal"`
	ProposedRate      float64 `json:"proposedRate"`
	EstimatedDuration int     `json:"estimatedDuration"`
}

type UpdateApplicationRequest struct {
	Proposal          *string  `json:"proposal"`
	ProposedRate      *float64 `json:"proposedRate"`
	EstimatedDuration *int     `json:"estimatedDuration"`
	Status            *string  `json:"status"`
}

type RateApplicationRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ApplicationResponse struct {
	ID                uuid.UUID `json:"id"`
	MissionID         uuid.UUID `json:"missionId"`
	FreelancerID      uuid.UUID `json:"freelancerId"`
	CompanyID         uuid.UUID `json:"companyId"`
	Proposal          string    `json:"proposal"`
	ProposedRate      float64   `json:"proposedRate"`
	EstimatedDuration int       `json:"estimatedDuration"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ApplicationMissionSummary struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Status string    `json:"status"`
}

type ApplicationPartySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type RatingSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type ApplicationDetailResponse struct {
	ApplicationResponse
	Mission    ApplicationMissionSummary `json:"mission"`
	Freelancer ApplicationPartySummary   `json:"freelancer"`
	Company    ApplicationPartySummary   `json:"company"`
	Rating     *RatingSummaryResponse    `json:"rating"`
}

type RatingResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"applicationId"`
	CompanyID     uuid.UUID `json:"companyId"`
	FreelancerID  uuid.UUID `json:"freelancerId"`
	Score         int       `json:"score"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
}

type FreelancerRatingsResponse struct {
	FreelancerID uuid.UUID        `json:"freelancerId"`
	Average      float64          `json:"average"`
	Count        int              `json:"count"`
	Ratings      []RatingResponse `json:"ratings"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                a.ID,
		MissionID:         a.MissionID,
		FreelancerID:      a.FreelancerID,
		CompanyID:         a.CompanyID,
		Proposal:          a.Proposal,
		ProposedRate:      a.ProposedRate,
		EstimatedDuration: a.EstimatedDuration,
		Status:            string(a.Status),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func NewApplicationResponses(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}

func NewApplicationDetailResponse(d application.Detail) ApplicationDetailResponse {
	res := ApplicationDetailResponse{
		ApplicationResponse: NewApplicationResponse(d.Application),
		Mission:             ApplicationMissionSummary{ID: d.MissionID, Title: d.MissionTitle, Status: d.MissionStatus},
		Freelancer:          ApplicationPartySummary{ID: d.FreelancerID, Name: d.FreelancerName},
		Company:             ApplicationPartySummary{ID: d.CompanyID, Name: d.CompanyName},
	}
	if d.Rating != nil {
		res.Rating = &RatingSummaryResponse{
			ID:        d.Rating.ID,
			Score:     d.Rating.Score,
			Comment:   d.Rating.Comment,
			CreatedAt: d.Rating.CreatedAt,
		}
	}
	return res
}

func NewRatingResponse(r rating.Rating) RatingResponse {
	return RatingResponse{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		CompanyID:     r.CompanyID,
		FreelancerID:  r.FreelancerID,
		Score:         r.Score,
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}
