package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Filter struct {
	MissionID    *uuid.UUID
	FreelancerID *uuid.UUID
	CompanyID    *uuid.UUID
	Status       *Status
	MinRate      *float64
	MaxRate      *float64
	MinDuration  *int
	MaxDuration  *int
	DateFrom     *time.Time
	DateTo       *time.Time
}

type SortField string

const (
	SortCreatedAt         SortField = "createdAt"
	SortUpdatedAt         SortField = "updatedAt"
	SortProposedRate      SortField = "proposedRate"
	SortEstimatedDuration SortField = "estimatedDuration"
	SortStatus            SortField = "status"
)

// Column returns the SQL column for a sort field.
func (f SortField) Column() (string, bool) {
	switch f {
	case SortCreatedAt:
		return "created_at", true
	case SortUpdatedAt:
		return "updated_at", true
	case SortProposedRate:
		return "proposed_rate", true
	case SortEstimatedDuration:
		return "estimated_duration", true
	case SortStatus:
		return "status", true
	default:
		return "", false
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortAsc:
		return SortAsc, true
	case SortDesc:
		return SortDesc, true
	default:
		return "", false
	}
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageRequest struct {
	Page      int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PageMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

func NewPageMeta(page, limit, total int) PageMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

type Page struct {
	Data []Application
	Meta PageMeta
}
