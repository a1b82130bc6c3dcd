package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"skillbridge/internal/domain/application"
)

const applicationsSearchPrefix = "applications:search:"

// ApplicationsSearchPattern matches every cached search result.
const ApplicationsSearchPattern = applicationsSearchPrefix + "*"

type applicationSearchCacheKeyInput struct {
	Kind         string   `json:"kind"`
	MissionID    string   `json:"mission_id,omitempty"`
	FreelancerID string   `json:"freelancer_id,omitempty"`
	CompanyID    string   `json:"company_id,omitempty"`
	Status       string   `json:"status,omitempty"`
	MinRate      *float64 `json:"min_rate,omitempty"`
	MaxRate      *float64 `json:"max_rate,omitempty"`
	MinDuration  *int     `json:"min_duration,omitempty"`
	MaxDuration  *int     `json:"max_duration,omitempty"`
	DateFrom     string   `json:"date_from,omitempty"`
	DateTo       string   `json:"date_to,omitempty"`
	Page         int      `json:"page,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	SortBy       string   `json:"sort_by,omitempty"`
	SortOrder    string   `json:"sort_order,omitempty"`
}

// ApplicationsSearchCacheKey hashes a normalized filter, plus the page
// request when one is given, into a stable cache key. Filters that cannot
// be encoded return an error and must not be cached.
func ApplicationsSearchCacheKey(f application.Filter, p *application.PageRequest) (string, error) {
	in := applicationSearchCacheKeyInput{
		Kind:        "list",
		MinRate:     f.MinRate,
		MaxRate:     f.MaxRate,
		MinDuration: f.MinDuration,
		MaxDuration: f.MaxDuration,
	}
	if f.MissionID != nil {
		in.MissionID = f.MissionID.String()
	}
	if f.FreelancerID != nil {
		in.FreelancerID = f.FreelancerID.String()
	}
	if f.CompanyID != nil {
		in.CompanyID = f.CompanyID.String()
	}
	if f.Status != nil {
		in.Status = string(*f.Status)
	}
	if f.DateFrom != nil {
		in.DateFrom = f.DateFrom.UTC().Format(time.RFC3339Nano)
	}
	if f.DateTo != nil {
		in.DateTo = f.DateTo.UTC().Format(time.RFC3339Nano)
	}
	if p != nil {
		in.Kind = "page"
		in.Page = p.Page
		in.Limit = p.Limit
		in.SortBy = string(p.SortBy)
		in.SortOrder = string(p.SortOrder)
	}

	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode search cache key: %w", err)
	}
	sum := sha256.Sum256(b)
	return applicationsSearchPrefix + hex.EncodeToString(sum[:]), nil
}
