package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusWithdrawn Status = "WITHDRAWN"
)

var AllStatuses = []Status{StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn}

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn:
		return st, true
	default:
		return "", false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected || s == StatusWithdrawn
}

// Application is a freelancer's bid on a mission. FreelancerID and
// CompanyID are profile ids, never user ids.
type Application struct {
	ID                uuid.UUID
	MissionID         uuid.UUID
	FreelancerID      uuid.UUID
	CompanyID         uuid.UUID
	Proposal          string
	ProposedRate      float64
	EstimatedDuration int
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RatingSummary struct {
	ID        uuid.UUID
	Score     int
	Comment   string
	CreatedAt time.Time
}

// Detail is an application joined with the records it references.
type Detail struct {
	Application

	MissionTitle   string
	MissionStatus  string
	FreelancerName string
	CompanyName    string
	Rating         *RatingSummary
}
