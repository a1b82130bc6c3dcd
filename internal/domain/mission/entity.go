package mission

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return st, true
	default:
		return "", false
	}
}

// CanTransition reports whether a mission may move from one status to
// another. Completed and cancelled missions are final.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusOpen:
		return to == StatusInProgress || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

type Mission struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	Title          string
	Description    string
	Budget         float64
	Status         Status
	RequiredSkills []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Filter struct {
	CompanyID *uuid.UUID
	Status    *Status
	Limit     int
	Offset    int
}
