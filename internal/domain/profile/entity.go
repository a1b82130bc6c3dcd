package profile

import (
	"time"

	"github.com/google/uuid"
)

type FreelanceProfile struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	FullName   string
	Title      string
	Bio        string
	HourlyRate float64
	Skills     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CompanyProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CompanyName string
	Description string
	Website     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
