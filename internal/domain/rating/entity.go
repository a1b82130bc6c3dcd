package rating

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 5
)

var (
	ErrNotFound     = errors.New("rating not found")
	ErrAlreadyRated = errors.New("application already rated")
)

type Rating struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	CompanyID     uuid.UUID
	FreelancerID  uuid.UUID
	Score         int
	Comment       string
	CreatedAt     time.Time
}

type Repository interface {
	Create(ctx context.Context, r Rating) (Rating, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]Rating, error)
}
