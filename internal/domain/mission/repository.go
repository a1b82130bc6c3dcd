package mission

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("mission not found")

type Repository interface {
	Create(ctx context.Context, m Mission) (Mission, error)
	GetByID(ctx context.Context, id uuid.UUID) (Mission, error)
	List(ctx context.Context, f Filter) ([]Mission, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Mission, error)
}
