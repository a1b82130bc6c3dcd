package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists for mission and freelancer")
	ErrInvalid   = errors.New("application values rejected by storage")
)

type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	GetDetail(ctx context.Context, id uuid.UUID) (Detail, error)
	Update(ctx context.Context, a Application) (Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForMission(ctx context.Context, missionID, freelancerID uuid.UUID) (bool, error)
	List(ctx context.Context, f Filter) ([]Application, error)
	ListPage(ctx context.Context, f Filter, p PageRequest) ([]Application, int, error)
}
