package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyExists = errors.New("skill already exists")

type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

type Repository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, name, category string) (Skill, error)
}
