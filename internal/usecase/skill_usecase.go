package usecase

import (
	"context"
	"errors"
	"strings"

	"skillbridge/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, name, category string) (SkillItem, error)
}

type Skill struct {
	repo skill.Repository
}

func NewSkillUsecase(repo skill.Repository) *Skill {
	return &Skill{repo: repo}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, internalError(err)
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name, Category: it.Category})
	}
	return out, nil
}

func (u *Skill) AddSkill(ctx context.Context, name, category string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, validationError("Skill name is required.")
	}

	created, err := u.repo.CreateSkill(ctx, name, strings.TrimSpace(category))
	if err != nil {
		if errors.Is(err, skill.ErrAlreadyExists) {
			return SkillItem{}, newError(ErrConflict, "Skill already exists.")
		}
		return SkillItem{}, internalError(err)
	}
	return SkillItem{ID: created.ID, Name: created.Name, Category: created.Category}, nil
}
