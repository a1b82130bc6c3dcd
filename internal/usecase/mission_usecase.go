package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"skillbridge/internal/domain/actor"
	"skillbridge/internal/domain/mission"

	"github.com/google/uuid"
)

type CreateMissionInput struct {
	Title          string
	Description    string
	Budget         float64
	RequiredSkills []string
}

type MissionListInput struct {
	CompanyID *uuid.UUID
	Status    string
	Page      int
	Limit     int
}

type MissionPage struct {
	Data  []mission.Mission
	Page  int
	Limit int
	Total int
}

type MissionUsecase interface {
	Create(ctx context.Context, a actor.Actor, in CreateMissionInput) (mission.Mission, error)
	Get(ctx context.Context, id uuid.UUID) (mission.Mission, error)
	List(ctx context.Context, in MissionListInput) (MissionPage, error)
	UpdateStatus(ctx context.Context, a actor.Actor, id uuid.UUID, status string) (mission.Mission, error)
}

type Missions struct {
	repo   mission.Repository
	logger *log.Logger
}

func NewMissionUsecase(repo mission.Repository, logger *log.Logger) *Missions {
	return &Missions{repo: repo, logger: logger}
}

func (u *Missions) Create(ctx context.Context, a actor.Actor, in CreateMissionInput) (mission.Mission, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return mission.Mission{}, validationError("Title is required.")
	}
	if in.Budget <= 0 {
		return mission.Mission{}, validationError("Budget must be greater than 0.")
	}
	if a.Kind != actor.KindCompany {
		return mission.Mission{}, newError(ErrPrecondition, "Company profile is required to publish a mission.")
	}

	skills := make([]string, 0, len(in.RequiredSkills))
	for _, s := range in.RequiredSkills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	created, err := u.repo.Create(ctx, mission.Mission{
		CompanyID:      a.ProfileID,
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Budget:         in.Budget,
		Status:         mission.StatusOpen,
		RequiredSkills: skills,
	})
	if err != nil {
		return mission.Mission{}, internalError(err)
	}
	if u.logger != nil {
		u.logger.Printf("[Missions] created id=%s company=%s", created.ID, created.CompanyID)
	}
	return created, nil
}

func (u *Missions) Get(ctx context.Context, id uuid.UUID) (mission.Mission, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mission.ErrNotFound) {
			return mission.Mission{}, notFoundError("Mission not found.")
		}
		return mission.Mission{}, internalError(err)
	}
	return m, nil
}

func (u *Missions) List(ctx context.Context, in MissionListInput) (MissionPage, error) {
	page, limit := in.Page, in.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	if page < 1 {
		return MissionPage{}, validationError("Page must be a positive integer.")
	}
	if limit < 1 || limit > 100 {
		return MissionPage{}, validationError("Limit must be between 1 and 100.")
	}

	f := mission.Filter{CompanyID: in.CompanyID, Limit: limit, Offset: (page - 1) * limit}
	if s := strings.TrimSpace(in.Status); s != "" {
		st, ok := mission.ParseStatus(s)
		if !ok {
			return MissionPage{}, validationError("Invalid status.")
		}
		f.Status = &st
	}

	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return MissionPage{}, internalError(err)
	}
	return MissionPage{Data: items, Page: page, Limit: limit, Total: total}, nil
}

func (u *Missions) UpdateStatus(ctx context.Context, a actor.Actor, id uuid.UUID, status string) (mission.Mission, error) {
	target, ok := mission.ParseStatus(status)
	if !ok {
		return mission.Mission{}, validationError("Invalid status.")
	}

	current, err := u.Get(ctx, id)
	if err != nil {
		return mission.Mission{}, err
	}
	if !a.IsCompany(current.CompanyID) {
		return mission.Mission{}, forbiddenError("Only the mission's company can change its status.")
	}
	if !mission.CanTransition(current.Status, target) {
		return mission.Mission{}, newError(ErrState, fmt.Sprintf("Mission cannot move from %s to %s.", current.Status, target))
	}

	updated, err := u.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		if errors.Is(err, mission.ErrNotFound) {
			return mission.Mission{}, notFoundError("Mission not found.")
		}
		return mission.Mission{}, internalError(err)
	}

	if u.logger != nil {
		u.logger.Printf("[Missions] status id=%s from=%s to=%s", id, current.Status, updated.Status)
	}
	return updated, nil
}
