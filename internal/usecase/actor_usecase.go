package usecase

import (
	"context"
	"errors"

	"skillbridge/internal/domain/actor"
	"skillbridge/internal/domain/profile"
	"skillbridge/internal/domain/user"

	"github.com/google/uuid"
)

type ActorResolver interface {
	ResolveActor(ctx context.Context, userID uuid.UUID) (actor.Actor, error)
}

// Actors turns an authenticated user id into an Actor: the user's role
// decides which profile is looked up. A user without a profile for their
// role resolves to an anonymous actor that still carries the user id.
type Actors struct {
	users       user.Repository
	freelancers profile.FreelanceRepository
	companies   profile.CompanyRepository
}

func NewActorResolver(users user.Repository, freelancers profile.FreelanceRepository, companies profile.CompanyRepository) *Actors {
	return &Actors{users: users, freelancers: freelancers, companies: companies}
}

func (r *Actors) ResolveActor(ctx context.Context, userID uuid.UUID) (actor.Actor, error) {
	if userID == uuid.Nil {
		return actor.Anonymous(uuid.Nil), nil
	}

	u, err := r.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return actor.Actor{}, newError(ErrUnauthorized, "User not found.")
		}
		return actor.Actor{}, internalError(err)
	}

	switch u.Role {
	case user.RoleFreelancer:
		fp, err := r.freelancers.GetFreelanceByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return actor.Anonymous(userID), nil
			}
			return actor.Actor{}, internalError(err)
		}
		return actor.Freelancer(userID, fp.ID), nil
	case user.RoleCompany:
		cp, err := r.companies.GetCompanyByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return actor.Anonymous(userID), nil
			}
			return actor.Actor{}, internalError(err)
		}
		return actor.Company(userID, cp.ID), nil
	default:
		return actor.Anonymous(userID), nil
	}
}
