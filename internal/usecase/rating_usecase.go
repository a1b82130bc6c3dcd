package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"skillbridge/internal/domain/actor"
	"skillbridge/internal/domain/application"
	"skillbridge/internal/domain/notification"
	"skillbridge/internal/domain/profile"
	"skillbridge/internal/domain/rating"

	"github.com/google/uuid"
)

type RateApplicationInput struct {
	Score   int
	Comment string
}

type FreelancerRatings struct {
	FreelancerID uuid.UUID
	Ratings      []rating.Rating
	Count        int
	Average      float64
}

type RatingUsecase interface {
	Rate(ctx context.Context, a actor.Actor, applicationID uuid.UUID, in RateApplicationInput) (rating.Rating, error)
	ListForFreelancer(ctx context.Context, freelancerID uuid.UUID) (FreelancerRatings, error)
}

type Ratings struct {
	repo         rating.Repository
	applications application.Repository
	freelancers  profile.FreelanceRepository
	notifier     Notifier
	logger       *log.Logger
}

func NewRatingUsecase(repo rating.Repository, applications application.Repository, freelancers profile.FreelanceRepository, notifier Notifier, logger *log.Logger) *Ratings {
	return &Ratings{repo: repo, applications: applications, freelancers: freelancers, notifier: notifier, logger: logger}
}

func (u *Ratings) Rate(ctx context.Context, a actor.Actor, applicationID uuid.UUID, in RateApplicationInput) (rating.Rating, error) {
	if in.Score < rating.MinScore || in.Score > rating.MaxScore {
		return rating.Rating{}, validationError(fmt.Sprintf("Score must be between %d and %d.", rating.MinScore, rating.MaxScore))
	}

	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return rating.Rating{}, notFoundError("Application not found.")
		}
		return rating.Rating{}, internalError(err)
	}
	if !a.IsCompany(app.CompanyID) {
		return rating.Rating{}, forbiddenError("Only the mission's company can rate this application.")
	}
	if app.Status != application.StatusAccepted {
		return rating.Rating{}, newError(ErrPrecondition, "Only accepted applications can be rated.")
	}

	created, err := u.repo.Create(ctx, rating.Rating{
		ApplicationID: app.ID,
		CompanyID:     app.CompanyID,
		FreelancerID:  app.FreelancerID,
		Score:         in.Score,
		Comment:       strings.TrimSpace(in.Comment),
	})
	if err != nil {
		if errors.Is(err, rating.ErrAlreadyRated) {
			return rating.Rating{}, newError(ErrConflict, "This application has already been rated.")
		}
		return rating.Rating{}, internalError(err)
	}

	u.notify(ctx, created)
	return created, nil
}

func (u *Ratings) ListForFreelancer(ctx context.Context, freelancerID uuid.UUID) (FreelancerRatings, error) {
	if _, err := u.freelancers.GetFreelanceByID(ctx, freelancerID); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return FreelancerRatings{}, notFoundError("Freelance profile not found.")
		}
		return FreelancerRatings{}, internalError(err)
	}

	items, err := u.repo.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return FreelancerRatings{}, internalError(err)
	}

	out := FreelancerRatings{FreelancerID: freelancerID, Ratings: items, Count: len(items)}
	if len(items) > 0 {
		sum := 0
		for _, r := range items {
			sum += r.Score
		}
		out.Average = float64(sum) / float64(len(items))
	}
	return out, nil
}

func (u *Ratings) notify(ctx context.Context, r rating.Rating) {
	if u.notifier == nil {
		return
	}
	fp, err := u.freelancers.GetFreelanceByID(ctx, r.FreelancerID)
	if err == nil {
		err = u.notifier.Notify(ctx, notification.Notification{
			UserID:  fp.UserID,
			Type:    notification.TypeRatingReceived,
			Title:   "New rating",
			Message: fmt.Sprintf("You received a %d/%d rating.", r.Score, rating.MaxScore),
			Payload: map[string]string{
				"applicationId": r.ApplicationID.String(),
				"ratingId":      r.ID.String(),
			},
		})
	}
	if err != nil && u.logger != nil {
		u.logger.Printf("[Ratings] notify failed rating=%s err=%v", r.ID, err)
	}
}
