package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"skillbridge/internal/domain/actor"
	"skillbridge/internal/domain/application"
	"skillbridge/internal/domain/mission"
	"skillbridge/internal/domain/notification"
	"skillbridge/internal/domain/profile"

	"github.com/google/uuid"
)

type CreateApplicationInput struct {
	MissionID         uuid.UUID
	Proposal          string
	ProposedRate      float64
	EstimatedDuration int
}

// UpdateApplicationInput is a partial update. Nil fields are left alone.
type UpdateApplicationInput struct {
	Proposal          *string
	ProposedRate      *float64
	EstimatedDuration *int
	Status            *string
}

// PageQuery is a raw pagination request. Zero values take the defaults.
type PageQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// TransitionRecorder counts application status moves. Creation is
// recorded with an empty from status.
type TransitionRecorder interface {
	RecordApplicationTransition(from, to string)
}

type ApplicationUsecase interface {
	Create(ctx context.Context, a actor.Actor, in CreateApplicationInput) (application.Application, error)
	Get(ctx context.Context, id uuid.UUID) (application.Detail, error)
	Update(ctx context.Context, a actor.Actor, id uuid.UUID, in UpdateApplicationInput) (application.Application, error)
	Delete(ctx context.Context, a actor.Actor, id uuid.UUID) error
	ListForActor(ctx context.Context, a actor.Actor) ([]application.Application, error)
	ListForMission(ctx context.Context, a actor.Actor, missionID uuid.UUID) ([]application.Application, error)
	Search(ctx context.Context, f application.Filter) ([]application.Application, error)
	Paginate(ctx context.Context, f application.Filter, q PageQuery) (application.Page, error)
	PaginateForActor(ctx context.Context, a actor.Actor, f application.Filter, q PageQuery) (application.Page, error)
	PaginateForMission(ctx context.Context, a actor.Actor, missionID uuid.UUID, f application.Filter, q PageQuery) (application.Page, error)
	Stats(ctx context.Context, a actor.Actor) (application.Stats, error)
}

type Applications struct {
	repo        application.Repository
	missions    mission.Repository
	freelancers profile.FreelanceRepository
	companies   profile.CompanyRepository
	notifier    Notifier
	cache       SearchCache
	cacheTTL    time.Duration
	metrics     TransitionRecorder
	logger      *log.Logger
}

func NewApplicationUsecase(
	repo application.Repository,
	missions mission.Repository,
	freelancers profile.FreelanceRepository,
	companies profile.CompanyRepository,
	notifier Notifier,
	cache SearchCache,
	cacheTTL time.Duration,
	metrics TransitionRecorder,
	logger *log.Logger,
) *Applications {
	if cache == nil {
		cache = noopSearchCache{}
	}
	return &Applications{
		repo:        repo,
		missions:    missions,
		freelancers: freelancers,
		companies:   companies,
		notifier:    notifier,
		cache:       cache,
		cacheTTL:    cacheTTL,
		metrics:     metrics,
		logger:      logger,
	}
}

const (
	errAlreadyApplied = "You have already applied to this mission."
	errInvalidValues  = "Application values are out of range."
)

func (u *Applications) Create(ctx context.Context, a actor.Actor, in CreateApplicationInput) (application.Application, error) {
	proposal := strings.TrimSpace(in.Proposal)
	if in.MissionID == uuid.Nil {
		return application.Application{}, validationError("Mission ID is required.")
	}
	if err := validateProposal(proposal, in.ProposedRate, in.EstimatedDuration); err != nil {
		return application.Application{}, err
	}

	if a.Kind != actor.KindFreelancer {
		return application.Application{}, newError(ErrPrecondition, "Freelance profile is required to apply.")
	}

	m, err := u.missions.GetByID(ctx, in.MissionID)
	if err != nil {
		if errors.Is(err, mission.ErrNotFound) {
			return application.Application{}, notFoundError("Mission not found.")
		}
		return application.Application{}, internalError(err)
	}
	if m.Status != mission.StatusOpen {
		return application.Application{}, newError(ErrPrecondition, "Mission is not open for applications.")
	}

	exists, err := u.repo.ExistsForMission(ctx, m.ID, a.ProfileID)
	if err != nil {
		return application.Application{}, internalError(err)
	}
	if exists {
		return application.Application{}, newError(ErrConflict, errAlreadyApplied)
	}

	created, err := u.repo.Create(ctx, application.Application{
		MissionID:         m.ID,
		FreelancerID:      a.ProfileID,
		CompanyID:         m.CompanyID,
		Proposal:          proposal,
		ProposedRate:      application.RoundRate(in.ProposedRate),
		EstimatedDuration: in.EstimatedDuration,
		Status:            application.StatusPending,
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, newError(ErrConflict, errAlreadyApplied)
		}
		if errors.Is(err, mission.ErrNotFound) {
			return application.Application{}, notFoundError("Mission not found.")
		}
		if errors.Is(err, application.ErrInvalid) {
			return application.Application{}, validationError(errInvalidValues)
		}
		return application.Application{}, internalError(err)
	}

	u.invalidate(ctx)
	u.record("", created.Status)
	u.notifyCompany(ctx, created.CompanyID, notification.TypeApplicationReceived,
		"New application",
		fmt.Sprintf("A freelancer applied to %q.", m.Title),
		created)

	if u.logger != nil {
		u.logger.Printf("[Applications] created id=%s mission=%s freelancer=%s", created.ID, created.MissionID, created.FreelancerID)
	}
	return created, nil
}

func (u *Applications) Get(ctx context.Context, id uuid.UUID) (application.Detail, error) {
	d, err := u.repo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Detail{}, notFoundError("Application not found.")
		}
		return application.Detail{}, internalError(err)
	}
	return d, nil
}

func (u *Applications) Update(ctx context.Context, a actor.Actor, id uuid.UUID, in UpdateApplicationInput) (application.Application, error) {
	hasEdits := in.Proposal != nil || in.ProposedRate != nil || in.EstimatedDuration != nil
	if !hasEdits && in.Status == nil {
		return application.Application{}, validationError("No fields to update")
	}

	var proposal string
	if in.Proposal != nil {
		proposal = strings.TrimSpace(*in.Proposal)
		if proposal == "" {
			return application.Application{}, validationError("Proposal is required.")
		}
	}
	if in.ProposedRate != nil {
		if err := validateRate(*in.ProposedRate); err != nil {
			return application.Application{}, err
		}
	}
	if in.EstimatedDuration != nil && *in.EstimatedDuration < 0 {
		return application.Application{}, validationError("Estimated duration must be a non-negative integer.")
	}
	var target application.Status
	if in.Status != nil {
		st, ok := application.ParseStatus(*in.Status)
		if !ok {
			return application.Application{}, validationError("Invalid status.")
		}
		target = st
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, notFoundError("Application not found.")
		}
		return application.Application{}, internalError(err)
	}

	party := application.PartyOf(a, current)
	statusChange := in.Status != nil && target != current.Status
	if statusChange {
		if err := application.Decide(current.Status, target, party); err != nil {
			return application.Application{}, decisionError(err)
		}
	}
	if hasEdits || !statusChange {
		if err := application.Decide(current.Status, application.StatusPending, party); err != nil {
			return application.Application{}, decisionError(err)
		}
	}

	next := current
	if in.Proposal != nil {
		next.Proposal = proposal
	}
	if in.ProposedRate != nil {
		next.ProposedRate = application.RoundRate(*in.ProposedRate)
	}
	if in.EstimatedDuration != nil {
		next.EstimatedDuration = *in.EstimatedDuration
	}
	if statusChange {
		next.Status = target
	}

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, notFoundError("Application not found.")
		}
		if errors.Is(err, application.ErrInvalid) {
			return application.Application{}, validationError(errInvalidValues)
		}
		return application.Application{}, internalError(err)
	}

	u.invalidate(ctx)
	if statusChange {
		u.record(current.Status, updated.Status)
		u.notifyTransition(ctx, updated)
		if u.logger != nil {
			u.logger.Printf("[Applications] status id=%s from=%s to=%s", updated.ID, current.Status, updated.Status)
		}
	}
	return updated, nil
}

// Delete is owner-only and does not look at the status.
func (u *Applications) Delete(ctx context.Context, a actor.Actor, id uuid.UUID) error {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return notFoundError("Application not found.")
		}
		return internalError(err)
	}
	if !a.IsFreelancer(current.FreelancerID) {
		return forbiddenError("You can only delete your own applications.")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return notFoundError("Application not found.")
		}
		return internalError(err)
	}
	u.invalidate(ctx)
	return nil
}

func (u *Applications) ListForActor(ctx context.Context, a actor.Actor) ([]application.Application, error) {
	f, ok := actorFilter(a)
	if !ok {
		return []application.Application{}, nil
	}
	items, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, internalError(err)
	}
	return items, nil
}

func (u *Applications) ListForMission(ctx context.Context, a actor.Actor, missionID uuid.UUID) ([]application.Application, error) {
	if err := u.authorizeMission(ctx, a, missionID); err != nil {
		return nil, err
	}
	items, err := u.repo.List(ctx, application.Filter{MissionID: &missionID})
	if err != nil {
		return nil, internalError(err)
	}
	return items, nil
}

func (u *Applications) Search(ctx context.Context, f application.Filter) ([]application.Application, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}

	key, keyErr := ApplicationsSearchCacheKey(f, nil)
	if keyErr == nil {
		var cached []application.Application
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	items, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, internalError(err)
	}
	if keyErr == nil {
		u.store(ctx, key, items)
	}
	return items, nil
}

func (u *Applications) Paginate(ctx context.Context, f application.Filter, q PageQuery) (application.Page, error) {
	if err := validateFilter(f); err != nil {
		return application.Page{}, err
	}
	p, err := normalizePage(q)
	if err != nil {
		return application.Page{}, err
	}

	key, keyErr := ApplicationsSearchCacheKey(f, &p)
	if keyErr == nil {
		var cached application.Page
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	page, err := u.page(ctx, f, p)
	if err != nil {
		return application.Page{}, err
	}
	if keyErr == nil {
		u.store(ctx, key, page)
	}
	return page, nil
}

func (u *Applications) PaginateForActor(ctx context.Context, a actor.Actor, f application.Filter, q PageQuery) (application.Page, error) {
	if err := validateFilter(f); err != nil {
		return application.Page{}, err
	}
	p, err := normalizePage(q)
	if err != nil {
		return application.Page{}, err
	}

	own, ok := actorFilter(a)
	if !ok {
		return application.Page{Data: []application.Application{}, Meta: application.NewPageMeta(p.Page, p.Limit, 0)}, nil
	}
	f.FreelancerID = own.FreelancerID
	f.CompanyID = own.CompanyID
	return u.page(ctx, f, p)
}

func (u *Applications) PaginateForMission(ctx context.Context, a actor.Actor, missionID uuid.UUID, f application.Filter, q PageQuery) (application.Page, error) {
	if err := validateFilter(f); err != nil {
		return application.Page{}, err
	}
	p, err := normalizePage(q)
	if err != nil {
		return application.Page{}, err
	}
	if err := u.authorizeMission(ctx, a, missionID); err != nil {
		return application.Page{}, err
	}
	f.MissionID = &missionID
	return u.page(ctx, f, p)
}

func (u *Applications) Stats(ctx context.Context, a actor.Actor) (application.Stats, error) {
	items, err := u.ListForActor(ctx, a)
	if err != nil {
		return application.Stats{}, err
	}
	return application.ComputeStats(items), nil
}

func (u *Applications) page(ctx context.Context, f application.Filter, p application.PageRequest) (application.Page, error) {
	items, total, err := u.repo.ListPage(ctx, f, p)
	if err != nil {
		return application.Page{}, internalError(err)
	}
	return application.Page{Data: items, Meta: application.NewPageMeta(p.Page, p.Limit, total)}, nil
}

func (u *Applications) authorizeMission(ctx context.Context, a actor.Actor, missionID uuid.UUID) error {
	m, err := u.missions.GetByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, mission.ErrNotFound) {
			return notFoundError("Mission not found.")
		}
		return internalError(err)
	}
	if !a.IsCompany(m.CompanyID) {
		return forbiddenError("You can only view applications for your own missions.")
	}
	return nil
}

func (u *Applications) store(ctx context.Context, key string, v any) {
	if err := u.cache.SetJSON(ctx, key, v, u.cacheTTL); err != nil && u.logger != nil {
		u.logger.Printf("[Applications] cache set failed key=%s err=%v", key, err)
	}
}

func (u *Applications) invalidate(ctx context.Context) {
	if err := u.cache.DeleteByPattern(ctx, ApplicationsSearchPattern); err != nil && u.logger != nil {
		u.logger.Printf("[Applications] cache invalidate failed err=%v", err)
	}
}

func (u *Applications) record(from, to application.Status) {
	if u.metrics == nil {
		return
	}
	u.metrics.RecordApplicationTransition(string(from), string(to))
}

func (u *Applications) notifyTransition(ctx context.Context, app application.Application) {
	switch app.Status {
	case application.StatusAccepted:
		u.notifyFreelancer(ctx, app.FreelancerID, notification.TypeApplicationAccepted,
			"Application accepted", "Your application was accepted.", app)
	case application.StatusRejected:
		u.notifyFreelancer(ctx, app.FreelancerID, notification.TypeApplicationRejected,
			"Application rejected", "Your application was rejected.", app)
	case application.StatusWithdrawn:
		u.notifyCompany(ctx, app.CompanyID, notification.TypeApplicationWithdrawn,
			"Application withdrawn", "A freelancer withdrew their application.", app)
	}
}

func (u *Applications) notifyCompany(ctx context.Context, companyID uuid.UUID, typ notification.Type, title, msg string, app application.Application) {
	if u.notifier == nil || u.companies == nil {
		return
	}
	cp, err := u.companies.GetCompanyByID(ctx, companyID)
	if err != nil {
		u.logNotifyErr(typ, app.ID, err)
		return
	}
	u.send(ctx, cp.UserID, typ, title, msg, app)
}

func (u *Applications) notifyFreelancer(ctx context.Context, freelancerID uuid.UUID, typ notification.Type, title, msg string, app application.Application) {
	if u.notifier == nil || u.freelancers == nil {
		return
	}
	fp, err := u.freelancers.GetFreelanceByID(ctx, freelancerID)
	if err != nil {
		u.logNotifyErr(typ, app.ID, err)
		return
	}
	u.send(ctx, fp.UserID, typ, title, msg, app)
}

func (u *Applications) send(ctx context.Context, userID uuid.UUID, typ notification.Type, title, msg string, app application.Application) {
	err := u.notifier.Notify(ctx, notification.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: msg,
		Payload: map[string]string{
			"applicationId": app.ID.String(),
			"missionId":     app.MissionID.String(),
			"status":        string(app.Status),
		},
	})
	if err != nil {
		u.logNotifyErr(typ, app.ID, err)
	}
}

func (u *Applications) logNotifyErr(typ notification.Type, id uuid.UUID, err error) {
	if u.logger != nil {
		u.logger.Printf("[Applications] notify failed type=%s application=%s err=%v", typ, id, err)
	}
}

func validateProposal(proposal string, rate float64, duration int) error {
	if proposal == "" {
		return validationError("Proposal is required.")
	}
	if err := validateRate(rate); err != nil {
		return err
	}
	if duration < 0 {
		return validationError("Estimated duration must be a non-negative integer.")
	}
	return nil
}

func validateRate(rate float64) error {
	if !(rate > 0) {
		return validationError("Proposed rate must be greater than 0.")
	}
	if !application.RateInRange(rate) {
		return validationError(fmt.Sprintf("Proposed rate must be between %.2f and %.2f.",
			application.MinProposedRate, application.MaxProposedRate-application.MinProposedRate))
	}
	return nil
}

func validateFilter(f application.Filter) error {
	if !finite(f.MinRate) || !finite(f.MaxRate) {
		return validationError("Rate filters must be finite numbers.")
	}
	if f.MinRate != nil && f.MaxRate != nil && *f.MinRate > *f.MaxRate {
		return validationError("minRate must not be greater than maxRate.")
	}
	if f.MinDuration != nil && f.MaxDuration != nil && *f.MinDuration > *f.MaxDuration {
		return validationError("minDuration must not be greater than maxDuration.")
	}
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return validationError("dateFrom must not be after dateTo.")
	}
	return nil
}

func normalizePage(q PageQuery) (application.PageRequest, error) {
	p := application.PageRequest{
		Page:      q.Page,
		Limit:     q.Limit,
		SortBy:    application.SortCreatedAt,
		SortOrder: application.SortDesc,
	}
	if p.Page == 0 {
		p.Page = application.DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = application.DefaultLimit
	}
	if p.Page < 1 {
		return application.PageRequest{}, validationError("Page must be a positive integer.")
	}
	if p.Limit < 1 || p.Limit > application.MaxLimit {
		return application.PageRequest{}, validationError(fmt.Sprintf("Limit must be between 1 and %d.", application.MaxLimit))
	}

	if s := strings.TrimSpace(q.SortBy); s != "" {
		field := application.SortField(s)
		if _, ok := field.Column(); !ok {
			return application.PageRequest{}, validationError("Invalid sortBy field.")
		}
		p.SortBy = field
	}
	if s := strings.TrimSpace(q.SortOrder); s != "" {
		order, ok := application.ParseSortOrder(s)
		if !ok {
			return application.PageRequest{}, validationError("Invalid sortOrder value.")
		}
		p.SortOrder = order
	}
	return p, nil
}

// actorFilter scopes a query to the actor's own applications. Actors
// without a profile own nothing.
func actorFilter(a actor.Actor) (application.Filter, bool) {
	id := a.ProfileID
	switch a.Kind {
	case actor.KindFreelancer:
		return application.Filter{FreelancerID: &id}, true
	case actor.KindCompany:
		return application.Filter{CompanyID: &id}, true
	default:
		return application.Filter{}, false
	}
}

func decisionError(err error) error {
	msg := err.Error()
	if errors.Is(err, application.ErrTransitionState) {
		return &Error{Kind: ErrState, Message: msg, Cause: err}
	}
	return &Error{Kind: ErrForbidden, Message: msg, Cause: err}
}

func finite(v *float64) bool {
	return v == nil || !(math.IsNaN(*v) || math.IsInf(*v, 0))
}
