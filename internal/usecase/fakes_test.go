package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"skillbridge/internal/domain/application"
	"skillbridge/internal/domain/mission"
	"skillbridge/internal/domain/notification"
	"skillbridge/internal/domain/profile"
	"skillbridge/internal/domain/rating"
	"skillbridge/internal/domain/user"

	"github.com/google/uuid"
)

type fakeApplications struct {
	mu    sync.Mutex
	items map[uuid.UUID]application.Application
	clock time.Time
}

func newFakeApplications() *fakeApplications {
	return &fakeApplications{
		items: make(map[uuid.UUID]application.Application),
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeApplications) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *fakeApplications) Create(_ context.Context, a application.Application) (application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.MissionID == a.MissionID && it.FreelancerID == a.FreelancerID {
			return application.Application{}, application.ErrDuplicate
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = r.tick()
	a.UpdatedAt = a.CreatedAt
	r.items[a.ID] = a
	return a, nil
}

func (r *fakeApplications) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *fakeApplications) GetDetail(ctx context.Context, id uuid.UUID) (application.Detail, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return application.Detail{}, err
	}
	return application.Detail{Application: a}, nil
}

func (r *fakeApplications) Update(_ context.Context, a application.Application) (application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.UpdatedAt = r.tick()
	r.items[a.ID] = a
	return a, nil
}

func (r *fakeApplications) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return application.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeApplications) ExistsForMission(_ context.Context, missionID, freelancerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.MissionID == missionID && it.FreelancerID == freelancerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplications) List(_ context.Context, f application.Filter) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.filter(f)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeApplications) ListPage(_ context.Context, f application.Filter, p application.PageRequest) ([]application.Application, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.filter(f)
	less := func(a, b application.Application) bool {
		switch p.SortBy {
		case application.SortProposedRate:
			return a.ProposedRate < b.ProposedRate
		case application.SortEstimatedDuration:
			return a.EstimatedDuration < b.EstimatedDuration
		case application.SortStatus:
			return a.Status < b.Status
		case application.SortUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if p.SortOrder == application.SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	total := len(out)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return out[start:end], total, nil
}

func (r *fakeApplications) filter(f application.Filter) []application.Application {
	out := make([]application.Application, 0, len(r.items))
	for _, a := range r.items {
		switch {
		case f.MissionID != nil && a.MissionID != *f.MissionID:
		case f.FreelancerID != nil && a.FreelancerID != *f.FreelancerID:
		case f.CompanyID != nil && a.CompanyID != *f.CompanyID:
		case f.Status != nil && a.Status != *f.Status:
		case f.MinRate != nil && a.ProposedRate < *f.MinRate:
		case f.MaxRate != nil && a.ProposedRate > *f.MaxRate:
		case f.MinDuration != nil && a.EstimatedDuration < *f.MinDuration:
		case f.MaxDuration != nil && a.EstimatedDuration > *f.MaxDuration:
		default:
			out = append(out, a)
		}
	}
	return out
}

type fakeMissions struct {
	items map[uuid.UUID]mission.Mission
}

func newFakeMissions() *fakeMissions {
	return &fakeMissions{items: make(map[uuid.UUID]mission.Mission)}
}

func (r *fakeMissions) Create(_ context.Context, m mission.Mission) (mission.Mission, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items[m.ID] = m
	return m, nil
}

func (r *fakeMissions) GetByID(_ context.Context, id uuid.UUID) (mission.Mission, error) {
	m, ok := r.items[id]
	if !ok {
		return mission.Mission{}, mission.ErrNotFound
	}
	return m, nil
}

func (r *fakeMissions) List(_ context.Context, f mission.Filter) ([]mission.Mission, int, error) {
	out := make([]mission.Mission, 0)
	for _, m := range r.items {
		if f.CompanyID != nil && m.CompanyID != *f.CompanyID {
			continue
		}
		if f.Status != nil && m.Status != *f.Status {
			continue
		}
		out = append(out, m)
	}
	return out, len(out), nil
}

func (r *fakeMissions) UpdateStatus(_ context.Context, id uuid.UUID, status mission.Status) (mission.Mission, error) {
	m, ok := r.items[id]
	if !ok {
		return mission.Mission{}, mission.ErrNotFound
	}
	m.Status = status
	r.items[id] = m
	return m, nil
}

type fakeUsers struct {
	items map[uuid.UUID]user.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{items: make(map[uuid.UUID]user.User)}
}

func (r *fakeUsers) CreateUser(_ context.Context, u user.User) error {
	for _, it := range r.items {
		if it.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	r.items[u.ID] = u
	return nil
}

func (r *fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.items[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.items {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

type fakeProfiles struct {
	freelancers map[uuid.UUID]profile.FreelanceProfile
	companies   map[uuid.UUID]profile.CompanyProfile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{
		freelancers: make(map[uuid.UUID]profile.FreelanceProfile),
		companies:   make(map[uuid.UUID]profile.CompanyProfile),
	}
}

func (r *fakeProfiles) CreateFreelance(_ context.Context, p profile.FreelanceProfile) (profile.FreelanceProfile, error) {
	for _, it := range r.freelancers {
		if it.UserID == p.UserID {
			return profile.FreelanceProfile{}, profile.ErrAlreadyExists
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.freelancers[p.ID] = p
	return p, nil
}

func (r *fakeProfiles) UpdateFreelance(_ context.Context, p profile.FreelanceProfile) (profile.FreelanceProfile, error) {
	if _, ok := r.freelancers[p.ID]; !ok {
		return profile.FreelanceProfile{}, profile.ErrNotFound
	}
	r.freelancers[p.ID] = p
	return p, nil
}

func (r *fakeProfiles) GetFreelanceByID(_ context.Context, id uuid.UUID) (profile.FreelanceProfile, error) {
	p, ok := r.freelancers[id]
	if !ok {
		return profile.FreelanceProfile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfiles) GetFreelanceByUserID(_ context.Context, userID uuid.UUID) (profile.FreelanceProfile, error) {
	for _, p := range r.freelancers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return profile.FreelanceProfile{}, profile.ErrNotFound
}

func (r *fakeProfiles) CreateCompany(_ context.Context, p profile.CompanyProfile) (profile.CompanyProfile, error) {
	for _, it := range r.companies {
		if it.UserID == p.UserID {
			return profile.CompanyProfile{}, profile.ErrAlreadyExists
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.companies[p.ID] = p
	return p, nil
}

func (r *fakeProfiles) UpdateCompany(_ context.Context, p profile.CompanyProfile) (profile.CompanyProfile, error) {
	if _, ok := r.companies[p.ID]; !ok {
		return profile.CompanyProfile{}, profile.ErrNotFound
	}
	r.companies[p.ID] = p
	return p, nil
}

func (r *fakeProfiles) GetCompanyByID(_ context.Context, id uuid.UUID) (profile.CompanyProfile, error) {
	p, ok := r.companies[id]
	if !ok {
		return profile.CompanyProfile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfiles) GetCompanyByUserID(_ context.Context, userID uuid.UUID) (profile.CompanyProfile, error) {
	for _, p := range r.companies {
		if p.UserID == userID {
			return p, nil
		}
	}
	return profile.CompanyProfile{}, profile.ErrNotFound
}

type fakeRatings struct {
	items []rating.Rating
}

func (r *fakeRatings) Create(_ context.Context, rt rating.Rating) (rating.Rating, error) {
	for _, it := range r.items {
		if it.ApplicationID == rt.ApplicationID {
			return rating.Rating{}, rating.ErrAlreadyRated
		}
	}
	rt.ID = uuid.New()
	r.items = append(r.items, rt)
	return rt, nil
}

func (r *fakeRatings) ListByFreelancer(_ context.Context, freelancerID uuid.UUID) ([]rating.Rating, error) {
	out := make([]rating.Rating, 0)
	for _, it := range r.items {
		if it.FreelancerID == freelancerID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeNotifications struct {
	items map[uuid.UUID]notification.Notification
}

func newFakeNotifications() *fakeNotifications {
	return &fakeNotifications{items: make(map[uuid.UUID]notification.Notification)}
}

func (r *fakeNotifications) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	n.ID = uuid.New()
	r.items[n.ID] = n
	return n, nil
}

func (r *fakeNotifications) GetByID(_ context.Context, id uuid.UUID) (notification.Notification, error) {
	n, ok := r.items[id]
	if !ok {
		return notification.Notification{}, notification.ErrNotFound
	}
	return n, nil
}

func (r *fakeNotifications) ListByUser(_ context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]notification.Notification, error) {
	out := make([]notification.Notification, 0)
	for _, n := range r.items {
		if n.UserID != userID || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeNotifications) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	c := 0
	for _, n := range r.items {
		if n.UserID == userID && !n.Read {
			c++
		}
	}
	return c, nil
}

func (r *fakeNotifications) MarkRead(_ context.Context, id uuid.UUID) error {
	n, ok := r.items[id]
	if !ok {
		return notification.ErrNotFound
	}
	n.Read = true
	r.items[id] = n
	return nil
}

func (r *fakeNotifications) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	var c int64
	for id, n := range r.items {
		if n.UserID == userID && !n.Read {
			n.Read = true
			r.items[id] = n
			c++
		}
	}
	return c, nil
}

type recordingNotifier struct {
	sent []notification.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, in notification.Notification) error {
	n.sent = append(n.sent, in)
	return nil
}

type recordingPublisher struct {
	users    []uuid.UUID
	payloads [][]byte
}

func (p *recordingPublisher) PublishToUser(userID uuid.UUID, payload []byte) {
	p.users = append(p.users, userID)
	p.payloads = append(p.payloads, payload)
}

type memoryCache struct {
	values      map[string][]byte
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = b
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.values {
		if strings.HasPrefix(k, prefix) {
			delete(c.values, k)
		}
	}
	c.invalidated++
	return nil
}

type transitionCounter struct {
	moves []string
}

func (t *transitionCounter) RecordApplicationTransition(from, to string) {
	t.moves = append(t.moves, from+"->"+to)
}
