package usecase

import (
	"context"
	"testing"

	"skillbridge/internal/domain/actor"
	"skillbridge/internal/domain/notification"

	"github.com/google/uuid"
)

func TestRatings_Rate(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()
	created := f.apply(t)

	ratings := &fakeRatings{}
	notifier := &recordingNotifier{}
	uc := NewRatingUsecase(ratings, f.apps, f.profiles, notifier, nil)

	_, err := uc.Rate(ctx, f.company, created.ID, RateApplicationInput{Score: 6})
	assertUsecaseError(t, err, ErrValidation, "Score must be between 1 and 5.")

	_, err = uc.Rate(ctx, f.company, created.ID, RateApplicationInput{Score: 5})
	assertUsecaseError(t, err, ErrPrecondition, "Only accepted applications can be rated.")

	if _, err := f.uc.Update(ctx, f.company, created.ID, UpdateApplicationInput{Status: strPtr("ACCEPTED")}); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err = uc.Rate(ctx, f.freelancer, created.ID, RateApplicationInput{Score: 5})
	assertUsecaseError(t, err, ErrForbidden, "Only the mission's company can rate this application.")

	r, err := uc.Rate(ctx, f.company, created.ID, RateApplicationInput{Score: 4, Comment: " solid work "})
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if r.Score != 4 || r.Comment != "solid work" || r.FreelancerID != f.freelancer.ProfileID {
		t.Fatalf("unexpected rating: %+v", r)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].UserID != f.freelancerUser || notifier.sent[0].Type != notification.TypeRatingReceived {
		t.Fatalf("unexpected notifications: %+v", notifier.sent)
	}

	_, err = uc.Rate(ctx, f.company, created.ID, RateApplicationInput{Score: 3})
	assertUsecaseError(t, err, ErrConflict, "This application has already been rated.")
}

func TestRatings_ListForFreelancer(t *testing.T) {
	f := newAppFixture(t)
	ctx := context.Background()

	ratings := &fakeRatings{}
	uc := NewRatingUsecase(ratings, f.apps, f.profiles, nil, nil)

	for _, score := range []int{5, 4} {
		if _, err := ratings.Create(ctx, ratingFor(f.freelancer, score)); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := uc.ListForFreelancer(ctx, f.freelancer.ProfileID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Count != 2 || out.Average != 4.5 {
		t.Fatalf("unexpected summary: %+v", out)
	}

	_, err = uc.ListForFreelancer(ctx, uuid.New())
	assertUsecaseError(t, err, ErrNotFound, "Freelance profile not found.")
}

func TestNotifications_NotifyPersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotifications()
	pub := &recordingPublisher{}
	uc := NewNotificationUsecase(repo, pub, nil)
	userID := uuid.New()

	if err := uc.Notify(ctx, notification.Notification{UserID: userID, Type: notification.TypeApplicationReceived, Title: "t"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(pub.users) != 1 || pub.users[0] != userID {
		t.Fatalf("expected one push to %s, got %v", userID, pub.users)
	}

	count, err := uc.UnreadCount(ctx, userID)
	if err != nil || count != 1 {
		t.Fatalf("unread count: %d %v", count, err)
	}

	items, err := uc.List(ctx, userID, true, 0)
	if err != nil || len(items) != 1 {
		t.Fatalf("list: %v %d", err, len(items))
	}

	err = uc.MarkRead(ctx, uuid.New(), items[0].ID)
	assertUsecaseError(t, err, ErrForbidden, "You can only update your own notifications.")

	if err := uc.MarkRead(ctx, userID, items[0].ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if count, _ := uc.UnreadCount(ctx, userID); count != 0 {
		t.Fatalf("expected 0 unread, got %d", count)
	}

	err = uc.MarkRead(ctx, userID, uuid.New())
	assertUsecaseError(t, err, ErrNotFound, "Notification not found.")
}

func TestNotifications_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotifications()
	uc := NewNotificationUsecase(repo, nil, nil)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		if err := uc.Notify(ctx, notification.Notification{UserID: userID, Type: notification.TypeApplicationAccepted}); err != nil {
			t.Fatalf("notify: %v", err)
		}
	}
	n, err := uc.MarkAllRead(ctx, userID)
	if err != nil || n != 3 {
		t.Fatalf("mark all: %d %v", n, err)
	}

	err = uc.Notify(ctx, notification.Notification{Type: notification.TypeApplicationAccepted})
	assertUsecaseError(t, err, ErrValidation, "")
}

func TestActors_ResolveActor(t *testing.T) {
	ctx := context.Background()
	users := newFakeUsers()
	profiles := newFakeProfiles()
	resolver := NewActorResolver(users, profiles, profiles)

	freelancerUser := seedUser(t, users, "f@example.com", "FREELANCER")
	companyUser := seedUser(t, users, "c@example.com", "COMPANY")

	a, err := resolver.ResolveActor(ctx, freelancerUser)
	if err != nil || a.Kind != actor.KindAnonymous || a.UserID != freelancerUser {
		t.Fatalf("expected anonymous actor without profile, got %+v %v", a, err)
	}

	fp, _ := profiles.CreateFreelance(ctx, freelanceProfileFor(freelancerUser))
	a, err = resolver.ResolveActor(ctx, freelancerUser)
	if err != nil || !a.IsFreelancer(fp.ID) {
		t.Fatalf("expected freelancer actor, got %+v %v", a, err)
	}

	cp, _ := profiles.CreateCompany(ctx, companyProfileFor(companyUser))
	a, err = resolver.ResolveActor(ctx, companyUser)
	if err != nil || !a.IsCompany(cp.ID) {
		t.Fatalf("expected company actor, got %+v %v", a, err)
	}

	_, err = resolver.ResolveActor(ctx, uuid.New())
	assertUsecaseError(t, err, ErrUnauthorized, "")
}
