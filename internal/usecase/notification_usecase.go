package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"skillbridge/internal/domain/notification"

	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// Publisher pushes an encoded event to every live connection of one user.
type Publisher interface {
	PublishToUser(userID uuid.UUID, payload []byte)
}

// Notifier is what the other usecases need to tell a user something.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}

type NotificationUsecase interface {
	Notifier
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]notification.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Notifications struct {
	repo      notification.Repository
	publisher Publisher
	logger    *log.Logger
}

func NewNotificationUsecase(repo notification.Repository, publisher Publisher, logger *log.Logger) *Notifications {
	return &Notifications{repo: repo, publisher: publisher, logger: logger}
}

type notificationEvent struct {
	Type string                    `json:"type"`
	Data notification.Notification `json:"data"`
}

func (u *Notifications) Notify(ctx context.Context, n notification.Notification) error {
	if n.UserID == uuid.Nil {
		return validationError("Notification recipient is required.")
	}

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		return internalError(err)
	}

	if u.publisher == nil {
		return nil
	}
	b, err := json.Marshal(notificationEvent{Type: "notification", Data: created})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Notifications] encode failed id=%s err=%v", created.ID, err)
		}
		return nil
	}
	u.publisher.PublishToUser(created.UserID, b)
	return nil
}

func (u *Notifications) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	items, err := u.repo.ListByUser(ctx, userID, unreadOnly, limit)
	if err != nil {
		return nil, internalError(err)
	}
	return items, nil
}

func (u *Notifications) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := u.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, internalError(err)
	}
	return n, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return notFoundError("Notification not found.")
		}
		return internalError(err)
	}
	if n.UserID != userID {
		return forbiddenError("You can only update your own notifications.")
	}
	if n.Read {
		return nil
	}
	if err := u.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return notFoundError("Notification not found.")
		}
		return internalError(err)
	}
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := u.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, internalError(err)
	}
	return n, nil
}
