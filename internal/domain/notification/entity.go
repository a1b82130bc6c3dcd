package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeApplicationReceived  Type = "APPLICATION_RECEIVED"
	TypeApplicationAccepted  Type = "APPLICATION_ACCEPTED"
	TypeApplicationRejected  Type = "APPLICATION_REJECTED"
	TypeApplicationWithdrawn Type = "APPLICATION_WITHDRAWN"
	TypeRatingReceived       Type = "RATING_RECEIVED"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"userId"`
	Type      Type              `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Payload   map[string]string `json:"payload,omitempty"`
	Read      bool              `json:"read"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Repository is the persistent notification store.
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (Notification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
