package repository

import (
	"context"
	"encoding/json"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/notification"

	"github.com/google/uuid"
)

const notificationColumns = `id, user_id, type, title, message, payload, is_read, created_at`

type PostgresNotificationRepository struct {
	db database.Querier
}

func NewPostgresNotificationRepository(db database.Querier) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return notification.Notification{}, err
	}
	if n.Payload == nil {
		payload = []byte("{}")
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO notifications (id, user_id, type, title, message, payload)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		 RETURNING `+notificationColumns,
		n.ID, n.UserID, string(n.Type), n.Title, n.Message, string(payload),
	)
	return scanNotification(row)
}

func (r *PostgresNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (notification.Notification, error) {
	return scanNotification(r.db.QueryRow(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
}

func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]notification.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications
		 WHERE user_id = $1 AND ($2 = false OR is_read = false)
		 ORDER BY created_at DESC
		 LIMIT $3`,
		userID, unreadOnly, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var c int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM notifications WHERE user_id = $1 AND is_read = false`, userID).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notification.ErrNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`, userID)
}

func scanNotification(row database.Row) (notification.Notification, error) {
	var n notification.Notification
	var typ string
	var payload []byte
	if err := row.Scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Message, &payload, &n.Read, &n.CreatedAt); err != nil {
		if database.IsNoRows(err) {
			return notification.Notification{}, notification.ErrNotFound
		}
		return notification.Notification{}, err
	}
	n.Type = notification.Type(typ)
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &n.Payload); err != nil {
			return notification.Notification{}, err
		}
	}
	return n, nil
}
