package postgres

import (
	"context"
	"time"

	"go-volink-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, message, type, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, n.UserID, n.Message, n.Type, n.CreatedAt).Scan(&n.ID)
}

func (r *notificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	query := `SELECT id, user_id, message, type, created_at, read_at FROM notifications WHERE id = $1`
	var n domain.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.UserID, &n.Message, &n.Type, &n.CreatedAt, &n.ReadAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) FetchByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	query := `SELECT id, user_id, message, type, created_at, read_at
              FROM notifications
              WHERE user_id = $1
              ORDER BY created_at DESC
              LIMIT $2`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL`
	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE notifications SET read_at = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, at, id)
	return err
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID int64, at time.Time) error {
	query := `UPDATE notifications SET read_at = $1 WHERE user_id = $2 AND read_at IS NULL`
	_, err := r.db.Exec(ctx, query, at, userID)
	return err
}
