package repository

import (
	"context"
	"time"

	"github.com/tenderfindsa/tender-match-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository records outbound message attempts and their outcomes.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (*models.Notification, error)
	GetNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	UpdateNotificationStatus(ctx context.Context, notificationID string, status models.NotificationStatus, sentAt *time.Time) error
}

// PostgresNotificationRepository implements NotificationRepository against Postgres.
type PostgresNotificationRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository.
func NewPostgresNotificationRepository(db *pgxpool.Pool) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{DB: db}
}

// CreateNotification inserts a notification record, normally in pending state
// ahead of the dispatch attempt.
func (r *PostgresNotificationRepository) CreateNotification(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	created := notification
	created.ID = uuid.New().String()
	created.CreatedAt = time.Now().UTC()

	_, err := r.DB.Exec(ctx, `
		INSERT INTO notifications (id, user_id, channel, subject, message, recipient, status, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		created.ID,
		created.UserID,
		created.Channel,
		created.Subject,
		created.Message,
		created.Recipient,
		created.Status,
		created.SentAt,
		created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetNotifications returns the user's notification history, newest first.
func (r *PostgresNotificationRepository) GetNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, channel, subject, message, recipient, status, sent_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Channel,
			&n.Subject,
			&n.Message,
			&n.Recipient,
			&n.Status,
			&n.SentAt,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// UpdateNotificationStatus records the outcome of a dispatch attempt.
func (r *PostgresNotificationRepository) UpdateNotificationStatus(ctx context.Context, notificationID string, status models.NotificationStatus, sentAt *time.Time) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE notifications SET status = $2, sent_at = $3 WHERE id = $1`,
		notificationID, status, sentAt)
	return err
}
