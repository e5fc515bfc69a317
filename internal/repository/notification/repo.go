package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notify-hub/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrAlreadyFinalized is returned when a terminal update matches no
	// pending row: the record is missing or another actor finalized it
	// first. Terminal states are never overwritten.
	ErrAlreadyFinalized = errors.New("notification already finalized")
)

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const notificationColumns = `id, channel, recipient, subject, message, template, variables, status, scheduled_at, sent_at, error, created_at, updated_at`

// CreateNotification inserts a new pending notification and returns it with
// the database-assigned id and timestamps filled in.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	query := `
		INSERT INTO notifications (
		    channel, recipient, subject, message, template, variables, status, scheduled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at;
    `

	vars, err := json.Marshal(n.Variables)
	if err != nil {
		return model.Notification{}, fmt.Errorf("marshal variables: %w", err)
	}

	err = r.db.Master.QueryRowContext(
		ctx, query, n.Channel, n.Recipient, n.Subject, n.Message, n.Template, vars, n.Status, n.ScheduledAt,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// MarkSent transitions a pending notification to sent.
//
// The update is guarded on status = 'pending' so a record that already
// reached a terminal state is left untouched.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	query := `
		UPDATE notifications
		SET status = 'sent', sent_at = $1, updated_at = now()
		WHERE id = $2 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, sentAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrAlreadyFinalized
	}

	return nil
}

// MarkFailed transitions a pending notification to failed, recording the
// human-readable cause. Guarded the same way as MarkSent.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, cause string) error {
	query := `
		UPDATE notifications
		SET status = 'failed', error = $1, updated_at = now()
		WHERE id = $2 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, cause, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification failed: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrAlreadyFinalized
	}

	return nil
}

// GetDueNotifications retrieves pending notifications whose scheduled time
// is at or before now, oldest first.
func (r *Repository) GetDueNotifications(ctx context.Context, now time.Time) ([]model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE status = 'pending' AND scheduled_at <= $1
		ORDER BY scheduled_at;
    `

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// ListNotifications retrieves a page of notifications ordered by creation
// time descending, optionally filtered by channel and status, together with
// the total match count.
func (r *Repository) ListNotifications(ctx context.Context, channel model.Channel, status model.Status, page, limit int) ([]model.Notification, int, error) {
	where := ""
	args := []interface{}{}

	if channel != "" {
		args = append(args, channel)
		where += fmt.Sprintf(" AND channel = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	countQuery := `SELECT count(*) FROM notifications WHERE true` + where + `;`

	var total int
	if err := r.db.Master.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE true` + where + `
		ORDER BY created_at DESC
		LIMIT $` + fmt.Sprint(len(args)-1) + ` OFFSET $` + fmt.Sprint(len(args)) + `;
    `

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications, err := scanNotifications(rows)
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// GetNotificationStatusByID retrieves the status of a notification by its ID.
func (r *Repository) GetNotificationStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status model.Status
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

func scanNotifications(rows *sql.Rows) ([]model.Notification, error) {
	var notifications []model.Notification

	for rows.Next() {
		var (
			n       model.Notification
			vars    []byte
			sentAt  sql.NullTime
			sendErr sql.NullString
		)

		err := rows.Scan(
			&n.ID, &n.Channel, &n.Recipient, &n.Subject, &n.Message, &n.Template,
			&vars, &n.Status, &n.ScheduledAt, &sentAt, &sendErr, &n.CreatedAt, &n.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		if len(vars) > 0 {
			if err := json.Unmarshal(vars, &n.Variables); err != nil {
				return nil, fmt.Errorf("failed to unmarshal variables: %w", err)
			}
		}
		if sentAt.Valid {
			n.SentAt = &sentAt.Time
		}
		if sendErr.Valid {
			n.Error = sendErr.String
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
