package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
)

type emailLogRepository struct {
	db *database.DB
}

func NewEmailLogRepository(db *database.DB) notification.EmailLogRepository {
	return &emailLogRepository{db: db}
}

// Create implements notification.EmailLogRepository.
func (r *emailLogRepository) Create(ctx context.Context, log *notification.EmailLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_logs (id, recipient_id, recipient, subject, status, error, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		log.RecipientID, log.Recipient, log.Subject, log.Status, log.Error,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create email log: %w", err)
	}

	return nil
}

// GetByRecipientID implements notification.EmailLogRepository.
func (r *emailLogRepository) GetByRecipientID(ctx context.Context, recipientID string, limit int) ([]*notification.EmailLog, error) {
	q := GetQuerier(ctx, r.db)

	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT id, recipient_id, recipient, subject, status, error, created_at
		FROM email_logs
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*notification.EmailLog, 0)
	for rows.Next() {
		var log notification.EmailLog
		if err := rows.Scan(
			&log.ID, &log.RecipientID, &log.Recipient, &log.Subject, &log.Status, &log.Error, &log.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}

	return logs, nil
}
