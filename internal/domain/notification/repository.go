package notification

import (
	"context"
)

// EmailLogRepository - interface for email_logs table
type EmailLogRepository interface {
	Create(ctx context.Context, log *EmailLog) error
	GetByRecipientID(ctx context.Context, recipientID string, limit int) ([]*EmailLog, error)
}
