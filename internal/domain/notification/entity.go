package notification

import (
	"time"
)

type EventType string

const (
	TypeLeaveApproved EventType = "leave_approved"
	TypeLeaveRejected EventType = "leave_rejected"
)

// Event is a notification queued for async delivery (email + SSE).
type Event struct {
	ID             string
	Type           EventType
	RecipientID    string
	RecipientName  string
	RecipientEmail string
	Title          string
	Message        string
	Data           map[string]interface{}
	CreatedAt      time.Time
}

type EmailLogStatus string

const (
	EmailLogStatusSent   EmailLogStatus = "sent"
	EmailLogStatusFailed EmailLogStatus = "failed"
)

// EmailLog is a delivery audit row.
type EmailLog struct {
	ID          string
	RecipientID string
	Recipient   string
	Subject     string
	Status      EmailLogStatus
	Error       *string
	CreatedAt   time.Time
}
