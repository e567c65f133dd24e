package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmailService struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeEmailService) SendLeaveStatus(to, employeeName, leaveType, startDate, endDate, status, comment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return f.err
}

func (f *fakeEmailService) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

type fakeEmailLogRepo struct {
	mu   sync.Mutex
	logs []notification.EmailLog
}

func (f *fakeEmailLogRepo) Create(ctx context.Context, log *notification.EmailLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.ID = "log-1"
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeEmailLogRepo) GetByRecipientID(ctx context.Context, recipientID string, limit int) ([]*notification.EmailLog, error) {
	return nil, nil
}

func (f *fakeEmailLogRepo) all() []notification.EmailLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notification.EmailLog(nil), f.logs...)
}

func leaveEvent(recipientEmail string) notification.Event {
	return notification.Event{
		Type:           notification.TypeLeaveApproved,
		RecipientID:    "emp-1",
		RecipientName:  "Asha Verma",
		RecipientEmail: recipientEmail,
		Title:          "Leave request approved",
		Message:        "Your sick leave from 2024-06-10 to 2024-06-12 has been approved.",
		Data: map[string]interface{}{
			"leave_type": "sick",
			"start_date": "2024-06-10",
			"end_date":   "2024-06-12",
			"status":     "approved",
		},
	}
}

func TestQueueDeliversEmailAndAuditLog(t *testing.T) {
	emails := &fakeEmailService{}
	logs := &fakeEmailLogRepo{}
	svc := NewNotificationService(Config{WorkerCount: 1, QueueSize: 8}, sse.NewHub(), emails, logs)

	require.NoError(t, svc.Queue(context.Background(), leaveEvent("asha@example.com")))
	svc.Stop()

	assert.Equal(t, []string{"asha@example.com"}, emails.sentTo())

	entries := logs.all()
	require.Len(t, entries, 1)
	assert.Equal(t, notification.EmailLogStatusSent, entries[0].Status)
	assert.Equal(t, "emp-1", entries[0].RecipientID)
	assert.Nil(t, entries[0].Error)
}

func TestQueueRecordsFailedDelivery(t *testing.T) {
	emails := &fakeEmailService{err: errors.New("smtp unreachable")}
	logs := &fakeEmailLogRepo{}
	svc := NewNotificationService(Config{WorkerCount: 1, QueueSize: 8}, sse.NewHub(), emails, logs)

	require.NoError(t, svc.Queue(context.Background(), leaveEvent("asha@example.com")))
	svc.Stop()

	entries := logs.all()
	require.Len(t, entries, 1)
	assert.Equal(t, notification.EmailLogStatusFailed, entries[0].Status)
	require.NotNil(t, entries[0].Error)
	assert.Contains(t, *entries[0].Error, "smtp unreachable")
}

func TestSubscribeReceivesPublishedEvents(t *testing.T) {
	emails := &fakeEmailService{}
	logs := &fakeEmailLogRepo{}
	svc := NewNotificationService(Config{WorkerCount: 1, QueueSize: 8}, sse.NewHub(), emails, logs)
	defer svc.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := svc.Subscribe(ctx, "emp-1")
	defer cleanup()

	require.NoError(t, svc.Queue(ctx, leaveEvent("")))

	select {
	case event := <-events:
		assert.Equal(t, notification.TypeLeaveApproved, event.Type)
		assert.Equal(t, "emp-1", event.RecipientID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscribed event")
	}
}

func TestQueueAfterStop(t *testing.T) {
	svc := NewNotificationService(Config{}, sse.NewHub(), &fakeEmailService{}, &fakeEmailLogRepo{})
	svc.Stop()

	err := svc.Queue(context.Background(), leaveEvent(""))
	assert.Error(t, err)
}
