package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/email"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/sse"
	"github.com/google/uuid"
)

// Config tunes the delivery worker pool.
type Config struct {
	WorkerCount int
	QueueSize   int
}

func (c Config) withDefaults() Config {
	if c.WorkerCount < 1 {
		c.WorkerCount = 2
	}
	if c.QueueSize < 1 {
		c.QueueSize = 256
	}
	return c
}

type notificationServiceImpl struct {
	queue        chan notification.Event
	hub          *sse.Hub
	emailSvc     email.EmailService
	emailLogRepo notification.EmailLogRepository

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewNotificationService starts the delivery workers. Stop must be
// called on shutdown so queued events drain before the process exits.
func NewNotificationService(
	cfg Config,
	hub *sse.Hub,
	emailSvc email.EmailService,
	emailLogRepo notification.EmailLogRepository,
) notification.Service {
	cfg = cfg.withDefaults()

	s := &notificationServiceImpl{
		queue:        make(chan notification.Event, cfg.QueueSize),
		hub:          hub,
		emailSvc:     emailSvc,
		emailLogRepo: emailLogRepo,
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker()
	}

	return s
}

// Queue implements notification.Service.
func (s *notificationServiceImpl) Queue(ctx context.Context, event notification.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return fmt.Errorf("notification service is stopped")
	}

	select {
	case s.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		slog.Warn("Notification queue full, dropping event",
			"event_id", event.ID,
			"type", event.Type,
			"recipient_id", event.RecipientID,
		)
		return fmt.Errorf("notification queue is full")
	}
}

// Subscribe implements notification.Service.
func (s *notificationServiceImpl) Subscribe(ctx context.Context, employeeID string) (<-chan notification.Event, func()) {
	sseCh, sseCleanup := s.hub.Subscribe(employeeID)

	out := make(chan notification.Event, 10)
	done := make(chan struct{})

	go func() {
		defer close(out)
		for {
			select {
			case ev, ok := <-sseCh:
				if !ok {
					return
				}
				if event, ok := ev.Data.(notification.Event); ok {
					select {
					case out <- event:
					case <-done:
						return
					case <-ctx.Done():
						return
					}
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			close(done)
			sseCleanup()
		})
	}

	return out, cleanup
}

// Stop implements notification.Service.
func (s *notificationServiceImpl) Stop() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *notificationServiceImpl) worker() {
	defer s.wg.Done()

	for event := range s.queue {
		s.deliver(event)
	}
}

// deliver fans an event out to SSE subscribers and email. Failures are
// logged and audited, never retried here; the email layer owns retries.
func (s *notificationServiceImpl) deliver(event notification.Event) {
	s.hub.Publish(event.RecipientID, sse.Event{
		EmployeeID: event.RecipientID,
		Event:      string(event.Type),
		Data:       event,
	})

	if event.RecipientEmail == "" {
		return
	}

	sendErr := s.emailSvc.SendLeaveStatus(
		event.RecipientEmail,
		event.RecipientName,
		dataString(event.Data, "leave_type"),
		dataString(event.Data, "start_date"),
		dataString(event.Data, "end_date"),
		dataString(event.Data, "status"),
		dataString(event.Data, "admin_comment"),
	)

	log := notification.EmailLog{
		RecipientID: event.RecipientID,
		Recipient:   event.RecipientEmail,
		Subject:     event.Title,
		Status:      notification.EmailLogStatusSent,
	}
	if sendErr != nil {
		msg := sendErr.Error()
		log.Status = notification.EmailLogStatusFailed
		log.Error = &msg
		slog.Error("Failed to deliver notification email",
			"event_id", event.ID,
			"recipient", event.RecipientEmail,
			"error", sendErr,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.emailLogRepo.Create(ctx, &log); err != nil {
		slog.Error("Failed to write email log", "event_id", event.ID, "error", err)
	}
}

func dataString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
