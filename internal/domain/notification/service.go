package notification

import (
	"context"
)

// Service queues events for async delivery.
type Service interface {
	// Queue enqueues an event; delivery failures never propagate back to
	// the caller's transaction
	Queue(ctx context.Context, event Event) error

	// Subscribe opens an SSE subscription for an employee; the returned
	// cleanup must be called when the client disconnects
	Subscribe(ctx context.Context, employeeID string) (<-chan Event, func())

	// Stop drains the queue and stops the workers
	Stop()
}
