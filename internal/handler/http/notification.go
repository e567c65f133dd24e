package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/notification"
	"github.com/dayflow-hr/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// NotificationHandler defines the notification handler interface
type NotificationHandler interface {
	// Stream handles the SSE connection for real-time notifications
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifService notification.Service) NotificationHandler {
	return &notificationHandlerImpl{
		notifService: notifService,
	}
}

// getEmployeeIDFromContext extracts employee_id from JWT context
func getEmployeeIDFromContext(r *http.Request) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if employeeID, ok := claims["employee_id"].(string); ok {
		return employeeID
	}
	return ""
}

// Stream handles SSE connection for real-time notifications
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	employeeID := getEmployeeIDFromContext(r)
	if employeeID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// Subscribe to notifications
	events, cleanup := h.notifService.Subscribe(r.Context(), employeeID)
	defer cleanup()

	// Send initial connection event
	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"employee_id\":\"%s\"}\n\n", employeeID)
	flusher.Flush()

	// Stream events
	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(map[string]interface{}{
				"id":      event.ID,
				"title":   event.Title,
				"message": event.Message,
				"data":    event.Data,
			})
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
			flusher.Flush()

		case <-keepalive.C:
			// Keepalive ping
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
