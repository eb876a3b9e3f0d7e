// Package webhook implements the notification sink as an HTTP webhook:
// eligible status-change events are POSTed as JSON to a configured endpoint.
// Delivery beyond that endpoint is the receiving system's concern.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"deliverytrack/internal/core/ports"
)

// NotificationSink POSTs notifications to a webhook endpoint.
type NotificationSink struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNotificationSink creates a webhook sink for the given endpoint URL.
func NewNotificationSink(endpoint string, logger *slog.Logger) *NotificationSink {
	return &NotificationSink{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With("component", "webhook_notification_sink"),
	}
}

// notificationPayload is the wire format of a dispatched notification.
type notificationPayload struct {
	DispatchID    string `json:"dispatch_id"`
	OrderID       string `json:"order_id"`
	FulfillmentID string `json:"fulfillment_id"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}

// Publish POSTs the notification as JSON. Any non-2xx response is an error;
// the caller decides whether a failed dispatch matters.
func (s *NotificationSink) Publish(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notificationPayload{
		DispatchID:    notification.DispatchID,
		OrderID:       notification.OrderID,
		FulfillmentID: notification.FulfillmentID,
		Status:        notification.Status.String(),
		OccurredAt:    notification.OccurredAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	s.logger.DebugContext(ctx, "Notification delivered",
		"dispatch_id", notification.DispatchID, "status", notification.Status.String())
	return nil
}
