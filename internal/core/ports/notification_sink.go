package ports

import (
	"context"
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
)

// Notification is a status-change event deemed eligible for dispatch by the
// policy engine. Delivery itself is external; the sink only accepts.
type Notification struct {
	// DispatchID uniquely identifies this dispatch attempt, letting the
	// receiving system deduplicate.
	DispatchID string

	// OrderID and FulfillmentID locate the affected fulfillment.
	OrderID       string
	FulfillmentID string

	// Status is the normalized status that triggered the notification.
	Status delivery.Status

	// OccurredAt is when the status change was accepted.
	OccurredAt time.Time
}

// NotificationSink accepts eligible status-change notifications.
type NotificationSink interface {
	Publish(ctx context.Context, notification Notification) error
}
