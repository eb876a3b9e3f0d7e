// Package ports defines the contracts between the core and its external
// collaborators: the upstream order feed, the settings store and the
// notification sink. The core performs no I/O itself; these interfaces
// establish the boundaries, enabling dependency inversion and testability.
package ports

import (
	"context"
	"fmt"
	"strings"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/order"
)

// OrderFeed is the upstream order and fulfillment data source.
//
// The feed is read-only except for CreateFulfillmentEvent, the single mutation
// the write path performs after an accepted transition. Adapters must deliver
// event timelines newest first; the core takes the timeline head and never
// re-sorts. The feed owns read-after-write consistency per fulfillment: an
// accepted event append must be visible to the next read of that
// fulfillment's timeline.
type OrderFeed interface {
	// ListOrders fetches the most recent orders with their fulfillments and
	// event timelines, newest orders first, up to the platform's page limit.
	ListOrders(ctx context.Context, first int) ([]*order.Order, error)

	// GetFulfillment fetches one fulfillment with its event timeline.
	// Returns an errs.ObjectNotFoundError when the id resolves to nothing.
	GetFulfillment(ctx context.Context, fulfillmentID string) (order.Fulfillment, error)

	// CreateFulfillmentEvent appends a delivery event with the given status to
	// the fulfillment's timeline. Platform validation failures are returned as
	// *FeedValidationError and must be surfaced to the operator verbatim.
	CreateFulfillmentEvent(ctx context.Context, fulfillmentID string, status delivery.Status) error
}

// FieldError is one field-level validation failure reported by the platform
// on a feed mutation.
type FieldError struct {
	Field   []string
	Message string
}

// FeedValidationError carries the platform's field-level errors for a
// rejected mutation. The messages are opaque to the core: transition
// validation acceptance only means the request was well-formed and not
// state-conflicted, not that the platform will accept it, so these are
// passed to the operator without reinterpretation.
type FeedValidationError struct {
	Errors []FieldError
}

func (e *FeedValidationError) Error() string {
	return fmt.Sprintf("feed rejected mutation: %s", strings.Join(e.Messages(), "; "))
}

// Messages returns the platform's error messages verbatim.
func (e *FeedValidationError) Messages() []string {
	messages := make([]string, len(e.Errors))
	for i, fieldErr := range e.Errors {
		messages[i] = fieldErr.Message
	}
	return messages
}
