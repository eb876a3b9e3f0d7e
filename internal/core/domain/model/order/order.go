package order

import (
	"errors"
	"time"

	"deliverytrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents one e-commerce order as delivered by the upstream feed.
//
// The order is immutable from this system's perspective: the feed owns it, we
// only read it and derive values from it. The single indirect effect we have
// on an order is an accepted transition appending a new event to one of its
// fulfillments' timelines, and that write happens in the feed, not here.
//
// Invariants:
//   - The identifier is an opaque non-empty platform string, never parsed.
//   - Fulfillments keep the feed's order; the first one represents the
//     order's delivery state on the dashboard.
//   - The platform display status is loosely typed and not interpreted by
//     any business rule; it is carried for display only.
type Order struct {
	// id is the opaque platform identifier of the order
	id string

	// name is the human-facing order name, e.g. "#1001"
	name string

	// processedAt is when the platform processed the order
	processedAt time.Time

	// displayStatus is the platform-reported fulfillment display status.
	// Loosely typed, owned by the platform, display only.
	displayStatus string

	// fulfillments in feed order; may be empty
	fulfillments []Fulfillment

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order from feed data with validation.
//
// The id must be non-empty and processedAt must not be zero. The fulfillments
// slice is copied; its feed order is preserved. displayStatus may be empty:
// the platform reports nothing for orders without fulfillments.
func NewOrder(
	id string,
	name string,
	processedAt time.Time,
	displayStatus string,
	fulfillments []Fulfillment,
) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if processedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("processedAt")
	}

	copied := make([]Fulfillment, len(fulfillments))
	copy(copied, fulfillments)

	return &Order{
		id:            id,
		name:          name,
		processedAt:   processedAt,
		displayStatus: displayStatus,
		fulfillments:  copied,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their platform identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the opaque platform identifier of the order.
func (o *Order) ID() string {
	return o.id
}

// Name returns the human-facing order name.
func (o *Order) Name() string {
	return o.name
}

// ProcessedAt returns when the platform processed the order.
func (o *Order) ProcessedAt() time.Time {
	return o.processedAt
}

// DisplayStatus returns the platform-reported fulfillment display status.
func (o *Order) DisplayStatus() string {
	return o.displayStatus
}

// Fulfillments returns the order's fulfillments in feed order.
func (o *Order) Fulfillments() []Fulfillment {
	return o.fulfillments
}

// FirstFulfillment returns the order's first fulfillment in feed order.
// The second return value is false when the order has no fulfillments.
//
// The dashboard represents order-level delivery state, so an order with
// several fulfillments contributes only its first one.
func (o *Order) FirstFulfillment() (Fulfillment, bool) {
	if len(o.fulfillments) == 0 {
		return Fulfillment{}, false
	}
	return o.fulfillments[0], true
}
