package order

import (
	"errors"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/guard"
)

var (
	// ErrFulfillmentIsNotConstructed is returned when a Fulfillment was not
	// created through the NewFulfillment factory method.
	ErrFulfillmentIsNotConstructed = errors.New(
		"Fulfillment must be created via NewFulfillment constructor",
	)
)

// Fulfillment is one shippable unit of an order tracked through the delivery
// lifecycle. It owns its event timeline; the orderID field is a back-reference
// only and never implies ownership of the order.
//
// A fulfillment has at most one current status at any time: the status of the
// most recent event in its timeline, or none when the timeline is empty.
type Fulfillment struct {
	// id is the opaque platform identifier of the fulfillment
	id string

	// orderID is the owning order's identifier (back-reference only)
	orderID string

	// timeline is the fulfillment's delivery event history, newest first
	timeline delivery.Timeline

	guard guard.ConstructorGuard
}

// NewFulfillment creates a Fulfillment with validation.
// The fulfillment id must be non-empty; an empty id means there is no
// fulfillment to act on and must never produce a Fulfillment value.
func NewFulfillment(id, orderID string, timeline delivery.Timeline) (Fulfillment, error) {
	if id == "" {
		return Fulfillment{}, errs.NewValueIsRequiredError("fulfillment id")
	}

	return Fulfillment{
		id:       id,
		orderID:  orderID,
		timeline: timeline,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the fulfillment was created through the constructor.
func (f Fulfillment) Validate() error {
	return f.guard.Validate(ErrFulfillmentIsNotConstructed)
}

// ID returns the opaque platform identifier of the fulfillment.
func (f Fulfillment) ID() string {
	return f.id
}

// OrderID returns the owning order's identifier.
func (f Fulfillment) OrderID() string {
	return f.orderID
}

// Timeline returns the fulfillment's delivery event history.
func (f Fulfillment) Timeline() delivery.Timeline {
	return f.timeline
}

// CurrentStatus returns the status of the fulfillment's most recent delivery
// event. The second return value is false when the timeline is empty.
func (f Fulfillment) CurrentStatus() (delivery.Status, bool) {
	return f.timeline.CurrentStatus()
}
