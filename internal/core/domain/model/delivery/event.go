package delivery

import (
	"errors"
	"time"

	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/guard"
)

var (
	// ErrEventIsNotConstructed is returned when an Event was not created through
	// the NewEvent factory method.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")
)

// Event is a single entry in a fulfillment's delivery timeline: a status from
// the closed set and the moment the platform recorded it.
//
// Events are append-only. The feed never mutates or removes an event; the only
// way a new one appears is through an accepted transition.
type Event struct {
	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a delivery event with validation.
// The status must be a member of the closed status set and the timestamp
// must not be zero.
func NewEvent(status Status, createdAt time.Time) (Event, error) {
	if err := status.Validate(); err != nil {
		return Event{}, err
	}
	if createdAt.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("createdAt")
	}

	return Event{
		status:    status,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the event was created through the constructor.
func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// Status returns the delivery status the event records.
func (e Event) Status() Status {
	return e.status
}

// CreatedAt returns the moment the platform recorded the event.
func (e Event) CreatedAt() time.Time {
	return e.createdAt
}
