package settings

import (
	"errors"
	"fmt"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/guard"
)

var (
	// ErrSettingsIsNotConstructed is returned when a Settings instance was not
	// created through NewSettings or Default.
	ErrSettingsIsNotConstructed = errors.New(
		"Settings must be created via NewSettings or Default",
	)
)

// Documented defaults, substituted field by field when a stored settings
// record is missing a value. A missing field is a normal condition, never
// a failure.
const (
	// DefaultExpectedDeliveryWindowDays is the SLA window applied when a store
	// has not configured one.
	DefaultExpectedDeliveryWindowDays = 5
)

// DefaultStatusForNewFulfillment is the status synthesized for a fulfillment
// with no events yet, when a store has not configured one. It is only applied
// when the engine is explicitly asked to synthesize an initial state.
var DefaultStatusForNewFulfillment = delivery.InTransit

// Settings is a store's delivery configuration: the expected delivery window,
// the notification master switch with three per-status toggles, and the
// default status applied to fulfillments that have no events yet.
//
// Settings is an immutable snapshot. Each policy evaluation receives its own
// copy and must never observe a concurrent update mid-evaluation.
type Settings struct {
	expectedDeliveryWindowDays int
	notificationsEnabled       bool
	notifyOnInTransit          bool
	notifyOnOutForDelivery     bool
	notifyOnDelivered          bool
	defaultStatus              delivery.Status

	guard guard.ConstructorGuard
}

// NewSettings creates a validated settings snapshot.
//
// The delivery window must be a positive number of days and the default
// status must be a member of the closed status set.
func NewSettings(
	expectedDeliveryWindowDays int,
	notificationsEnabled bool,
	notifyOnInTransit bool,
	notifyOnOutForDelivery bool,
	notifyOnDelivered bool,
	defaultStatus delivery.Status,
) (Settings, error) {
	if expectedDeliveryWindowDays <= 0 {
		return Settings{}, errs.NewValueIsInvalidErrorWithCause(
			"expectedDeliveryWindowDays",
			fmt.Errorf("%d is not greater than 0", expectedDeliveryWindowDays),
		)
	}
	if err := defaultStatus.Validate(); err != nil {
		return Settings{}, err
	}

	return Settings{
		expectedDeliveryWindowDays: expectedDeliveryWindowDays,
		notificationsEnabled:       notificationsEnabled,
		notifyOnInTransit:          notifyOnInTransit,
		notifyOnOutForDelivery:     notifyOnOutForDelivery,
		notifyOnDelivered:          notifyOnDelivered,
		defaultStatus:              defaultStatus,
		guard:                      guard.NewConstructorGuard(),
	}, nil
}

// Default returns the documented store defaults: a five-day delivery window,
// notifications disabled with all three per-status toggles on, and InTransit
// as the status for fulfillments without events.
func Default() Settings {
	return Settings{
		expectedDeliveryWindowDays: DefaultExpectedDeliveryWindowDays,
		notificationsEnabled:       false,
		notifyOnInTransit:          true,
		notifyOnOutForDelivery:     true,
		notifyOnDelivered:          true,
		defaultStatus:              DefaultStatusForNewFulfillment,
		guard:                      guard.NewConstructorGuard(),
	}
}

// Validate ensures the settings snapshot was created through a constructor.
func (s Settings) Validate() error {
	return s.guard.Validate(ErrSettingsIsNotConstructed)
}

// ExpectedDeliveryWindowDays returns the configured SLA window in days.
func (s Settings) ExpectedDeliveryWindowDays() int {
	return s.expectedDeliveryWindowDays
}

// NotificationsEnabled returns the notification master switch.
func (s Settings) NotificationsEnabled() bool {
	return s.notificationsEnabled
}

// NotifyOnInTransit returns the in-transit notification toggle.
func (s Settings) NotifyOnInTransit() bool {
	return s.notifyOnInTransit
}

// NotifyOnOutForDelivery returns the out-for-delivery notification toggle.
func (s Settings) NotifyOnOutForDelivery() bool {
	return s.notifyOnOutForDelivery
}

// NotifyOnDelivered returns the delivered notification toggle.
func (s Settings) NotifyOnDelivered() bool {
	return s.notifyOnDelivered
}

// DefaultStatusForNewFulfillment returns the status synthesized for a
// fulfillment with no events yet.
func (s Settings) DefaultStatusForNewFulfillment() delivery.Status {
	return s.defaultStatus
}
