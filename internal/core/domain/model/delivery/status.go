package delivery

import (
	"fmt"
	"strings"

	"deliverytrack/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of a fulfillment as reported
// by the platform's event feed.
//
// The status set is closed. Delivered and Failure are terminal: once a
// fulfillment reaches either of them no further transition is accepted.
//
//	Confirmed ──> InTransit ──> OutForDelivery ──> Delivered
//	                  │   ▲            │
//	                  │   └────────────┘
//	                  │  (operator may move back to correct an error)
//	                  └──> AttemptedDelivery ──> Failure
//
// Status is a value object. The zero value Unknown marks the absence of any
// delivery event and is distinct from every member of the closed set.
type Status int

const (
	// Unknown represents the absence of a delivery status. A fulfillment whose
	// timeline has no events yet carries Unknown until the first event arrives.
	Unknown Status = iota

	// Confirmed indicates the carrier has confirmed receipt of the shipment.
	Confirmed

	// InTransit indicates the shipment is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the shipment is on a vehicle for final delivery.
	OutForDelivery

	// AttemptedDelivery indicates a delivery attempt was made and did not succeed.
	AttemptedDelivery

	// Delivered indicates the shipment reached the customer. Terminal.
	Delivered

	// Failure indicates the shipment permanently failed to deliver. Terminal.
	Failure
)

// getStatusStrings returns the platform token for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Confirmed:         "CONFIRMED",
		InTransit:         "IN_TRANSIT",
		OutForDelivery:    "OUT_FOR_DELIVERY",
		AttemptedDelivery: "ATTEMPTED_DELIVERY",
		Delivered:         "DELIVERED",
		Failure:           "FAILURE",
	}
}

// getValidStatusStrings returns only the members of the closed status set.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it marks absence
	return map[Status]string{
		Confirmed:         "CONFIRMED",
		InTransit:         "IN_TRANSIT",
		OutForDelivery:    "OUT_FOR_DELIVERY",
		AttemptedDelivery: "ATTEMPTED_DELIVERY",
		Delivered:         "DELIVERED",
		Failure:           "FAILURE",
	}
}

// StatusFromString canonicalizes a loosely-typed status token from the
// platform into a member of the closed status set. Matching is
// case-insensitive and ignores surrounding whitespace.
//
// Returns an error if the token does not name a member of the closed set.
// The empty string is not a valid token; absence is modeled by Unknown and
// must be produced deliberately, never by parsing.
func StatusFromString(s string) (Status, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == token {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known delivery status", s),
	)
}

// Validate checks that the Status is a member of the closed status set.
// Unknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the platform token for the status, or "UNKNOWN" for
// Unknown and any out-of-range value. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered and Failure are terminal: a delivered or permanently failed
// fulfillment cannot be moved to another status through this system.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failure
}
