package services

import (
	"errors"
	"fmt"

	"deliverytrack/internal/core/domain/model/delivery"
)

// Rejection reasons returned by TransitionValidator.Validate. Callers
// classify a rejection with errors.Is against these sentinels.
var (
	// ErrNoFulfillment rejects a request without a fulfillment identifier:
	// there is nothing to act on.
	ErrNoFulfillment = errors.New("no fulfillment to act on")

	// ErrUnknownStatus rejects a requested status that does not canonicalize
	// to a member of the closed status set.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrAlreadyTerminal rejects any change to a fulfillment whose current
	// status is terminal. A delivered or permanently failed fulfillment cannot
	// be moved to another status through this interface.
	ErrAlreadyTerminal = errors.New("fulfillment is in a terminal status")
)

// TransitionValidator decides whether a requested status change for a
// fulfillment is legal and returns the normalized target status.
//
// The validator checks, in order:
//  1. the fulfillment identifier is non-empty (ErrNoFulfillment)
//  2. the requested status canonicalizes, case-insensitively, to a member of
//     the closed status set (ErrUnknownStatus)
//  3. the current status is not terminal (ErrAlreadyTerminal)
//
// Any other transition is accepted. The validator deliberately does not
// enforce forward-only ordering among the non-terminal statuses: an operator
// may move a fulfillment back from OutForDelivery to InTransit to correct an
// error. Acceptance means "well-formed and not state-conflicted"; the external
// feed may still reject the write with its own field-level errors, which the
// caller surfaces verbatim.
//
// On acceptance the caller is responsible for appending the new event to the
// timeline through the feed; this service only decides legality.
type TransitionValidator struct{}

// NewTransitionValidator creates a new TransitionValidator instance.
func NewTransitionValidator() TransitionValidator {
	return TransitionValidator{}
}

// Validate applies the transition rules to a requested status change.
//
// current is the fulfillment's derived current status; delivery.Unknown marks
// a fulfillment with no events yet, which is never terminal, so any valid
// requested status is accepted for it.
//
// Returns the canonical target status on acceptance, or a rejection error
// wrapping one of ErrNoFulfillment, ErrUnknownStatus, ErrAlreadyTerminal.
func (TransitionValidator) Validate(
	fulfillmentID string,
	current delivery.Status,
	requested string,
) (delivery.Status, error) {
	if fulfillmentID == "" {
		return delivery.Unknown, ErrNoFulfillment
	}

	normalized, err := delivery.StatusFromString(requested)
	if err != nil {
		return delivery.Unknown, fmt.Errorf("%w: %q", ErrUnknownStatus, requested)
	}

	if current.IsTerminal() {
		return delivery.Unknown, fmt.Errorf("%w: %s", ErrAlreadyTerminal, current)
	}

	return normalized, nil
}
