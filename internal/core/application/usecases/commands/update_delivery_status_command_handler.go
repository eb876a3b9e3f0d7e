package commands

import (
	"context"
	"log/slog"
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/services"
	"deliverytrack/internal/core/ports"

	"github.com/google/uuid"
)

// UpdateDeliveryStatusResult reports the outcome of an accepted status change.
type UpdateDeliveryStatusResult struct {
	// Status is the normalized status written to the feed.
	Status delivery.Status

	// Notified reports whether a notification was dispatched for the change.
	Notified bool
}

// UpdateDeliveryStatusCommandHandler orchestrates the write path: it derives
// the fulfillment's current status from the feed, validates the requested
// transition, forwards the normalized status to the feed's mutation endpoint,
// and dispatches a notification when the store's settings make the change
// eligible.
//
// The handler owns no state of its own. The feed owns the timeline write and
// its read-after-write consistency; the platform may still reject the
// mutation with field-level errors, which are returned verbatim.
//
// Example:
//
//	handler := NewUpdateDeliveryStatusCommandHandler(feed, settingsRepo, sink, logger)
//	cmd, _ := NewUpdateDeliveryStatusCommand(shop, fulfillmentID, "delivered")
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrAlreadyTerminal):
//	    // fulfillment already delivered or failed
//	case err != nil:
//	    // feed failure or platform rejection
//	}
type UpdateDeliveryStatusCommandHandler struct {
	feed         ports.OrderFeed
	settingsRepo ports.SettingsRepository
	sink         ports.NotificationSink
	validator    services.TransitionValidator
	policy       services.PolicyEngine
	logger       *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status updates.
func NewUpdateDeliveryStatusCommandHandler(
	feed ports.OrderFeed,
	settingsRepo ports.SettingsRepository,
	sink ports.NotificationSink,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		feed:         feed,
		settingsRepo: settingsRepo,
		sink:         sink,
		validator:    services.NewTransitionValidator(),
		policy:       services.NewPolicyEngine(),
		logger:       logger.With("component", "update_delivery_status_handler"),
	}
}

// Handle processes the status change request.
//
// Rejections from the transition rules come back as errors wrapping
// services.ErrNoFulfillment, services.ErrUnknownStatus or
// services.ErrAlreadyTerminal. A platform rejection of the mutation comes
// back as *ports.FeedValidationError, untouched.
//
// A notification dispatch failure does not fail the accepted transition: the
// feed write has already happened, so the failure is logged and the result
// reports Notified false.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	command UpdateDeliveryStatusCommand,
) (UpdateDeliveryStatusResult, error) {
	if err := command.Validate(); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	if command.FulfillmentID() == "" {
		return UpdateDeliveryStatusResult{}, services.ErrNoFulfillment
	}

	fulfillment, err := h.feed.GetFulfillment(ctx, command.FulfillmentID())
	if err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	// An empty timeline validates as absent status, never as the settings
	// default: absence is not terminal, so any valid request is accepted.
	current, _ := fulfillment.CurrentStatus()

	normalized, err := h.validator.Validate(command.FulfillmentID(), current, command.RequestedStatus())
	if err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	if err = h.feed.CreateFulfillmentEvent(ctx, command.FulfillmentID(), normalized); err != nil {
		return UpdateDeliveryStatusResult{}, err
	}

	result := UpdateDeliveryStatusResult{Status: normalized}

	snapshot, err := h.settingsRepo.Get(ctx, command.Shop())
	if err != nil {
		h.logger.WarnContext(ctx, "Settings lookup failed, skipping notification",
			"shop", command.Shop(), "error", err)
		return result, nil
	}

	if !h.policy.ShouldNotify(normalized, snapshot) {
		return result, nil
	}

	notification := ports.Notification{
		DispatchID:    uuid.NewString(),
		OrderID:       fulfillment.OrderID(),
		FulfillmentID: fulfillment.ID(),
		Status:        normalized,
		OccurredAt:    time.Now().UTC(),
	}
	if err = h.sink.Publish(ctx, notification); err != nil {
		h.logger.WarnContext(ctx, "Notification dispatch failed",
			"fulfillment_id", fulfillment.ID(), "status", normalized.String(), "error", err)
		return result, nil
	}

	result.Notified = true
	return result, nil
}
