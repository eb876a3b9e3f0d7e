package commands

import (
	"errors"

	"deliverytrack/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
	ErrShopIsRequired = errors.New("shop is required")
)

// UpdateDeliveryStatusCommand represents an operator's request to move one
// fulfillment to a new delivery status.
//
// The fulfillment id and requested status are carried as the operator
// submitted them: an empty fulfillment id and an unrecognized status token
// are legal command inputs whose rejection is the transition validator's
// responsibility, so they produce structured rejections instead of failing
// construction.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand("my-shop", fulfillmentID, "out_for_delivery")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	shop            string
	fulfillmentID   string
	requestedStatus string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to change a fulfillment's
// delivery status. The shop must be non-empty; fulfillment id and requested
// status are validated by the transition rules, not here.
func NewUpdateDeliveryStatusCommand(
	shop string,
	fulfillmentID string,
	requestedStatus string,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShop(shop); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	command.fulfillmentID = fulfillmentID
	command.requestedStatus = requestedStatus

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// Shop returns the store the request belongs to.
func (c UpdateDeliveryStatusCommand) Shop() string {
	return c.shop
}

// FulfillmentID returns the target fulfillment's identifier as submitted.
func (c UpdateDeliveryStatusCommand) FulfillmentID() string {
	return c.fulfillmentID
}

// RequestedStatus returns the operator-chosen status token as submitted.
func (c UpdateDeliveryStatusCommand) RequestedStatus() string {
	return c.requestedStatus
}

func (c *UpdateDeliveryStatusCommand) setShop(shop string) error {
	if shop == "" {
		return ErrShopIsRequired
	}

	c.shop = shop
	return nil
}
