package commands

import (
	"errors"

	"deliverytrack/internal/core/domain/model/settings"
	"deliverytrack/internal/pkg/guard"
)

var (
	ErrSaveSettingsCommandIsNotConstructed = errors.New(
		"SaveSettingsCommand must be created via NewSaveSettingsCommand constructor",
	)
)

// SaveSettingsCommand represents a request to replace a store's delivery
// configuration with a new snapshot.
//
// Example:
//
//	snapshot, err := settings.NewSettings(7, true, true, true, false, delivery.Confirmed)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewSaveSettingsCommand("my-shop", snapshot)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to save settings: %w", err)
//	}
type SaveSettingsCommand struct { //nolint:recvcheck //using for validation
	shop     string
	snapshot settings.Settings

	guard guard.ConstructorGuard
}

// NewSaveSettingsCommand creates a command to persist a store's settings.
// The shop must be non-empty and the snapshot must be a constructed,
// validated settings value.
func NewSaveSettingsCommand(shop string, snapshot settings.Settings) (SaveSettingsCommand, error) {
	command := SaveSettingsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShop(shop),
		command.setSnapshot(snapshot),
	); err != nil {
		return SaveSettingsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveSettingsCommand) Validate() error {
	return c.guard.Validate(ErrSaveSettingsCommandIsNotConstructed)
}

// Shop returns the store the settings belong to.
func (c SaveSettingsCommand) Shop() string {
	return c.shop
}

// Snapshot returns the settings snapshot to persist.
func (c SaveSettingsCommand) Snapshot() settings.Settings {
	return c.snapshot
}

func (c *SaveSettingsCommand) setShop(shop string) error {
	if shop == "" {
		return ErrShopIsRequired
	}

	c.shop = shop
	return nil
}

func (c *SaveSettingsCommand) setSnapshot(snapshot settings.Settings) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	c.snapshot = snapshot
	return nil
}
