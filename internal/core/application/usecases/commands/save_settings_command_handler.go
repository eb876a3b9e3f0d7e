package commands

import (
	"context"
)

// SaveSettingsCommandHandler persists a store's delivery configuration.
// Uses a transaction so the settings row is replaced atomically or rolled
// back on error.
//
// Example:
//
//	handler := NewSaveSettingsCommandHandler(uowFactory)
//	cmd, _ := NewSaveSettingsCommand("my-shop", snapshot)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("settings save failed: %w", err)
//	}
type SaveSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewSaveSettingsCommandHandler creates a handler for settings persistence.
// Requires a SettingsUoWFactory for transactional writes.
func NewSaveSettingsCommandHandler(uowFactory SettingsUoWFactory) SaveSettingsCommandHandler {
	return SaveSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settings save command.
func (h SaveSettingsCommandHandler) Handle(ctx context.Context, command SaveSettingsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().Save(ctx, command.Shop(), command.Snapshot()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
