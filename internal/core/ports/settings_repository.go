package ports

import (
	"context"

	"deliverytrack/internal/core/domain/model/settings"
)

// SettingsRepository is the per-store key-value configuration provider.
//
// Get must never fail on a missing or partially populated record: the
// documented default is substituted field by field, so callers always receive
// a complete snapshot.
type SettingsRepository interface {
	// Get retrieves the settings snapshot for a shop, with defaults
	// substituted for any missing field.
	Get(ctx context.Context, shop string) (settings.Settings, error)

	// Save persists the full settings snapshot for a shop, replacing any
	// previous record.
	Save(ctx context.Context, shop string, snapshot settings.Settings) error
}
