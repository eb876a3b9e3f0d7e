package queries

import (
	"context"
	"database/sql"
	"errors"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/settings"

	"gorm.io/gorm"
)

// GetSettingsQueryHandler reads a store's delivery configuration straight
// from the database.
//
// A missing row and missing columns are normal: the documented default is
// substituted field by field, so the response is always fully populated.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings queries.
// Requires a GORM database connection for query execution.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle executes the settings lookup for the shop.
func (h GetSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetSettingsQuery,
) (GetSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	defaults := settings.Default()
	response := GetSettingsQueryResponse{
		ExpectedDeliveryWindowDays:     defaults.ExpectedDeliveryWindowDays(),
		NotificationsEnabled:           defaults.NotificationsEnabled(),
		NotifyOnInTransit:              defaults.NotifyOnInTransit(),
		NotifyOnOutForDelivery:         defaults.NotifyOnOutForDelivery(),
		NotifyOnDelivered:              defaults.NotifyOnDelivered(),
		DefaultStatusForNewFulfillment: defaults.DefaultStatusForNewFulfillment().String(),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			expected_delivery_window_days,
			notifications_enabled,
			notify_on_in_transit,
			notify_on_out_for_delivery,
			notify_on_delivered,
			default_status
		FROM store_settings
		WHERE shop = ?
	`, query.Shop()).Row()

	var (
		windowDays          sql.NullInt64
		enabled             sql.NullBool
		onInTransit         sql.NullBool
		onOutForDelivery    sql.NullBool
		onDelivered         sql.NullBool
		defaultStatusColumn sql.NullString
	)

	err := row.Scan(&windowDays, &enabled, &onInTransit, &onOutForDelivery, &onDelivered, &defaultStatusColumn)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetSettingsQueryResponse{}, err
	}

	// A stored value that fails its own validation counts as missing.
	if windowDays.Valid && windowDays.Int64 > 0 {
		response.ExpectedDeliveryWindowDays = int(windowDays.Int64)
	}
	if enabled.Valid {
		response.NotificationsEnabled = enabled.Bool
	}
	if onInTransit.Valid {
		response.NotifyOnInTransit = onInTransit.Bool
	}
	if onOutForDelivery.Valid {
		response.NotifyOnOutForDelivery = onOutForDelivery.Bool
	}
	if onDelivered.Valid {
		response.NotifyOnDelivered = onDelivered.Bool
	}
	if defaultStatusColumn.Valid {
		if status, parseErr := delivery.StatusFromString(defaultStatusColumn.String); parseErr == nil {
			response.DefaultStatusForNewFulfillment = status.String()
		}
	}

	return response, nil
}
