// Package settingsrepo provides data transfer objects and mapping functions for
// store settings persistence. It implements the per-store key-value
// configuration provider over a relational table, one row per shop, with
// nullable columns so that a missing field can be told apart from a
// configured one and replaced by its documented default on read.
package settingsrepo

import (
	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/settings"
)

// SettingsDTO represents the database row for a store's delivery settings.
// All value columns are nullable: NULL means "not configured", and the
// documented default applies.
type SettingsDTO struct {
	Shop                       string  `gorm:"primaryKey"`
	ExpectedDeliveryWindowDays *int    `gorm:"column:expected_delivery_window_days"`
	NotificationsEnabled       *bool   `gorm:"column:notifications_enabled"`
	NotifyOnInTransit          *bool   `gorm:"column:notify_on_in_transit"`
	NotifyOnOutForDelivery     *bool   `gorm:"column:notify_on_out_for_delivery"`
	NotifyOnDelivered          *bool   `gorm:"column:notify_on_delivered"`
	DefaultStatus              *string `gorm:"column:default_status"`
}

// TableName specifies the database table name for settings rows.
func (SettingsDTO) TableName() string {
	return "store_settings"
}

// fromDomain converts a settings snapshot to its database representation.
// A snapshot is always fully populated, so every column is written.
func fromDomain(shop string, snapshot settings.Settings) SettingsDTO {
	windowDays := snapshot.ExpectedDeliveryWindowDays()
	enabled := snapshot.NotificationsEnabled()
	onInTransit := snapshot.NotifyOnInTransit()
	onOutForDelivery := snapshot.NotifyOnOutForDelivery()
	onDelivered := snapshot.NotifyOnDelivered()
	defaultStatus := snapshot.DefaultStatusForNewFulfillment().String()

	return SettingsDTO{
		Shop:                       shop,
		ExpectedDeliveryWindowDays: &windowDays,
		NotificationsEnabled:       &enabled,
		NotifyOnInTransit:          &onInTransit,
		NotifyOnOutForDelivery:     &onOutForDelivery,
		NotifyOnDelivered:          &onDelivered,
		DefaultStatus:              &defaultStatus,
	}
}

// toDomain converts a database row to a settings snapshot, substituting the
// documented default for every missing or invalid field. A stored value that
// fails its own validation counts as missing.
func toDomain(dto SettingsDTO) settings.Settings {
	defaults := settings.Default()

	windowDays := defaults.ExpectedDeliveryWindowDays()
	if dto.ExpectedDeliveryWindowDays != nil && *dto.ExpectedDeliveryWindowDays > 0 {
		windowDays = *dto.ExpectedDeliveryWindowDays
	}

	enabled := defaults.NotificationsEnabled()
	if dto.NotificationsEnabled != nil {
		enabled = *dto.NotificationsEnabled
	}

	onInTransit := defaults.NotifyOnInTransit()
	if dto.NotifyOnInTransit != nil {
		onInTransit = *dto.NotifyOnInTransit
	}

	onOutForDelivery := defaults.NotifyOnOutForDelivery()
	if dto.NotifyOnOutForDelivery != nil {
		onOutForDelivery = *dto.NotifyOnOutForDelivery
	}

	onDelivered := defaults.NotifyOnDelivered()
	if dto.NotifyOnDelivered != nil {
		onDelivered = *dto.NotifyOnDelivered
	}

	defaultStatus := defaults.DefaultStatusForNewFulfillment()
	if dto.DefaultStatus != nil {
		if status, err := delivery.StatusFromString(*dto.DefaultStatus); err == nil {
			defaultStatus = status
		}
	}

	snapshot, err := settings.NewSettings(
		windowDays, enabled, onInTransit, onOutForDelivery, onDelivered, defaultStatus,
	)
	if err != nil {
		// Unreachable: every field above is either validated or a default.
		return defaults
	}
	return snapshot
}
