package queries

import (
	"errors"

	"deliverytrack/internal/pkg/guard"
)

var (
	ErrGetSettingsQueryIsNotConstructed = errors.New(
		"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
	)
)

// GetSettingsQuery requests a store's delivery configuration.
type GetSettingsQuery struct {
	shop string

	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a settings query for a shop.
func NewGetSettingsQuery(shop string) (GetSettingsQuery, error) {
	if shop == "" {
		return GetSettingsQuery{}, ErrShopIsRequired
	}

	return GetSettingsQuery{shop: shop, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// Shop returns the store the settings belong to.
func (q GetSettingsQuery) Shop() string {
	return q.shop
}

// GetSettingsQueryResponse is a store's complete delivery configuration with
// every missing field already replaced by its documented default.
type GetSettingsQueryResponse struct {
	ExpectedDeliveryWindowDays     int
	NotificationsEnabled           bool
	NotifyOnInTransit              bool
	NotifyOnOutForDelivery         bool
	NotifyOnDelivered              bool
	DefaultStatusForNewFulfillment string
}
