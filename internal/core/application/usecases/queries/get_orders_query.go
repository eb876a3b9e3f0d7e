package queries

import (
	"errors"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery requests the fulfillment dashboard rows: one row per order
// with its first fulfillment and derived current status.
type GetOrdersQuery struct {
	first int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an orders listing query.
// first bounds the order batch; zero selects the default page size.
func NewGetOrdersQuery(first int) (GetOrdersQuery, error) {
	if first < 0 {
		return GetOrdersQuery{}, ErrFirstIsInvalid
	}
	if first == 0 {
		first = defaultPageSize
	}

	return GetOrdersQuery{first: first, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// First returns the order batch size to fetch from the feed.
func (q GetOrdersQuery) First() int {
	return q.first
}

// GetOrdersQueryResponse is one row of the fulfillment dashboard.
type GetOrdersQueryResponse struct {
	// OrderID is the opaque platform identifier of the order.
	OrderID string

	// Name is the human-facing order name.
	Name string

	// DisplayStatus is the platform-reported fulfillment display status.
	DisplayStatus string

	// FulfillmentID is the first fulfillment's identifier, empty when the
	// order has no fulfillment and therefore no delivery action to offer.
	FulfillmentID string

	// CurrentStatus is the status derived from the first fulfillment's
	// timeline head; HasStatus is false when there is none.
	CurrentStatus delivery.Status
	HasStatus     bool
}

// currentStatusOf derives an order's current status from its first
// fulfillment's timeline head.
func currentStatusOf(o *order.Order) (delivery.Status, bool) {
	fulfillment, ok := o.FirstFulfillment()
	if !ok {
		return delivery.Unknown, false
	}
	return fulfillment.CurrentStatus()
}
