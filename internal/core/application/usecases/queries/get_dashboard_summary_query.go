// Package queries contains read-side operations of the CQRS architecture.
// Query handlers assemble read views either from the upstream order feed or
// straight from the database, without going through the write-side aggregates.
package queries

import (
	"errors"

	"deliverytrack/internal/pkg/guard"
)

var (
	ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
		"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
	)
	ErrShopIsRequired = errors.New("shop is required")
	ErrFirstIsInvalid = errors.New("first must be greater than 0")
)

// defaultPageSize matches the feed's page limit used by the dashboard.
const defaultPageSize = 50

// GetDashboardSummaryQuery requests the dashboard view for a store: bucket
// counts, the attention list and the number of SLA-delayed orders.
//
// Example:
//
//	query, err := NewGetDashboardSummaryQuery("my-shop", 0)
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, query)
type GetDashboardSummaryQuery struct {
	shop  string
	first int

	guard guard.ConstructorGuard
}

// NewGetDashboardSummaryQuery creates a dashboard query for a shop.
// first bounds the order batch; zero selects the default page size.
func NewGetDashboardSummaryQuery(shop string, first int) (GetDashboardSummaryQuery, error) {
	if shop == "" {
		return GetDashboardSummaryQuery{}, ErrShopIsRequired
	}
	if first < 0 {
		return GetDashboardSummaryQuery{}, ErrFirstIsInvalid
	}
	if first == 0 {
		first = defaultPageSize
	}

	return GetDashboardSummaryQuery{
		shop:  shop,
		first: first,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// Shop returns the store the dashboard belongs to.
func (q GetDashboardSummaryQuery) Shop() string {
	return q.shop
}

// First returns the order batch size to fetch from the feed.
func (q GetDashboardSummaryQuery) First() int {
	return q.first
}
