package queries

import (
	"context"
	"time"

	"deliverytrack/internal/core/domain/services"
	"deliverytrack/internal/core/ports"
)

// GetDashboardSummaryQueryResponse is the dashboard read view: the
// aggregator's counts and attention list plus the SLA-delayed order count
// evaluated against the store's settings.
type GetDashboardSummaryQueryResponse struct {
	services.DashboardSummary

	// DelayedCount is the number of orders in the batch whose delivery has
	// exceeded the store's expected delivery window without completing.
	DelayedCount int
}

// GetDashboardSummaryQueryHandler assembles the dashboard view from the
// upstream order feed.
//
// The handler fetches one order batch, runs the aggregation pass, and
// consults the policy engine per order for the delayed count. All derivation
// is pure; the only I/O is the feed fetch and the settings read.
//
// Example:
//
//	handler := NewGetDashboardSummaryQueryHandler(feed, settingsRepo)
//	query, _ := NewGetDashboardSummaryQuery("my-shop", 0)
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("dashboard refresh failed: %w", err)
//	}
//	fmt.Printf("%d in transit, %d need attention\n",
//	    summary.InTransitCount, len(summary.AttentionOrders))
type GetDashboardSummaryQueryHandler struct {
	feed         ports.OrderFeed
	settingsRepo ports.SettingsRepository
	aggregator   services.DashboardAggregator
	policy       services.PolicyEngine

	// now is the clock used for the today and delay tests; overridable in tests.
	now func() time.Time
}

// NewGetDashboardSummaryQueryHandler creates a handler for dashboard queries.
func NewGetDashboardSummaryQueryHandler(
	feed ports.OrderFeed,
	settingsRepo ports.SettingsRepository,
) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{
		feed:         feed,
		settingsRepo: settingsRepo,
		aggregator:   services.NewDashboardAggregator(),
		policy:       services.NewPolicyEngine(),
		now:          time.Now,
	}
}

// WithClock returns a copy of the handler using the given clock.
func (h GetDashboardSummaryQueryHandler) WithClock(now func() time.Time) GetDashboardSummaryQueryHandler {
	h.now = now
	return h
}

// Handle fetches the order batch and derives the dashboard view.
func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	orders, err := h.feed.ListOrders(ctx, query.First())
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	snapshot, err := h.settingsRepo.Get(ctx, query.Shop())
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	now := h.now()
	response := GetDashboardSummaryQueryResponse{
		DashboardSummary: h.aggregator.Aggregate(orders, now),
	}

	for _, o := range orders {
		if o == nil {
			continue
		}
		status, hasStatus := currentStatusOf(o)
		if h.policy.IsDelayed(o.ProcessedAt(), status, hasStatus, snapshot, now) {
			response.DelayedCount++
		}
	}

	return response, nil
}
