package services

import (
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/order"
)

// MaxAttentionOrders bounds the attention list produced by an aggregation
// pass. The list keeps the feed's original relative order and is truncated
// after the full pass.
const MaxAttentionOrders = 10

// AttentionEntry is a transient projection of an order that needs operator
// review. It is recomputed on every aggregation pass and never persisted.
type AttentionEntry struct {
	// OrderID is the opaque platform identifier of the order.
	OrderID string

	// Name is the human-facing order name.
	Name string

	// DisplayStatus is the platform-reported fulfillment display status.
	DisplayStatus string

	// EventStatus is the current status derived from the first fulfillment's
	// timeline head.
	EventStatus delivery.Status
}

// DashboardSummary holds the per-bucket counts and the bounded attention list
// for one aggregation pass over an order batch.
type DashboardSummary struct {
	// TodayCount is the number of orders processed on the reference date,
	// independent of their delivery status.
	TodayCount int

	// InTransitCount, OutForDeliveryCount and DeliveredCount are the three
	// tracked status buckets. Statuses in the other bucket count toward none.
	InTransitCount      int
	OutForDeliveryCount int
	DeliveredCount      int

	// AttentionOrders lists up to MaxAttentionOrders orders needing operator
	// review, in the feed's original order.
	AttentionOrders []AttentionEntry
}

// DashboardAggregator reduces a batch of orders into dashboard counts and the
// attention list.
//
// The pass is O(n) in order count and O(1) per order: only the first
// fulfillment's timeline head is read. The feed may return up to the
// platform's page limit, and a dashboard refresh must never pay for full
// timeline scans.
type DashboardAggregator struct {
	classifier StatusClassifier
}

// NewDashboardAggregator creates a new DashboardAggregator instance.
func NewDashboardAggregator() DashboardAggregator {
	return DashboardAggregator{classifier: NewStatusClassifier()}
}

// Aggregate runs a single pass over orders in feed order.
//
// For each order: the today counter is incremented when the order's processed
// date equals today's date (date-only granularity, UTC), independent of
// status; the order's first fulfillment contributes its current status to
// exactly one of the three bucket counters per the classification table; when
// the classification flags attention, an AttentionEntry is appended. After the
// pass the attention list is truncated to MaxAttentionOrders entries in
// original order.
//
// Orders without a fulfillment count toward today only, never toward a status
// bucket or the attention list. An empty batch yields all-zero counts and an
// empty attention list.
func (a DashboardAggregator) Aggregate(orders []*order.Order, today time.Time) DashboardSummary {
	summary := DashboardSummary{
		AttentionOrders: make([]AttentionEntry, 0),
	}
	todayDate := today.UTC().Format(time.DateOnly)

	for _, o := range orders {
		if o == nil {
			continue
		}

		if o.ProcessedAt().UTC().Format(time.DateOnly) == todayDate {
			summary.TodayCount++
		}

		fulfillment, ok := o.FirstFulfillment()
		if !ok {
			continue
		}

		status, hasStatus := fulfillment.CurrentStatus()
		bucket, needsAttention := a.classifier.Classify(status, hasStatus)

		switch bucket {
		case BucketInTransit:
			summary.InTransitCount++
		case BucketOutForDelivery:
			summary.OutForDeliveryCount++
		case BucketDelivered:
			summary.DeliveredCount++
		case BucketOther:
			// contributes to no counter
		}

		if needsAttention {
			summary.AttentionOrders = append(summary.AttentionOrders, AttentionEntry{
				OrderID:       o.ID(),
				Name:          o.Name(),
				DisplayStatus: o.DisplayStatus(),
				EventStatus:   status,
			})
		}
	}

	if len(summary.AttentionOrders) > MaxAttentionOrders {
		summary.AttentionOrders = summary.AttentionOrders[:MaxAttentionOrders]
	}

	return summary
}
