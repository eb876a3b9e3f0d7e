package services

import (
	"deliverytrack/internal/core/domain/model/delivery"
)

// Bucket is a dashboard classification of an order's current delivery status.
// Statuses that do not map onto one of the three tracked buckets fall into
// BucketOther, which contributes to no counter.
type Bucket int

const (
	// BucketOther collects statuses the dashboard does not count:
	// Confirmed, AttemptedDelivery, Failure, and the absence of any status.
	BucketOther Bucket = iota

	// BucketInTransit counts orders whose shipment is moving through the network.
	BucketInTransit

	// BucketOutForDelivery counts orders on a vehicle for final delivery.
	BucketOutForDelivery

	// BucketDelivered counts orders that reached the customer.
	BucketDelivered
)

// String returns a human-readable bucket name.
func (b Bucket) String() string {
	switch b {
	case BucketInTransit:
		return "in_transit"
	case BucketOutForDelivery:
		return "out_for_delivery"
	case BucketDelivered:
		return "delivered"
	default:
		return "other"
	}
}

// StatusClassifier maps a fulfillment's current status into a dashboard
// bucket and an attention flag.
//
// The classification table below is the single source of truth for "needs
// attention". Any change to attention semantics must change this table only,
// never a call site.
//
//	InTransit          -> (BucketInTransit,      attention)
//	OutForDelivery     -> (BucketOutForDelivery, attention)
//	Delivered          -> (BucketDelivered,      no attention)
//	AttemptedDelivery  -> (BucketOther,          attention)
//	Confirmed          -> (BucketOther,          no attention)
//	Failure            -> (BucketOther,          no attention)
//	absent (hasStatus=false) -> (BucketOther,    no attention)
//
// Classify is pure and total over its input domain.
type StatusClassifier struct{}

// NewStatusClassifier creates a new StatusClassifier instance.
func NewStatusClassifier() StatusClassifier {
	return StatusClassifier{}
}

// Classify returns the dashboard bucket and attention flag for a current
// status. hasStatus is false when the fulfillment's timeline is empty; an
// absent status is distinct from every member of the closed set and always
// classifies as (BucketOther, false).
func (StatusClassifier) Classify(status delivery.Status, hasStatus bool) (Bucket, bool) {
	if !hasStatus {
		return BucketOther, false
	}

	switch status {
	case delivery.InTransit:
		return BucketInTransit, true
	case delivery.OutForDelivery:
		return BucketOutForDelivery, true
	case delivery.Delivered:
		return BucketDelivered, false
	case delivery.AttemptedDelivery:
		return BucketOther, true
	default:
		return BucketOther, false
	}
}
