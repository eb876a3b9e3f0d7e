package services

import (
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/settings"
)

// PolicyEngine evaluates a store's configured business rules against derived
// delivery state: SLA delay detection and notification eligibility.
//
// Both evaluations are pure and side-effect free. They receive an immutable
// settings snapshot per call; the actual notification dispatch and any delay
// badge rendering are external consumers of the returned booleans.
type PolicyEngine struct{}

// NewPolicyEngine creates a new PolicyEngine instance.
func NewPolicyEngine() PolicyEngine {
	return PolicyEngine{}
}

// IsDelayed reports whether an order has exceeded the store's expected
// delivery window without being delivered.
//
// The comparison uses calendar-day truncation (date-only granularity, UTC),
// consistent with the aggregator's today test: a delivery completed exactly on
// day N+window is not flagged. hasStatus is false when the order's fulfillment
// has no events; such orders can still be delayed since they are not
// delivered.
func (PolicyEngine) IsDelayed(
	processedAt time.Time,
	status delivery.Status,
	hasStatus bool,
	snapshot settings.Settings,
	now time.Time,
) bool {
	if hasStatus && status == delivery.Delivered {
		return false
	}

	processedDay := truncateToDay(processedAt)
	nowDay := truncateToDay(now)
	elapsedDays := int(nowDay.Sub(processedDay).Hours() / 24)

	return elapsedDays > snapshot.ExpectedDeliveryWindowDays()
}

// ShouldNotify reports whether a status change qualifies for a notification
// dispatch under the store's settings.
//
// Returns false when the master switch is off. Otherwise the per-status
// toggle decides for InTransit, OutForDelivery and Delivered. Every other
// status returns false: no toggle exists for Confirmed, AttemptedDelivery or
// Failure in this policy version.
func (PolicyEngine) ShouldNotify(newStatus delivery.Status, snapshot settings.Settings) bool {
	if !snapshot.NotificationsEnabled() {
		return false
	}

	switch newStatus {
	case delivery.InTransit:
		return snapshot.NotifyOnInTransit()
	case delivery.OutForDelivery:
		return snapshot.NotifyOnOutForDelivery()
	case delivery.Delivered:
		return snapshot.NotifyOnDelivered()
	default:
		return false
	}
}

// truncateToDay drops the time-of-day component in UTC.
func truncateToDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
