package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring delivery tracking health and performance
var (
	TransitionsAcceptedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_transitions_accepted_total",
			Help: "Total number of accepted delivery status transitions",
		},
	)

	TransitionsRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_transitions_rejected_total",
			Help: "Total number of rejected delivery status transitions by reason",
		},
		[]string{"reason"},
	)

	NotificationsDispatchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_notifications_dispatched_total",
			Help: "Total number of status change notifications dispatched",
		},
	)

	DashboardRefreshesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_dashboard_refreshes_total",
			Help: "Total number of dashboard summary refreshes",
		},
	)

	DashboardRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_dashboard_refresh_duration_seconds",
			Help:    "Duration of dashboard summary refreshes",
			Buckets: prometheus.DefBuckets,
		},
	)

	DelayedOrders = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_delayed_orders",
			Help: "Number of orders currently past their expected delivery window",
		},
	)
)

// Register registers all Prometheus metrics with the default registry.
func Register() {
	prometheus.MustRegister(
		TransitionsAcceptedTotal,
		TransitionsRejectedTotal,
		NotificationsDispatchedTotal,
		DashboardRefreshesTotal,
		DashboardRefreshDuration,
		DelayedOrders,
	)
}
