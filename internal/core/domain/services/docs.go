// Package services provides the stateless domain services that derive
// dashboard state and transition decisions from order and fulfillment data.
//
// The package includes:
//   - StatusClassifier: maps a current status to a dashboard bucket and attention flag
//   - DashboardAggregator: reduces an order batch to counts and the attention list
//   - TransitionValidator: decides legality of operator-requested status changes
//   - PolicyEngine: evaluates SLA delay and notification eligibility settings
//
// All services are pure functions over immutable snapshots: no I/O, no shared
// mutable state, safe for concurrent use across distinct requests.
package services
