// Package order models the upstream feed's order and fulfillment records.
//
// Orders and fulfillments are read-only projections of feed data: the feed
// owns them, this system derives dashboard state and transition decisions
// from them. Identifiers are opaque platform strings and are never parsed.
package order
