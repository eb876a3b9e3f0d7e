// Package delivery defines the delivery lifecycle vocabulary shared across the
// system: the closed status set, the append-only delivery event, and the
// newest-first event timeline of a fulfillment.
//
// Everything here is an immutable value object. The timeline's only
// performance contract is O(1) head access; see Timeline.
package delivery
