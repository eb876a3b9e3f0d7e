package delivery

// Timeline is the ordered history of delivery events for one fulfillment,
// newest first. That ordering is the feed's contract: the adapter that builds
// a Timeline must request events in reverse chronological order, and the
// Timeline only ever looks at the head. It never re-sorts and never scans the
// tail, so every query is O(1) regardless of how long the history grows.
//
// An empty Timeline is a normal state, not a fault: a fulfillment that has not
// produced any delivery event yet simply has no current status.
type Timeline struct {
	events []Event
}

// NewTimeline creates a timeline from events ordered newest first.
// The events slice is copied so later mutation of the argument cannot
// change the timeline.
func NewTimeline(events []Event) Timeline {
	copied := make([]Event, len(events))
	copy(copied, events)
	return Timeline{events: copied}
}

// CurrentStatus returns the status of the most recent event.
// The second return value is false when the timeline has no events;
// in that case the status is Unknown and must not be treated as a member
// of the closed status set.
func (t Timeline) CurrentStatus() (Status, bool) {
	if len(t.events) == 0 {
		return Unknown, false
	}
	return t.events[0].Status(), true
}

// HasAttemptedDelivery reports whether the most recent event records a
// delivery attempt that did not succeed.
func (t Timeline) HasAttemptedDelivery() bool {
	status, ok := t.CurrentStatus()
	return ok && status == AttemptedDelivery
}

// HasFailed reports whether the most recent event records a permanent
// delivery failure.
func (t Timeline) HasFailed() bool {
	status, ok := t.CurrentStatus()
	return ok && status == Failure
}

// IsEmpty reports whether the timeline has no events.
func (t Timeline) IsEmpty() bool {
	return len(t.events) == 0
}

// Len returns the number of events in the timeline.
func (t Timeline) Len() int {
	return len(t.events)
}
