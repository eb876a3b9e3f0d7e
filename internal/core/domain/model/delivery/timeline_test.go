package delivery_test

import (
	"testing"
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, status delivery.Status, createdAt time.Time) delivery.Event {
	t.Helper()
	event, err := delivery.NewEvent(status, createdAt)
	require.NoError(t, err)
	return event
}

func TestNewEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create event with valid status and timestamp", func(t *testing.T) {
		event, err := delivery.NewEvent(delivery.InTransit, now)

		require.NoError(t, err)
		require.NoError(t, event.Validate())
		assert.Equal(t, delivery.InTransit, event.Status())
		assert.Equal(t, now, event.CreatedAt())
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		_, err := delivery.NewEvent(delivery.Unknown, now)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		_, err := delivery.NewEvent(delivery.Delivered, time.Time{})

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
	})

	t.Run("should reject zero-value event on Validate", func(t *testing.T) {
		var event delivery.Event

		err := event.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, delivery.ErrEventIsNotConstructed)
	})
}

func TestTimeline_CurrentStatus(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return head status for non-empty timeline", func(t *testing.T) {
		timeline := delivery.NewTimeline([]delivery.Event{
			mustEvent(t, delivery.OutForDelivery, base.Add(2*time.Hour)),
			mustEvent(t, delivery.InTransit, base.Add(time.Hour)),
			mustEvent(t, delivery.Confirmed, base),
		})

		status, ok := timeline.CurrentStatus()

		assert.True(t, ok)
		assert.Equal(t, delivery.OutForDelivery, status)
	})

	t.Run("should report absence for empty timeline", func(t *testing.T) {
		timeline := delivery.NewTimeline(nil)

		status, ok := timeline.CurrentStatus()

		assert.False(t, ok)
		assert.Equal(t, delivery.Unknown, status)
	})

	t.Run("should use the head even when it is chronologically older", func(t *testing.T) {
		// Ordering is the feed's contract; the timeline never re-sorts.
		timeline := delivery.NewTimeline([]delivery.Event{
			mustEvent(t, delivery.InTransit, base),
			mustEvent(t, delivery.Delivered, base.Add(time.Hour)),
		})

		status, ok := timeline.CurrentStatus()

		assert.True(t, ok)
		assert.Equal(t, delivery.InTransit, status)
	})
}

func TestTimeline_HeadPredicates(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should detect attempted delivery at the head only", func(t *testing.T) {
		attempted := delivery.NewTimeline([]delivery.Event{
			mustEvent(t, delivery.AttemptedDelivery, base.Add(time.Hour)),
			mustEvent(t, delivery.InTransit, base),
		})
		buried := delivery.NewTimeline([]delivery.Event{
			mustEvent(t, delivery.Delivered, base.Add(2*time.Hour)),
			mustEvent(t, delivery.AttemptedDelivery, base.Add(time.Hour)),
		})

		assert.True(t, attempted.HasAttemptedDelivery())
		assert.False(t, buried.HasAttemptedDelivery())
	})

	t.Run("should detect failure at the head only", func(t *testing.T) {
		failed := delivery.NewTimeline([]delivery.Event{
			mustEvent(t, delivery.Failure, base.Add(time.Hour)),
			mustEvent(t, delivery.InTransit, base),
		})
		recovered := delivery.NewTimeline([]delivery.Event{
			mustEvent(t, delivery.Delivered, base.Add(2*time.Hour)),
			mustEvent(t, delivery.Failure, base.Add(time.Hour)),
		})

		assert.True(t, failed.HasFailed())
		assert.False(t, recovered.HasFailed())
	})

	t.Run("should report nothing for empty timeline", func(t *testing.T) {
		timeline := delivery.NewTimeline(nil)

		assert.False(t, timeline.HasAttemptedDelivery())
		assert.False(t, timeline.HasFailed())
		assert.True(t, timeline.IsEmpty())
		assert.Equal(t, 0, timeline.Len())
	})
}

func TestNewTimeline_CopiesEvents(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []delivery.Event{
		mustEvent(t, delivery.InTransit, base.Add(time.Hour)),
		mustEvent(t, delivery.Confirmed, base),
	}

	timeline := delivery.NewTimeline(events)
	events[0] = mustEvent(t, delivery.Failure, base.Add(2*time.Hour))

	status, ok := timeline.CurrentStatus()
	assert.True(t, ok)
	assert.Equal(t, delivery.InTransit, status)
	assert.Equal(t, 2, timeline.Len())
}
