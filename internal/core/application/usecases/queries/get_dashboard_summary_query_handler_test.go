package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/core/domain/model/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderFeed struct{ mock.Mock }

func (m *MockOrderFeed) ListOrders(ctx context.Context, first int) ([]*order.Order, error) {
	args := m.Called(ctx, first)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderFeed) GetFulfillment(ctx context.Context, fulfillmentID string) (order.Fulfillment, error) {
	args := m.Called(ctx, fulfillmentID)
	return args.Get(0).(order.Fulfillment), args.Error(1)
}

func (m *MockOrderFeed) CreateFulfillmentEvent(
	ctx context.Context,
	fulfillmentID string,
	status delivery.Status,
) error {
	args := m.Called(ctx, fulfillmentID, status)
	return args.Error(0)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context, shop string) (settings.Settings, error) {
	args := m.Called(ctx, shop)
	return args.Get(0).(settings.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, shop string, snapshot settings.Settings) error {
	args := m.Called(ctx, shop, snapshot)
	return args.Error(0)
}

const testShop = "my-shop.myshopify.com"

func orderWith(
	t *testing.T,
	id string,
	processedAt time.Time,
	statuses ...delivery.Status,
) *order.Order {
	t.Helper()

	events := make([]delivery.Event, len(statuses))
	for i, status := range statuses {
		event, err := delivery.NewEvent(status, processedAt.Add(time.Duration(len(statuses)-i)*time.Hour))
		require.NoError(t, err)
		events[i] = event
	}

	fulfillment, err := order.NewFulfillment(
		"gid://shopify/Fulfillment/"+id, "gid://shopify/Order/"+id,
		delivery.NewTimeline(events),
	)
	require.NoError(t, err)

	testOrder, err := order.NewOrder(
		"gid://shopify/Order/"+id, "#"+id, processedAt, "FULFILLED",
		[]order.Fulfillment{fulfillment},
	)
	require.NoError(t, err)
	return testOrder
}

func TestNewGetDashboardSummaryQuery(t *testing.T) {
	t.Run("should default the page size", func(t *testing.T) {
		query, err := queries.NewGetDashboardSummaryQuery(testShop, 0)

		require.NoError(t, err)
		assert.Equal(t, 50, query.First())
	})

	t.Run("should keep an explicit page size", func(t *testing.T) {
		query, err := queries.NewGetDashboardSummaryQuery(testShop, 25)

		require.NoError(t, err)
		assert.Equal(t, 25, query.First())
	})

	t.Run("should reject empty shop", func(t *testing.T) {
		_, err := queries.NewGetDashboardSummaryQuery("", 0)

		require.ErrorIs(t, err, queries.ErrShopIsRequired)
	})

	t.Run("should reject negative page size", func(t *testing.T) {
		_, err := queries.NewGetDashboardSummaryQuery(testShop, -1)

		require.ErrorIs(t, err, queries.ErrFirstIsInvalid)
	})
}

func TestGetDashboardSummaryQueryHandler_Handle(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)

	defaultSnapshot := settings.Default()

	t.Run("should aggregate counts and delayed orders", func(t *testing.T) {
		ctx := t.Context()
		orders := []*order.Order{
			orderWith(t, "1", now.Add(-2*time.Hour), delivery.InTransit),
			orderWith(t, "2", now.Add(-7*24*time.Hour), delivery.OutForDelivery),
			orderWith(t, "3", now.Add(-10*24*time.Hour), delivery.Delivered),
		}

		feed := new(MockOrderFeed)
		settingsRepo := new(MockSettingsRepository)
		feed.On("ListOrders", ctx, 50).Return(orders, nil).Once()
		settingsRepo.On("Get", ctx, testShop).Return(defaultSnapshot, nil).Once()

		handler := queries.NewGetDashboardSummaryQueryHandler(feed, settingsRepo).
			WithClock(func() time.Time { return now })

		query, err := queries.NewGetDashboardSummaryQuery(testShop, 0)
		require.NoError(t, err)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 1, response.TodayCount)
		assert.Equal(t, 1, response.InTransitCount)
		assert.Equal(t, 1, response.OutForDeliveryCount)
		assert.Equal(t, 1, response.DeliveredCount)
		// Order 2 is 7 days old and undelivered; order 3 is older but
		// delivered, so only one order counts as delayed.
		assert.Equal(t, 1, response.DelayedCount)
		assert.Len(t, response.AttentionOrders, 2)

		feed.AssertExpectations(t)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("should return empty summary for empty batch", func(t *testing.T) {
		ctx := t.Context()

		feed := new(MockOrderFeed)
		settingsRepo := new(MockSettingsRepository)
		feed.On("ListOrders", ctx, 50).Return([]*order.Order{}, nil).Once()
		settingsRepo.On("Get", ctx, testShop).Return(defaultSnapshot, nil).Once()

		handler := queries.NewGetDashboardSummaryQueryHandler(feed, settingsRepo).
			WithClock(func() time.Time { return now })

		query, err := queries.NewGetDashboardSummaryQuery(testShop, 0)
		require.NoError(t, err)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Zero(t, response.TodayCount)
		assert.Zero(t, response.DelayedCount)
		assert.Empty(t, response.AttentionOrders)
	})

	t.Run("should propagate feed failure", func(t *testing.T) {
		ctx := t.Context()

		feed := new(MockOrderFeed)
		feed.On("ListOrders", ctx, 50).Return(nil, errors.New("feed unreachable")).Once()

		handler := queries.NewGetDashboardSummaryQueryHandler(feed, new(MockSettingsRepository))

		query, err := queries.NewGetDashboardSummaryQuery(testShop, 0)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.Error(t, err)
		require.EqualError(t, err, "feed unreachable")
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		handler := queries.NewGetDashboardSummaryQueryHandler(
			new(MockOrderFeed), new(MockSettingsRepository),
		)

		_, err := handler.Handle(t.Context(), queries.GetDashboardSummaryQuery{})

		require.Error(t, err)
	})
}
