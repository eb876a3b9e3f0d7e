package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/order"
	"deliverytrack/internal/core/ports"
	"deliverytrack/internal/pkg/errs"
)

// Feed implements ports.OrderFeed over the Shopify Admin GraphQL API.
type Feed struct {
	client *Client
	logger *slog.Logger
}

// NewFeed creates an order feed backed by the given Shopify client.
func NewFeed(client *Client, logger *slog.Logger) *Feed {
	return &Feed{
		client: client,
		logger: logger.With("component", "shopify_feed"),
	}
}

// ListOrders fetches the most recent orders with fulfillments and event
// timelines, newest orders first.
//
// Malformed order nodes are logged and skipped rather than failing the whole
// batch: one broken record must not take down a dashboard refresh.
func (f *Feed) ListOrders(ctx context.Context, first int) ([]*order.Order, error) {
	resp, err := f.client.execute(ctx, ordersQuery, map[string]any{"first": first})
	if err != nil {
		return nil, err
	}

	var payload ordersPayload
	if err = json.Unmarshal(resp.Data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode orders payload: %w", err)
	}

	orders := make([]*order.Order, 0, len(payload.Orders.Edges))
	for _, edge := range payload.Orders.Edges {
		o, mapErr := f.mapOrder(ctx, edge.Node)
		if mapErr != nil {
			f.logger.WarnContext(ctx, "Skipping malformed order node",
				"order_id", edge.Node.ID, "error", mapErr)
			continue
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetFulfillment fetches one fulfillment with its event timeline.
func (f *Feed) GetFulfillment(ctx context.Context, fulfillmentID string) (order.Fulfillment, error) {
	if fulfillmentID == "" {
		return order.Fulfillment{}, errs.NewValueIsRequiredError("fulfillmentId")
	}

	resp, err := f.client.execute(ctx, fulfillmentQuery, map[string]any{"id": fulfillmentID})
	if err != nil {
		return order.Fulfillment{}, err
	}

	var payload fulfillmentPayload
	if err = json.Unmarshal(resp.Data, &payload); err != nil {
		return order.Fulfillment{}, fmt.Errorf("failed to decode fulfillment payload: %w", err)
	}

	if payload.Node == nil || payload.Node.ID == "" {
		return order.Fulfillment{}, errs.NewObjectNotFoundError("fulfillmentId", fulfillmentID)
	}

	return f.mapFulfillment(ctx, *payload.Node)
}

// CreateFulfillmentEvent appends a delivery event with the given status to
// the fulfillment's timeline. Platform userErrors come back as
// *ports.FeedValidationError, untouched.
func (f *Feed) CreateFulfillmentEvent(
	ctx context.Context,
	fulfillmentID string,
	status delivery.Status,
) error {
	if fulfillmentID == "" {
		return errs.NewValueIsRequiredError("fulfillmentId")
	}
	if err := status.Validate(); err != nil {
		return err
	}

	resp, err := f.client.execute(ctx, fulfillmentEventCreateMutation, map[string]any{
		"fulfillmentEvent": map[string]any{
			"fulfillmentId": fulfillmentID,
			"status":        status.String(),
		},
	})
	if err != nil {
		return err
	}

	var payload fulfillmentEventCreatePayload
	if err = json.Unmarshal(resp.Data, &payload); err != nil {
		return fmt.Errorf("failed to decode mutation payload: %w", err)
	}

	if userErrors := payload.FulfillmentEventCreate.UserErrors; len(userErrors) > 0 {
		fieldErrors := make([]ports.FieldError, len(userErrors))
		for i, ue := range userErrors {
			fieldErrors[i] = ports.FieldError{Field: ue.Field, Message: ue.Message}
		}
		return &ports.FeedValidationError{Errors: fieldErrors}
	}

	return nil
}

// mapOrder converts an order node to the domain model.
func (f *Feed) mapOrder(ctx context.Context, node orderNode) (*order.Order, error) {
	processedAt, err := time.Parse(time.RFC3339, node.ProcessedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid processedAt %q: %w", node.ProcessedAt, err)
	}

	fulfillments := make([]order.Fulfillment, 0, len(node.Fulfillments))
	for _, fn := range node.Fulfillments {
		fn.Order = &struct {
			ID string `json:"id"`
		}{ID: node.ID}

		fulfillment, mapErr := f.mapFulfillment(ctx, fn)
		if mapErr != nil {
			f.logger.WarnContext(ctx, "Skipping malformed fulfillment node",
				"fulfillment_id", fn.ID, "error", mapErr)
			continue
		}
		fulfillments = append(fulfillments, fulfillment)
	}

	return order.NewOrder(node.ID, node.Name, processedAt, node.DisplayFulfillmentStatus, fulfillments)
}

// mapFulfillment converts a fulfillment node to the domain model, preserving
// the feed's newest-first event order.
//
// Events whose status token falls outside the closed status set are dropped
// with a log line. The platform can introduce tokens this system does not
// track; dropping them keeps the timeline within the closed set instead of
// failing the whole fulfillment.
func (f *Feed) mapFulfillment(ctx context.Context, node fulfillmentNode) (order.Fulfillment, error) {
	events := make([]delivery.Event, 0, len(node.Events.Edges))
	for _, edge := range node.Events.Edges {
		status, err := delivery.StatusFromString(edge.Node.Status)
		if err != nil {
			f.logger.DebugContext(ctx, "Dropping event with untracked status",
				"fulfillment_id", node.ID, "status", edge.Node.Status)
			continue
		}

		createdAt, err := time.Parse(time.RFC3339, edge.Node.CreatedAt)
		if err != nil {
			return order.Fulfillment{}, fmt.Errorf("invalid event createdAt %q: %w", edge.Node.CreatedAt, err)
		}

		event, err := delivery.NewEvent(status, createdAt)
		if err != nil {
			return order.Fulfillment{}, err
		}
		events = append(events, event)
	}

	orderID := ""
	if node.Order != nil {
		orderID = node.Order.ID
	}

	return order.NewFulfillment(node.ID, orderID, delivery.NewTimeline(events))
}
