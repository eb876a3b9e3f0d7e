package queries

import (
	"context"

	"deliverytrack/internal/core/ports"
)

// GetOrdersQueryHandler lists the most recent orders as fulfillment dashboard
// rows, in feed order.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(feed)
//	query, _ := NewGetOrdersQuery(0)
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, row := range rows {
//	    fmt.Printf("%s: %s\n", row.Name, row.CurrentStatus)
//	}
type GetOrdersQueryHandler struct {
	feed ports.OrderFeed
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(feed ports.OrderFeed) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{feed: feed}
}

// Handle fetches the order batch and projects each order to a dashboard row.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.feed.ListOrders(ctx, query.First())
	if err != nil {
		return nil, err
	}

	rows := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}

		row := GetOrdersQueryResponse{
			OrderID:       o.ID(),
			Name:          o.Name(),
			DisplayStatus: o.DisplayStatus(),
		}
		if fulfillment, ok := o.FirstFulfillment(); ok {
			row.FulfillmentID = fulfillment.ID()
			row.CurrentStatus, row.HasStatus = fulfillment.CurrentStatus()
		}
		rows = append(rows, row)
	}

	return rows, nil
}
