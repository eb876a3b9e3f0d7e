package http

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// AttentionOrder is one dashboard entry needing operator review.
type AttentionOrder struct {
	OrderID       string `json:"orderId"`
	Name          string `json:"name"`
	DisplayStatus string `json:"displayStatus"`
	EventStatus   string `json:"eventStatus"`
}

// DashboardSummary is the dashboard read view.
type DashboardSummary struct {
	TodayCount          int              `json:"todayCount"`
	InTransitCount      int              `json:"inTransitCount"`
	OutForDeliveryCount int              `json:"outForDeliveryCount"`
	DeliveredCount      int              `json:"deliveredCount"`
	DelayedCount        int              `json:"delayedCount"`
	AttentionOrders     []AttentionOrder `json:"attentionOrders"`
}

// OrderRow is one row of the fulfillment listing.
type OrderRow struct {
	OrderID       string `json:"orderId"`
	Name          string `json:"name"`
	DisplayStatus string `json:"displayStatus"`
	FulfillmentID string `json:"fulfillmentId,omitempty"`
	CurrentStatus string `json:"currentStatus,omitempty"`
}

// UpdateStatusRequest asks to move a fulfillment to a new delivery status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse reports an accepted status change.
type UpdateStatusResponse struct {
	Status   string `json:"status"`
	Notified bool   `json:"notified"`
}

// Settings is the store's delivery configuration as exposed over the API.
type Settings struct {
	ExpectedDeliveryWindowDays int    `json:"expectedDeliveryWindowDays"`
	NotificationsEnabled       bool   `json:"notificationsEnabled"`
	NotifyOnInTransit          bool   `json:"notifyOnInTransit"`
	NotifyOnOutForDelivery     bool   `json:"notifyOnOutForDelivery"`
	NotifyOnDelivered          bool   `json:"notifyOnDelivered"`
	DefaultStatus              string `json:"defaultStatus"`
}
