package http

import (
	"errors"
	"net/http"
	"time"

	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/application/usecases/queries"
	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/settings"
	"deliverytrack/internal/core/domain/services"
	"deliverytrack/internal/core/ports"
	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// All requests are scoped to the single store the server was configured for.
type Server struct {
	shop string

	// Command handlers
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	saveSettingsHandler         commands.SaveSettingsCommandHandler

	// Query handlers
	getDashboardSummaryHandler queries.GetDashboardSummaryQueryHandler
	getOrdersHandler           queries.GetOrdersQueryHandler
	getSettingsHandler         queries.GetSettingsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	shop string,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	saveSettingsHandler commands.SaveSettingsCommandHandler,
	getDashboardSummaryHandler queries.GetDashboardSummaryQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getSettingsHandler queries.GetSettingsQueryHandler,
) *Server {
	return &Server{
		shop:                        shop,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		saveSettingsHandler:         saveSettingsHandler,
		getDashboardSummaryHandler:  getDashboardSummaryHandler,
		getOrdersHandler:            getOrdersHandler,
		getSettingsHandler:          getSettingsHandler,
	}
}

// GetDashboard handles GET /api/v1/dashboard - derives the dashboard summary.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query, err := queries.NewGetDashboardSummaryQuery(s.shop, 0)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid dashboard query: " + err.Error(),
		})
	}

	started := time.Now()
	summary, err := s.getDashboardSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to derive dashboard summary",
		})
	}
	metrics.DashboardRefreshesTotal.Inc()
	metrics.DashboardRefreshDuration.Observe(time.Since(started).Seconds())

	attention := make([]AttentionOrder, len(summary.AttentionOrders))
	for i, entry := range summary.AttentionOrders {
		attention[i] = AttentionOrder{
			OrderID:       entry.OrderID,
			Name:          entry.Name,
			DisplayStatus: entry.DisplayStatus,
			EventStatus:   entry.EventStatus.String(),
		}
	}

	return ctx.JSON(http.StatusOK, DashboardSummary{
		TodayCount:          summary.TodayCount,
		InTransitCount:      summary.InTransitCount,
		OutForDeliveryCount: summary.OutForDeliveryCount,
		DeliveredCount:      summary.DeliveredCount,
		DelayedCount:        summary.DelayedCount,
		AttentionOrders:     attention,
	})
}

// GetOrders handles GET /api/v1/orders - lists orders with their first
// fulfillment's derived status.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(0)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid orders query: " + err.Error(),
		})
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderRow, len(rows))
	for i, row := range rows {
		response[i] = OrderRow{
			OrderID:       row.OrderID,
			Name:          row.Name,
			DisplayStatus: row.DisplayStatus,
			FulfillmentID: row.FulfillmentID,
		}
		if row.HasStatus {
			response[i].CurrentStatus = row.CurrentStatus.String()
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateDeliveryStatus handles POST /api/v1/fulfillments/:id/events - records
// a new delivery status for a fulfillment.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	var request UpdateStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(s.shop, ctx.Param("id"), request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	result, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.updateDeliveryStatusError(ctx, err)
	}

	metrics.TransitionsAcceptedTotal.Inc()
	if result.Notified {
		metrics.NotificationsDispatchedTotal.Inc()
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{
		Status:   result.Status.String(),
		Notified: result.Notified,
	})
}

// updateDeliveryStatusError maps transition rejections and feed failures to
// HTTP responses. Platform field errors are surfaced verbatim.
func (s *Server) updateDeliveryStatusError(ctx echo.Context, err error) error {
	var feedErr *ports.FeedValidationError

	switch {
	case errors.Is(err, services.ErrNoFulfillment):
		metrics.TransitionsRejectedTotal.WithLabelValues("no_fulfillment").Inc()
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrUnknownStatus):
		metrics.TransitionsRejectedTotal.WithLabelValues("unknown_status").Inc()
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrAlreadyTerminal):
		metrics.TransitionsRejectedTotal.WithLabelValues("already_terminal").Inc()
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &feedErr):
		metrics.TransitionsRejectedTotal.WithLabelValues("platform").Inc()
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Status update rejected",
			Details: feedErr.Messages(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		metrics.TransitionsRejectedTotal.WithLabelValues("not_found").Inc()
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to update delivery status",
		})
	}
}

// GetSettings handles GET /api/v1/settings - reads the store's configuration
// with defaults substituted for missing fields.
func (s *Server) GetSettings(ctx echo.Context) error {
	query, err := queries.NewGetSettingsQuery(s.shop)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid settings query: " + err.Error(),
		})
	}

	snapshot, err := s.getSettingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve settings",
		})
	}

	return ctx.JSON(http.StatusOK, Settings{
		ExpectedDeliveryWindowDays: snapshot.ExpectedDeliveryWindowDays,
		NotificationsEnabled:       snapshot.NotificationsEnabled,
		NotifyOnInTransit:          snapshot.NotifyOnInTransit,
		NotifyOnOutForDelivery:     snapshot.NotifyOnOutForDelivery,
		NotifyOnDelivered:          snapshot.NotifyOnDelivered,
		DefaultStatus:              snapshot.DefaultStatusForNewFulfillment,
	})
}

// SaveSettings handles PUT /api/v1/settings - replaces the store's configuration.
func (s *Server) SaveSettings(ctx echo.Context) error {
	var request Settings
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	defaultStatus, err := delivery.StatusFromString(request.DefaultStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid default status: " + err.Error(),
		})
	}

	snapshot, err := settings.NewSettings(
		request.ExpectedDeliveryWindowDays,
		request.NotificationsEnabled,
		request.NotifyOnInTransit,
		request.NotifyOnOutForDelivery,
		request.NotifyOnDelivered,
		defaultStatus,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid settings: " + err.Error(),
		})
	}

	cmd, err := commands.NewSaveSettingsCommand(s.shop, snapshot)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid settings: " + err.Error(),
		})
	}

	if handleErr := s.saveSettingsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to save settings",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
