// Package http exposes the delivery marketplace over a JSON API. Handlers
// translate requests into commands and queries and map application errors to
// status codes; all authorization beyond coarse role guards lives in the
// application layer.
package http

import (
	"net/http"

	"deliveryhub/internal/core/application/usecases/commands"
	"deliveryhub/internal/core/application/usecases/queries"
	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler           commands.CreateDeliveryCommandHandler
	acceptDeliveryHandler           commands.AcceptDeliveryCommandHandler
	pickUpDeliveryHandler           commands.PickUpDeliveryCommandHandler
	completeDeliveryHandler         commands.CompleteDeliveryCommandHandler
	cancelDeliveryByCourierHandler  commands.CancelDeliveryByCourierCommandHandler
	cancelDeliveryByMerchantHandler commands.CancelDeliveryByMerchantCommandHandler
	cancelDeliveryByAdminHandler    commands.CancelDeliveryByAdminCommandHandler
	reportIssueHandler              commands.ReportIssueCommandHandler

	// Query handlers
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler
	getCourierDeliveriesHandler   queries.GetCourierDeliveriesQueryHandler
	getMerchantDeliveriesHandler  queries.GetMerchantDeliveriesQueryHandler
	getDeliveryHandler            queries.GetDeliveryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	pickUpDeliveryHandler commands.PickUpDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelDeliveryByCourierHandler commands.CancelDeliveryByCourierCommandHandler,
	cancelDeliveryByMerchantHandler commands.CancelDeliveryByMerchantCommandHandler,
	cancelDeliveryByAdminHandler commands.CancelDeliveryByAdminCommandHandler,
	reportIssueHandler commands.ReportIssueCommandHandler,
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler,
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
	getMerchantDeliveriesHandler queries.GetMerchantDeliveriesQueryHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:           createDeliveryHandler,
		acceptDeliveryHandler:           acceptDeliveryHandler,
		pickUpDeliveryHandler:           pickUpDeliveryHandler,
		completeDeliveryHandler:         completeDeliveryHandler,
		cancelDeliveryByCourierHandler:  cancelDeliveryByCourierHandler,
		cancelDeliveryByMerchantHandler: cancelDeliveryByMerchantHandler,
		cancelDeliveryByAdminHandler:    cancelDeliveryByAdminHandler,
		reportIssueHandler:              reportIssueHandler,
		getAvailableDeliveriesHandler:   getAvailableDeliveriesHandler,
		getCourierDeliveriesHandler:     getCourierDeliveriesHandler,
		getMerchantDeliveriesHandler:    getMerchantDeliveriesHandler,
		getDeliveryHandler:              getDeliveryHandler,
	}
}

// RegisterRoutes wires the API surface onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", auth.Authenticate)

	api.POST("/deliveries", s.CreateDelivery, RequireRole(user.Merchant))
	api.GET("/deliveries", s.GetMerchantDeliveries, RequireRole(user.Merchant))
	api.GET("/deliveries/available", s.GetAvailableDeliveries, RequireRole(user.Courier))
	api.GET("/deliveries/active", s.GetCourierDeliveries, RequireRole(user.Courier))
	api.GET("/deliveries/:id", s.GetDelivery)

	api.POST("/deliveries/:id/accept", s.AcceptDelivery, RequireRole(user.Courier))
	api.POST("/deliveries/:id/pickup", s.PickUpDelivery, RequireRole(user.Courier))
	api.POST("/deliveries/:id/complete", s.CompleteDelivery, RequireRole(user.Courier))
	api.POST("/deliveries/:id/cancel", s.CancelDelivery, RequireRole(user.Merchant, user.Courier))
	api.POST("/deliveries/:id/issue", s.ReportIssue, RequireRole(user.Courier))

	api.POST("/admin/deliveries/:id/cancel", s.AdminCancelDelivery, RequireRole(user.Admin))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /api/v1/deliveries - a merchant posts a new
// delivery offer.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	businessID, err := kernel.UUIDFromString(req.BusinessID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid businessId")
	}

	var preferredCourierID *kernel.UUID
	if req.PreferredCourierID != nil {
		id, parseErr := kernel.UUIDFromString(*req.PreferredCourierID)
		if parseErr != nil {
			return respondBadRequest(ctx, "Invalid preferredCourierId")
		}
		preferredCourierID = &id
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(),
		currentUser(ctx).ID(),
		businessID,
		req.PickupAddress,
		req.DropoffAddress,
		req.Price,
		req.Notes,
		preferredCourierID,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryResponse(created))
}

// GetMerchantDeliveries handles GET /api/v1/deliveries - the merchant's own
// deliveries, optionally filtered by ?status=.
func (s *Server) GetMerchantDeliveries(ctx echo.Context) error {
	var statusFilter *delivery.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := delivery.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status filter")
		}
		statusFilter = &status
	}

	query, err := queries.NewGetMerchantDeliveriesQuery(currentUser(ctx).ID(), statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getMerchantDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMerchantDeliveryResponses(rows))
}

// GetAvailableDeliveries handles GET /api/v1/deliveries/available - open
// offers a courier may claim.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	query, err := queries.NewGetAvailableDeliveriesQuery(currentUser(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getAvailableDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAvailableDeliveryResponses(rows))
}

// GetCourierDeliveries handles GET /api/v1/deliveries/active - the courier's
// accepted and picked-up deliveries.
func (s *Server) GetCourierDeliveries(ctx echo.Context) error {
	query, err := queries.NewGetCourierDeliveriesQuery(currentUser(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getCourierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCourierDeliveryResponses(rows))
}

// GetDelivery handles GET /api/v1/deliveries/:id - the role-gated detail view.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	viewer := currentUser(ctx)
	query, err := queries.NewGetDeliveryQuery(deliveryID, viewer.ID(), viewer.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	row, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryDetailResponse(row))
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept - a courier
// claims an open offer.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, currentUser(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	accepted, err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(accepted))
}

// PickUpDelivery handles POST /api/v1/deliveries/:id/pickup.
func (s *Server) PickUpDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewPickUpDeliveryCommand(deliveryID, currentUser(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	pickedUp, err := s.pickUpDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(pickedUp))
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, currentUser(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	completed, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(completed))
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel - dispatched on
// the caller's role. Merchants may attach an optional reason.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	caller := currentUser(ctx)

	var canceled *delivery.Delivery
	switch caller.Role() {
	case user.Courier:
		cmd, cmdErr := commands.NewCancelDeliveryByCourierCommand(deliveryID, caller.ID())
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		canceled, err = s.cancelDeliveryByCourierHandler.Handle(ctx.Request().Context(), cmd)
	case user.Merchant:
		var req CancelDeliveryRequest
		if bindErr := ctx.Bind(&req); bindErr != nil && ctx.Request().ContentLength > 0 {
			return respondBadRequest(ctx, "Invalid request body")
		}
		cmd, cmdErr := commands.NewCancelDeliveryByMerchantCommand(deliveryID, caller.ID(), req.Reason)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}
		canceled, err = s.cancelDeliveryByMerchantHandler.Handle(ctx.Request().Context(), cmd)
	default:
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Insufficient permissions",
		})
	}

	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(canceled))
}

// ReportIssue handles POST /api/v1/deliveries/:id/issue - the assigned
// courier flags a problem with an in-transit delivery.
func (s *Server) ReportIssue(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	var req ReportIssueRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReportIssueCommand(deliveryID, currentUser(ctx).ID(), req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	flagged, err := s.reportIssueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(flagged))
}

// AdminCancelDelivery handles POST /api/v1/admin/deliveries/:id/cancel -
// operators force-cancel a delivery; in-transit deliveries are flagged for
// review instead of silently canceled.
func (s *Server) AdminCancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid delivery id")
	}

	cmd, err := commands.NewCancelDeliveryByAdminCommand(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.cancelDeliveryByAdminHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(result))
}
