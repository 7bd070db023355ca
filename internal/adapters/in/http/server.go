// Package http exposes the back-office REST surface over echo. Handlers
// bind and translate JSON bodies into commands and queries; every business
// decision stays behind the use-case layer.
package http

import (
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/rider"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	advanceOrderStatusHandler   commands.AdvanceOrderStatusCommandHandler
	assignRiderHandler          commands.AssignRiderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler
	settlePaymentHandler        commands.SettlePaymentCommandHandler
	refundPaymentHandler        commands.RefundPaymentCommandHandler
	createRiderHandler          commands.CreateRiderCommandHandler
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler

	// Query handlers
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getAllRidersHandler         queries.GetAllRidersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	settlePaymentHandler commands.SettlePaymentCommandHandler,
	refundPaymentHandler commands.RefundPaymentCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllRidersHandler queries.GetAllRidersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		advanceOrderStatusHandler:   advanceOrderStatusHandler,
		assignRiderHandler:          assignRiderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		recordPaymentHandler:        recordPaymentHandler,
		settlePaymentHandler:        settlePaymentHandler,
		refundPaymentHandler:        refundPaymentHandler,
		createRiderHandler:          createRiderHandler,
		setRiderAvailabilityHandler: setRiderAvailabilityHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getAllRidersHandler:         getAllRidersHandler,
	}
}

// RegisterRoutes mounts all routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id/status", s.AdvanceOrderStatus)
	v1.PUT("/orders/:id/assign-rider", s.AssignRider)
	v1.PUT("/orders/:id/cancel", s.CancelOrder)

	v1.POST("/payments", s.RecordPayment)
	v1.POST("/payments/cash", s.RecordCashPayment)
	v1.PATCH("/payments/:id/status", s.SettlePayment)
	v1.POST("/payments/:id/refund", s.RefundPayment)

	v1.POST("/riders", s.CreateRider)
	v1.GET("/riders", s.GetRiders)
	v1.PUT("/riders/:id/availability", s.SetRiderAvailability)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return respondData(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	branchID, err := kernel.UUIDFromString(req.BranchID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.PlaceOrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		menuID, lineErr := kernel.UUIDFromString(line.MenuID)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}

		item, lineErr := commands.NewPlaceOrderItem(menuID, line.Size, line.Quantity)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, branchID,
		req.CustomerName, req.CustomerPhone, req.CustomerEmail, req.CustomerAddress,
		orderType, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, PlaceOrderResponse{
		OrderID: orderID.String(),
	})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			OrderID:        o.ID.String(),
			Number:         o.Number,
			OrderType:      o.OrderType,
			Status:         o.Status,
			PaymentSummary: o.PaymentSummary,
			Total:          o.Total.String(),
			RiderID:        uuidString(o.RiderID),
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderItemResponse, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItemResponse{
			MenuID:    item.MenuID.String(),
			Name:      item.Name,
			Size:      item.Size,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.String(),
		}
	}

	payments := make([]OrderPaymentResponse, len(detail.Payments))
	for i, attempt := range detail.Payments {
		payments[i] = OrderPaymentResponse{
			PaymentID:      attempt.ID.String(),
			Method:         attempt.Method,
			Status:         attempt.Status,
			Amount:         attempt.Amount.String(),
			TransactionID:  attempt.TransactionID,
			RefundedAmount: attempt.RefundedAmount.String(),
		}
	}

	return respondData(ctx, http.StatusOK, OrderDetailResponse{
		OrderID:         detail.ID.String(),
		Number:          detail.Number,
		BranchID:        detail.BranchID.String(),
		CustomerName:    detail.CustomerName,
		CustomerPhone:   detail.CustomerPhone,
		CustomerEmail:   detail.CustomerEmail,
		CustomerAddress: detail.CustomerAddress,
		OrderType:       detail.OrderType,
		Status:          detail.Status,
		PaymentSummary:  detail.PaymentSummary,
		Subtotal:        detail.Subtotal.String(),
		Tax:             detail.Tax.String(),
		DeliveryFee:     detail.DeliveryFee.String(),
		Discount:        detail.Discount.String(),
		Total:           detail.Total.String(),
		RiderID:         uuidString(detail.RiderID),
		Items:           items,
		Payments:        payments,
	})
}

// AdvanceOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AdvanceOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, nil)
}

// AssignRider handles PUT /api/v1/orders/:id/assign-rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, nil)
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, nil)
}

// RecordPayment handles POST /api/v1/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	return s.recordPayment(ctx, req)
}

// RecordCashPayment handles POST /api/v1/payments/cash, the counter shortcut
// that skips the method field.
func (s *Server) RecordCashPayment(ctx echo.Context) error {
	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	req.Method = payment.Cash.String()
	return s.recordPayment(ctx, req)
}

func (s *Server) recordPayment(ctx echo.Context, req RecordPaymentRequest) error {
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(paymentID, orderID, method, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, RecordPaymentResponse{
		PaymentID: paymentID.String(),
	})
}

// SettlePayment handles PATCH /api/v1/payments/:id/status.
func (s *Server) SettlePayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SettlePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	outcome, err := payment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSettlePaymentCommand(paymentID, outcome, req.TransactionID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.settlePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, nil)
}

// RefundPayment handles POST /api/v1/payments/:id/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req RefundPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRefundPaymentCommand(paymentID, amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, nil)
}

// CreateRider handles POST /api/v1/riders.
func (s *Server) CreateRider(ctx echo.Context) error {
	var req CreateRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	vehicle, err := rider.VehicleFromString(req.Vehicle)
	if err != nil {
		return respondError(ctx, err)
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewCreateRiderCommand(riderID, req.Name, vehicle)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, CreateRiderResponse{
		RiderID: riderID.String(),
	})
}

// GetRiders handles GET /api/v1/riders.
func (s *Server) GetRiders(ctx echo.Context) error {
	query := queries.NewGetAllRidersQuery()

	riders, err := s.getAllRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]RiderResponse, len(riders))
	for i, r := range riders {
		response[i] = RiderResponse{
			RiderID:       r.ID.String(),
			Name:          r.Name,
			Vehicle:       r.Vehicle,
			Availability:  r.Availability,
			ActiveOrderID: uuidString(r.ActiveOrderID),
		}
	}

	return respondData(ctx, http.StatusOK, response)
}

// SetRiderAvailability handles PUT /api/v1/riders/:id/availability.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetRiderAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errInvalidBody(err))
	}

	availability, err := rider.AvailabilityFromString(req.Availability)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(riderID, availability)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setRiderAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, nil)
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
