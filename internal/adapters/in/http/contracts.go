package http

// DataResponse is the envelope for successful responses.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// PlaceOrderItemRequest is one requested order line.
type PlaceOrderItemRequest struct {
	MenuID   string `json:"menuId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders. Prices are never
// accepted from the client; lines are priced from the menu catalog.
type PlaceOrderRequest struct {
	BranchID        string                  `json:"branchId"`
	CustomerName    string                  `json:"customerName"`
	CustomerPhone   string                  `json:"customerPhone"`
	CustomerEmail   string                  `json:"customerEmail"`
	CustomerAddress string                  `json:"customerAddress"`
	OrderType       string                  `json:"orderType"`
	Items           []PlaceOrderItemRequest `json:"items"`
}

// PlaceOrderResponse returns the identifiers of the freshly placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

// AdvanceOrderStatusRequest is the body of PUT /api/v1/orders/:id/status.
type AdvanceOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignRiderRequest is the body of PUT /api/v1/orders/:id/assign-rider.
type AssignRiderRequest struct {
	RiderID string `json:"riderId"`
}

// CancelOrderRequest is the body of PUT /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// RecordPaymentRequest is the body of POST /api/v1/payments.
type RecordPaymentRequest struct {
	OrderID string `json:"orderId"`
	Method  string `json:"method"`
	Amount  string `json:"amount"`
}

// RecordPaymentResponse returns the identifier of the recorded attempt.
type RecordPaymentResponse struct {
	PaymentID string `json:"paymentId"`
}

// SettlePaymentRequest is the body of PATCH /api/v1/payments/:id/status.
type SettlePaymentRequest struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

// RefundPaymentRequest is the body of POST /api/v1/payments/:id/refund.
type RefundPaymentRequest struct {
	Amount string `json:"amount"`
}

// CreateRiderRequest is the body of POST /api/v1/riders.
type CreateRiderRequest struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
}

// CreateRiderResponse returns the identifier of the new rider.
type CreateRiderResponse struct {
	RiderID string `json:"riderId"`
}

// SetRiderAvailabilityRequest is the body of PUT /api/v1/riders/:id/availability.
type SetRiderAvailabilityRequest struct {
	Availability string `json:"availability"`
}

// OrderSummaryResponse is one row of GET /api/v1/orders.
type OrderSummaryResponse struct {
	OrderID        string  `json:"orderId"`
	Number         string  `json:"number"`
	OrderType      string  `json:"orderType"`
	Status         string  `json:"status"`
	PaymentSummary string  `json:"paymentStatus"`
	Total          string  `json:"total"`
	RiderID        *string `json:"riderId,omitempty"`
}

// OrderItemResponse is one order line of GET /api/v1/orders/:id.
type OrderItemResponse struct {
	MenuID    string `json:"menuId"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// OrderPaymentResponse is one payment attempt of GET /api/v1/orders/:id.
type OrderPaymentResponse struct {
	PaymentID      string `json:"paymentId"`
	Method         string `json:"method"`
	Status         string `json:"status"`
	Amount         string `json:"amount"`
	TransactionID  string `json:"transactionId,omitempty"`
	RefundedAmount string `json:"refundedAmount"`
}

// OrderDetailResponse is the body of GET /api/v1/orders/:id.
type OrderDetailResponse struct {
	OrderID         string                 `json:"orderId"`
	Number          string                 `json:"number"`
	BranchID        string                 `json:"branchId"`
	CustomerName    string                 `json:"customerName"`
	CustomerPhone   string                 `json:"customerPhone"`
	CustomerEmail   string                 `json:"customerEmail,omitempty"`
	CustomerAddress string                 `json:"customerAddress,omitempty"`
	OrderType       string                 `json:"orderType"`
	Status          string                 `json:"status"`
	PaymentSummary  string                 `json:"paymentStatus"`
	Subtotal        string                 `json:"subtotal"`
	Tax             string                 `json:"tax"`
	DeliveryFee     string                 `json:"deliveryFee"`
	Discount        string                 `json:"discount"`
	Total           string                 `json:"total"`
	RiderID         *string                `json:"riderId,omitempty"`
	Items           []OrderItemResponse    `json:"items"`
	Payments        []OrderPaymentResponse `json:"payments"`
}

// RiderResponse is one row of GET /api/v1/riders.
type RiderResponse struct {
	RiderID       string  `json:"riderId"`
	Name          string  `json:"name"`
	Vehicle       string  `json:"vehicle"`
	Availability  string  `json:"availability"`
	ActiveOrderID *string `json:"activeOrderId,omitempty"`
}
