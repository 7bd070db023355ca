package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its lines and payment history.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound when no order exists under the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items, err = h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Payments, err = h.readPayments(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, branchID uuid.UUID
	var riderID uuid.NullUUID
	var subtotal, tax, deliveryFee, discount, total string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			branch_id,
			customer_name,
			customer_phone,
			customer_email,
			customer_address,
			order_type,
			status,
			payment_summary,
			subtotal,
			tax,
			delivery_fee,
			discount,
			total,
			rider_id
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Number,
		&branchID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.CustomerAddress,
		&resp.OrderType,
		&resp.Status,
		&resp.PaymentSummary,
		&subtotal,
		&tax,
		&deliveryFee,
		&discount,
		&total,
		&riderID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", orderID)
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BranchID, err = kernel.UUIDFromBytes(branchID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if riderID.Valid {
		rid, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.RiderID = &rid
	}

	for dst, src := range map[*kernel.Money]string{
		&resp.Subtotal:    subtotal,
		&resp.Tax:         tax,
		&resp.DeliveryFee: deliveryFee,
		&resp.Discount:    discount,
		&resp.Total:       total,
	} {
		money, moneyErr := kernel.MoneyFromString(src)
		if moneyErr != nil {
			return GetOrderQueryResponse{}, moneyErr
		}
		*dst = money
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_id,
			name,
			size,
			unit_price,
			quantity,
			line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var menuID uuid.UUID
		var unitPrice, lineTotal string

		if err = rows.Scan(&menuID, &item.Name, &item.Size, &unitPrice, &item.Quantity, &lineTotal); err != nil {
			return nil, err
		}

		if item.MenuID, err = kernel.UUIDFromBytes(menuID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.MoneyFromString(unitPrice); err != nil {
			return nil, err
		}
		if item.LineTotal, err = kernel.MoneyFromString(lineTotal); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) readPayments(ctx context.Context, orderID kernel.UUID) ([]GetOrderPaymentResponse, error) {
	payments := make([]GetOrderPaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			method,
			status,
			amount,
			transaction_id,
			refunded_amount
		FROM payments
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p GetOrderPaymentResponse
		var id uuid.UUID
		var amount, refunded string

		if err = rows.Scan(&id, &p.Method, &p.Status, &amount, &p.TransactionID, &refunded); err != nil {
			return nil, err
		}

		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if p.Amount, err = kernel.MoneyFromString(amount); err != nil {
			return nil, err
		}
		if p.RefundedAmount, err = kernel.MoneyFromString(refunded); err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, rows.Err()
}
