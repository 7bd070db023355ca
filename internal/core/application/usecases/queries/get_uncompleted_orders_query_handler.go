package queries

import (
	"context"
	"database/sql"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler reads open orders straight from the
// database, skipping aggregate rehydration for read performance.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for open order queries.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the query.
// Returns every order outside the Delivered and Cancelled statuses, oldest
// number first.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_type,
			status,
			payment_summary,
			total,
			rider_id
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY number
	`, order.Delivered.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var riderID uuid.NullUUID
		var total sql.NullString

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.OrderType,
			&resp.Status,
			&resp.PaymentSummary,
			&total,
			&riderID,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if riderID.Valid {
			rid, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.RiderID = &rid
		}

		if total.Valid {
			money, moneyErr := kernel.MoneyFromString(total.String)
			if moneyErr != nil {
				return nil, moneyErr
			}
			resp.Total = money
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
