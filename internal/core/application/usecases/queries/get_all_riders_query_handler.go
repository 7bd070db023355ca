package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRidersQueryHandler reads the rider fleet straight from the database.
type GetAllRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRidersQueryHandler creates a handler for rider fleet queries.
func NewGetAllRidersQueryHandler(db *gorm.DB) GetAllRidersQueryHandler {
	return GetAllRidersQueryHandler{db: db}
}

// Handle executes the query.
// Returns all riders sorted by name.
func (h GetAllRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAllRidersQuery,
) ([]GetAllRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAllRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle,
			availability,
			active_order_id
		FROM riders
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRidersQueryResponse
		var id uuid.UUID
		var activeOrderID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Vehicle,
			&resp.Availability,
			&activeOrderID,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = riderID

		if activeOrderID.Valid {
			orderID, idErr := kernel.UUIDFromBytes(activeOrderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.ActiveOrderID = &orderID
		}

		riders = append(riders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
