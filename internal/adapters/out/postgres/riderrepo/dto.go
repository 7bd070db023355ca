// Package riderrepo provides data transfer objects and mapping functions
// for rider persistence, including the atomic claim used to move a rider
// from available to busy under contention.
package riderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The unique index on active_order_id keeps one rider per order even if an
// application bug ever bypassed the claim.
type RiderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name          string
	Vehicle       string
	Availability  string     `gorm:"index"`
	ActiveOrderID *uuid.UUID `gorm:"type:uuid;uniqueIndex:,where:active_order_id IS NOT NULL"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	var activeOrderID *uuid.UUID
	if id := aggregate.ActiveOrderID(); id != nil {
		raw := id.Bytes()
		activeOrderID = &raw
	}

	return RiderDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Vehicle:       aggregate.Vehicle().String(),
		Availability:  aggregate.Availability().String(),
		ActiveOrderID: activeOrderID,
	}
}

// toDomain converts a database DTO to a rider domain aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var activeOrderID *kernel.UUID
	if dto.ActiveOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.ActiveOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		activeOrderID = &orderID
	}

	vehicle, err := rider.VehicleFromString(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	availability, err := rider.AvailabilityFromString(dto.Availability)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, vehicle, availability, activeOrderID)
}
