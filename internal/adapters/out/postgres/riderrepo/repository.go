package riderrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/rider"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider to the database.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves rider state changes to the database. The column map is
// required so that releasing a rider actually clears active_order_id.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Model(&RiderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"availability":    dto.Availability,
			"active_order_id": dto.ActiveOrderID,
		}).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rider by ID.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all riders.
func (r *GormRiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, aggregate)
	}

	return riders, nil
}

// ClaimAvailable atomically moves a rider from available to busy and pins
// the order on them. The conditional update is the compare-and-swap: two
// concurrent claims for the same rider both match on id, but only one
// matches on availability, so exactly one wins. The loser gets
// ErrRiderUnavailable without ever loading the aggregate.
func (r *GormRiderRepository) ClaimAvailable(
	ctx context.Context,
	riderID kernel.UUID,
	orderID kernel.UUID,
) error {
	if err := errors.Join(riderID.Validate(), orderID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RiderDTO{}).
		Where("id = ? AND availability = ?", riderID.Bytes(), rider.Available.String()).
		Updates(map[string]any{
			"availability":    rider.Busy.String(),
			"active_order_id": orderID.Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Zero rows means either no such rider or a rider who is busy or
		// offline. Look again to tell the caller which.
		var dto RiderDTO
		err := r.db.WithContext(ctx).First(&dto, "id = ?", riderID.Bytes()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("rider", riderID.String())
		}
		if err != nil {
			return err
		}
		return rider.ErrRiderUnavailable
	}

	return nil
}
