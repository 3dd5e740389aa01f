package parcelrepo

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
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

// Update saves an existing parcel to the database. The write is guarded:
// the row must still be in a delivery status from which the aggregate's
// current status is reachable, and a fresh cashed-out flag only lands on a
// row that is not flagged yet. A write that matches no row because another
// transaction got there first returns errs.ErrConflict.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Where("delivery_status IN ?", priorDeliveryStatuses(aggregate.DeliveryStatus()))
	if dto.CashedOut {
		tx = tx.Where("cashed_out = ?", false)
	}

	result := tx.Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedWrite(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// priorDeliveryStatuses returns the delivery statuses a row may hold for a
// write of the given status to land. Mirrors the forward-only transition
// rules of the aggregate.
func priorDeliveryStatuses(status parcel.DeliveryStatus) []string {
	switch status {
	case parcel.RiderAssigned:
		return []string{parcel.NotCollected.String()}
	case parcel.InTransit:
		return []string{parcel.RiderAssigned.String()}
	case parcel.Delivered:
		return []string{
			parcel.RiderAssigned.String(),
			parcel.InTransit.String(),
			parcel.Delivered.String(),
		}
	default:
		return []string{parcel.NotCollected.String()}
	}
}

// classifyMissedWrite distinguishes a row that vanished from a row another
// transaction already advanced.
func (r *GormParcelRepository) classifyMissedWrite(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	return errs.NewConflictError("parcel was modified by a concurrent transaction")
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstAssignable retrieves the oldest paid parcel still awaiting pickup.
func (r *GormParcelRepository) GetFirstAssignable(ctx context.Context) (*parcel.Parcel, error) {
	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		Where("payment_status = ?", parcel.Paid.String()).
		Where("delivery_status = ?", parcel.NotCollected.String()).
		Order("created_at ASC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", "first assignable")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllSettleable retrieves the delivered, not-yet-cashed-out parcels of one rider.
func (r *GormParcelRepository) GetAllSettleable(
	ctx context.Context,
	riderEmail string,
) ([]*parcel.Parcel, error) {
	if riderEmail == "" {
		return nil, errs.NewValueIsRequiredError("riderEmail")
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("rider_email = ?", riderEmail).
		Where("delivery_status = ?", parcel.Delivered.String()).
		Where("cashed_out = ?", false).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// Delete removes a parcel by ID.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}
	return nil
}
