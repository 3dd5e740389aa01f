package riderrepo

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/rider"
	"parcelshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements RiderRepository using GORM.
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

// Add saves a new rider application to the database.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"rider application already exists for this email", err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rider to the database. A write that puts the
// rider into delivery only lands on a row that is still idle, so two
// assignment rounds can never both claim the same rider; the loser gets
// errs.ErrConflict.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx).Model(&RiderDTO{}).Where("id = ?", dto.ID)
	if aggregate.WorkStatus() == rider.WorkInDelivery {
		tx = tx.Where("work_status = ?", string(rider.WorkIdle))
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

func (r *GormRiderRepository) classifyMissedWrite(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("rider", id.String())
	}
	return errs.NewConflictError("rider was claimed by a concurrent transaction")
}

// Get retrieves a rider by ID.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a rider by email.
func (r *GormRiderRepository) GetByEmail(ctx context.Context, email string) (*rider.Rider, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailableInDistrict retrieves the approved, idle riders of one district.
func (r *GormRiderRepository) GetAllAvailableInDistrict(
	ctx context.Context,
	district string,
) ([]*rider.Rider, error) {
	if district == "" {
		return nil, errs.NewValueIsRequiredError("district")
	}

	var dtos []RiderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", rider.Approved.String()).
		Where("work_status = ?", string(rider.WorkIdle)).
		Where("district = ?", district).
		Order("applied_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		restored, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, restored)
	}

	return riders, nil
}
