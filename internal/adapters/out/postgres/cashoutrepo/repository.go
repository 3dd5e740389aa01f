package cashoutrepo

import (
	"context"
	"errors"

	"parcelshift/internal/core/domain/model/cashout"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCashoutRepository implements CashoutRepository using GORM.
type GormCashoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCashoutRepository creates a new GORM cashout repository.
func NewGormCashoutRepository(db *gorm.DB, tracker aggregateTracker) *GormCashoutRepository {
	return &GormCashoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cashout record and its parcel id set to the database.
func (r *GormCashoutRepository) Add(ctx context.Context, aggregate *cashout.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(links) > 0 {
		if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves status changes to an existing cashout record. The parcel id
// set is immutable after Add and is not rewritten.
func (r *GormCashoutRepository) Update(ctx context.Context, aggregate *cashout.Record) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CashoutDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cashout", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cashout record by ID, parcel id set included.
func (r *GormCashoutRepository) Get(ctx context.Context, id kernel.UUID) (*cashout.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CashoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cashout", id.String())
		}
		return nil, err
	}

	var links []CashoutParcelDTO
	if err := r.db.WithContext(ctx).
		Find(&links, "cashout_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, links)
}
