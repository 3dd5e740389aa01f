// Package cashoutrepo provides data transfer objects and mapping functions
// for cashout persistence. A cashout row is stored together with the set of
// parcel ids it settles, kept in a separate join table so the read side can
// count and inspect them without unpacking the aggregate.
package cashoutrepo

import (
	"time"

	"parcelshift/internal/core/domain/model/cashout"
	"parcelshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CashoutDTO represents the database structure for persisting cashout records.
type CashoutDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RiderEmail  string    `gorm:"index"`
	TotalAmount float64
	Status      string `gorm:"index"`
	RequestedAt time.Time
}

// TableName specifies the database table name for cashout records.
func (CashoutDTO) TableName() string {
	return "cashouts"
}

// CashoutParcelDTO links a cashout record to one parcel it settles.
type CashoutParcelDTO struct {
	CashoutID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for the cashout parcel set.
func (CashoutParcelDTO) TableName() string {
	return "cashout_parcels"
}

// fromDomain converts a cashout domain aggregate to its database rows.
func fromDomain(record *cashout.Record) (CashoutDTO, []CashoutParcelDTO) {
	dto := CashoutDTO{
		ID:          record.ID().Bytes(),
		RiderEmail:  record.RiderEmail(),
		TotalAmount: record.TotalAmount(),
		Status:      record.Status().String(),
		RequestedAt: record.RequestedAt(),
	}

	parcelIDs := record.ParcelIDs()
	links := make([]CashoutParcelDTO, 0, len(parcelIDs))
	for _, parcelID := range parcelIDs {
		links = append(links, CashoutParcelDTO{
			CashoutID: dto.ID,
			ParcelID:  parcelID.Bytes(),
		})
	}

	return dto, links
}

// toDomain converts database rows to a cashout domain aggregate using
// RestoreRecord.
func toDomain(dto CashoutDTO, links []CashoutParcelDTO) (*cashout.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := cashout.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(links))
	for _, link := range links {
		parcelID, linkErr := kernel.UUIDFromBytes(link.ParcelID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return cashout.RestoreRecord(
		id,
		dto.RiderEmail,
		dto.TotalAmount,
		parcelIDs,
		dto.RequestedAt,
		status,
	)
}
