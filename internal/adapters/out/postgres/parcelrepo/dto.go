// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// domain aggregate, handling the conversion between domain entities and their
// database representation.
package parcelrepo

import (
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Rider columns are null until a rider has been assigned; the
// status columns carry the wire labels so the read side can filter on them
// directly.
type ParcelDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedBy             string    `gorm:"index"`
	Title                 string
	SenderServiceCenter   string
	ReceiverServiceCenter string
	DeliveryCost          float64
	PaymentStatus         string     `gorm:"index"`
	DeliveryStatus        string     `gorm:"index"`
	RiderID               *uuid.UUID `gorm:"type:uuid;index"`
	RiderName             *string
	RiderEmail            *string `gorm:"index"`
	CashedOut             bool
	CreatedAt             time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:                    p.ID().Bytes(),
		CreatedBy:             p.CreatedBy(),
		Title:                 p.Title(),
		SenderServiceCenter:   p.SenderServiceCenter(),
		ReceiverServiceCenter: p.ReceiverServiceCenter(),
		DeliveryCost:          p.DeliveryCost(),
		PaymentStatus:         p.PaymentStatus().String(),
		DeliveryStatus:        p.DeliveryStatus().String(),
		CashedOut:             p.CashedOut(),
		CreatedAt:             p.CreatedAt(),
	}

	if r := p.AssignedRider(); r != nil {
		riderID := r.ID().Bytes()
		riderName := r.Name()
		riderEmail := r.Email()
		dto.RiderID = &riderID
		dto.RiderName = &riderName
		dto.RiderEmail = &riderEmail
	}

	return dto
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	paymentStatus, err := parcel.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := parcel.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	var assignedRider *parcel.AssignedRider
	if dto.RiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		var riderName, riderEmail string
		if dto.RiderName != nil {
			riderName = *dto.RiderName
		}
		if dto.RiderEmail != nil {
			riderEmail = *dto.RiderEmail
		}

		restored, riderErr := parcel.NewAssignedRider(riderID, riderName, riderEmail)
		if riderErr != nil {
			return nil, riderErr
		}
		assignedRider = &restored
	}

	return parcel.RestoreParcel(
		id,
		dto.CreatedBy,
		dto.Title,
		dto.SenderServiceCenter,
		dto.ReceiverServiceCenter,
		dto.DeliveryCost,
		paymentStatus,
		deliveryStatus,
		assignedRider,
		dto.CashedOut,
		dto.CreatedAt,
	)
}
