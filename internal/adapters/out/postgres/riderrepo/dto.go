// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// Email is unique so one person cannot apply twice; status and work status
// carry the wire labels.
type RiderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	District   string `gorm:"index"`
	Status     string `gorm:"index"`
	WorkStatus string `gorm:"index"`
	AppliedAt  time.Time
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(r *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:         r.ID().Bytes(),
		Name:       r.Name(),
		Email:      r.Email(),
		District:   r.District(),
		Status:     r.Status().String(),
		WorkStatus: string(r.WorkStatus()),
		AppliedAt:  r.AppliedAt(),
	}
}

// toDomain converts a database DTO to a rider domain aggregate using RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := rider.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		dto.Name,
		dto.Email,
		dto.District,
		status,
		rider.WorkStatus(dto.WorkStatus),
		dto.AppliedAt,
	)
}
