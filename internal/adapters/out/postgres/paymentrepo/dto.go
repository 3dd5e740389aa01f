// Package paymentrepo persists the immutable payment history.
package paymentrepo

import (
	"time"

	"parcelshift/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for one settled charge.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;index"`
	PayerEmail    string    `gorm:"index"`
	Amount        float64
	TransactionID string
	PaidAt        time.Time
}

// TableName specifies the database table name for payment records.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment record to its database representation.
func fromDomain(record *payment.Record) PaymentDTO {
	return PaymentDTO{
		ID:            record.ID().Bytes(),
		ParcelID:      record.ParcelID().Bytes(),
		PayerEmail:    record.PayerEmail(),
		Amount:        record.Amount(),
		TransactionID: record.TransactionID(),
		PaidAt:        record.PaidAt(),
	}
}
