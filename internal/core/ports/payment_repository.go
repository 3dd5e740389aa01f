package ports

import (
	"context"

	"parcelshift/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment history
// records. Records are immutable once written.
type PaymentRepository interface {
	// Add appends a payment record.
	Add(ctx context.Context, record *payment.Record) error
}
